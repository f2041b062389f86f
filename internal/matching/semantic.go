package matching

import (
	"context"
	"math"
	"strings"

	"resume-parser-api/internal/parser"
	"resume-parser-api/internal/shared/telemetry"
)

// Embedder turns text into a dense vector. Implementations must be safe for
// concurrent use.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// semanticScore embeds a compact rendering of the resume alongside the job
// description and returns their cosine similarity. Any failure degrades to
// 0.0 with a note so the heuristic components still produce a report.
func (e *Engine) semanticScore(ctx context.Context, result *Result, profile *parser.Profile, jobDescription string) float64 {
	resumeText := renderForEmbedding(profile)
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobDescription) == "" {
		return 0.0
	}

	resumeVec, err := e.embedder.Embed(ctx, resumeText)
	if err != nil {
		return e.semanticFailure(result, err)
	}
	jobVec, err := e.embedder.Embed(ctx, jobDescription)
	if err != nil {
		return e.semanticFailure(result, err)
	}

	sim := cosineSimilarity(resumeVec, jobVec)
	if sim < 0 {
		sim = 0
	}
	return round2(sim)
}

func (e *Engine) semanticFailure(result *Result, err error) float64 {
	telemetry.Warn("matching.semantic.unavailable", map[string]any{"error": err.Error()})
	result.Notes = append(result.Notes, "semantic similarity unavailable, contributing 0.0")
	return 0.0
}

// renderForEmbedding flattens the profile fields that carry the most signal
// for similarity: summary, skills and held titles.
func renderForEmbedding(profile *parser.Profile) string {
	parts := []string{profile.Summary}
	parts = append(parts, strings.Join(profile.Skills, " "))
	for _, entry := range profile.Experience {
		parts = append(parts, entry.Title)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
