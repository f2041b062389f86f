package resumes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-parser-api/internal/anonymize"
	"resume-parser-api/internal/bias"
	"resume-parser-api/internal/classify"
	"resume-parser-api/internal/extract"
	"resume-parser-api/internal/matching"
	"resume-parser-api/internal/parser"
	"resume-parser-api/internal/shared/metrics"
	"resume-parser-api/internal/shared/storage/object"
	"resume-parser-api/internal/shared/telemetry"
)

// Service contains business logic for resumes: upload, processing, matching
// and anonymized views.
type Service struct {
	Store   object.ObjectStore
	Repo    ResumesRepo
	Parser  *parser.Engine
	Matcher *matching.Engine
}

type keySaver interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
}

// Upload stores the file, extracts its text and parses it into a structured
// profile. The record moves pending -> processing -> completed/failed; the
// final record is returned either way. An unsupported or unreadable payload
// surfaces as ErrInvalidInput with the record left in the failed state.
func (s *Service) Upload(ctx context.Context, userId, fileName string, r io.Reader) (Resume, error) {
	if fileName == "" {
		return Resume{}, fmt.Errorf("%w: file name required", ErrInvalidInput)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Resume{}, fmt.Errorf("read upload: %w", err)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userId, fileName, bytes.NewReader(data))
	if err != nil {
		return Resume{}, err
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:          uuid.NewString(),
		UserID:      userId,
		FileName:    fileName,
		ContentType: mimeType,
		SizeBytes:   size,
		StorageKey:  storageKey,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}

	return s.process(ctx, resume, data)
}

func (s *Service) process(ctx context.Context, resume Resume, data []byte) (Resume, error) {
	s.transition(ctx, &resume, StatusProcessing)

	metrics.IncParseStarted()
	start := metrics.NowMillis()

	text, err := extract.ExtractTextFromBytes(ctx, data, resume.ContentType, resume.FileName)
	if err != nil {
		metrics.IncParseFailed()
		resume.Error = err.Error()
		s.transition(ctx, &resume, StatusFailed)
		return resume, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	profile := s.Parser.Parse(text)

	resume.TextKey = s.saveText(ctx, resume.StorageKey, text)
	resume.Profile = profile
	resume.Confidence = profile.ConfidenceScore
	resume.ProcessingMs = int64(metrics.NowMillis() - start)
	s.transition(ctx, &resume, StatusCompleted)

	metrics.IncParseCompleted()
	metrics.ObserveParseDurationMs(float64(resume.ProcessingMs))
	metrics.ObserveParseConfidence(profile.ConfidenceScore)
	telemetry.Info("resume.parsed", map[string]any{
		"resume_id":     resume.ID,
		"user_id":       resume.UserID,
		"confidence":    profile.ConfidenceScore,
		"processing_ms": resume.ProcessingMs,
	})

	return resume, nil
}

// transition updates the status in place and persists it. Persistence errors
// are logged rather than surfaced; the in-memory record stays authoritative
// for the caller.
func (s *Service) transition(ctx context.Context, resume *Resume, next Status) {
	prev := resume.Status
	resume.Status = next
	resume.UpdatedAt = time.Now().UTC()
	if err := s.Repo.UpdateResult(ctx, *resume); err != nil {
		telemetry.Error("resume.status.persist", map[string]any{
			"resume_id":  resume.ID,
			"transition": string(prev) + "->" + string(next),
			"error":      err.Error(),
		})
		return
	}
	telemetry.Info("resume.status", map[string]any{
		"resume_id":  resume.ID,
		"transition": string(prev) + "->" + string(next),
	})
}

// saveText persists the extracted text next to the original object so later
// anonymized views do not re-extract. Best effort: a store without key-based
// writes, or a write failure, just leaves TextKey empty.
func (s *Service) saveText(ctx context.Context, storageKey, text string) string {
	saver, ok := s.Store.(keySaver)
	if !ok {
		return ""
	}
	textKey := storageKey + ".extracted.txt"
	if _, err := saver.SaveWithKey(ctx, textKey, "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		telemetry.Warn("resume.text.persist", map[string]any{"key": textKey, "error": err.Error()})
		return ""
	}
	return textKey
}

// Get returns a resume by ID for a user.
func (s *Service) Get(ctx context.Context, userId, resumeID string) (Resume, error) {
	return s.Repo.GetByID(ctx, userId, resumeID)
}

// List returns resumes for a user, newest first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userId, limit, offset)
}

// Delete removes a resume record. The stored objects are kept; storage
// cleanup is a separate concern.
func (s *Service) Delete(ctx context.Context, userId, resumeID string) error {
	return s.Repo.Delete(ctx, userId, resumeID)
}

// Match scores a parsed resume against a job description.
func (s *Service) Match(ctx context.Context, userId, resumeID, jobDescription string) (*matching.Result, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("%w: job description required", ErrInvalidInput)
	}

	resume, err := s.Repo.GetByID(ctx, userId, resumeID)
	if err != nil {
		return nil, err
	}
	if resume.Profile == nil {
		return nil, ErrNotParsed
	}

	start := metrics.NowMillis()
	result := s.Matcher.Score(ctx, resume.Profile, jobDescription)
	metrics.IncMatchScored()
	metrics.ObserveMatchDurationMs(metrics.NowMillis() - start)

	telemetry.Info("resume.matched", map[string]any{
		"resume_id": resume.ID,
		"user_id":   resume.UserID,
		"overall":   result.OverallScore,
	})
	return result, nil
}

// Enrichment classifies the parsed profile: role, seniority, industry and
// skill relevance. Computed on demand from the stored profile.
func (s *Service) Enrichment(ctx context.Context, userId, resumeID string) (*classify.Enrichment, error) {
	resume, err := s.Repo.GetByID(ctx, userId, resumeID)
	if err != nil {
		return nil, err
	}
	if resume.Profile == nil {
		return nil, ErrNotParsed
	}
	return classify.Enrich(resume.Profile), nil
}

// BiasReport runs bias detection over the stored text, falling back to the
// parsed profile when the text object is gone.
func (s *Service) BiasReport(ctx context.Context, userId, resumeID string) (*bias.Detection, error) {
	resume, err := s.Repo.GetByID(ctx, userId, resumeID)
	if err != nil {
		return nil, err
	}
	if resume.Profile == nil {
		return nil, ErrNotParsed
	}
	return bias.Detect(resume.Profile, s.loadText(ctx, resume)), nil
}

// Anonymized builds the PII-scrubbed view of a parsed resume.
func (s *Service) Anonymized(ctx context.Context, userId, resumeID string) (anonymize.Version, error) {
	resume, err := s.Repo.GetByID(ctx, userId, resumeID)
	if err != nil {
		return anonymize.Version{}, err
	}
	if resume.Profile == nil {
		return anonymize.Version{}, ErrNotParsed
	}
	return anonymize.Build(resume.Profile, s.loadText(ctx, resume)), nil
}

// loadText reads the extracted text object if one was persisted.
func (s *Service) loadText(ctx context.Context, resume Resume) string {
	if resume.TextKey == "" {
		return ""
	}
	body, err := s.Store.Open(ctx, resume.TextKey)
	if err != nil {
		telemetry.Warn("resume.text.load", map[string]any{"key": resume.TextKey, "error": err.Error()})
		return ""
	}
	defer body.Close()
	raw, err := io.ReadAll(body)
	if err != nil {
		return ""
	}
	return string(raw)
}
