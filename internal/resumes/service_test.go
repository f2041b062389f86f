package resumes

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"resume-parser-api/internal/matching"
	"resume-parser-api/internal/parser"
	localstore "resume-parser-api/internal/shared/storage/object/local"
)

const sampleResumeText = `John Doe
Seattle, WA
john@x.com | 555-123-4567

SUMMARY
Experienced software engineer with a passion for building reliable distributed systems.

EXPERIENCE
Senior Software Engineer at Acme Inc
Jan 2020 - Present
Built data pipelines in Python and Go.

EDUCATION
Bachelor of Science in Computer Science
University of Washington, 2016

SKILLS
Python, Docker, Kubernetes, PostgreSQL
`

func newTestService(t *testing.T) *Service {
	t.Helper()
	return &Service{
		Store:   localstore.New(t.TempDir()),
		Repo:    NewMemoryRepo(),
		Parser:  parser.NewEngine(),
		Matcher: matching.NewEngine(),
	}
}

func TestServiceUploadParsesTextResume(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	resume, err := svc.Upload(ctx, "guest:test", "resume.txt", strings.NewReader(sampleResumeText))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if resume.Status != StatusCompleted {
		t.Fatalf("status = %q, want %q", resume.Status, StatusCompleted)
	}
	if resume.Profile == nil {
		t.Fatalf("expected parsed profile")
	}
	if got := resume.Profile.Personal.FullName; got != "John Doe" {
		t.Fatalf("full name = %q, want John Doe", got)
	}
	if resume.Confidence <= 0 {
		t.Fatalf("confidence = %v, want > 0", resume.Confidence)
	}
	if resume.TextKey == "" {
		t.Fatalf("expected extracted text key to be set")
	}

	// The stored record reflects the final state.
	stored, err := svc.Get(ctx, "guest:test", resume.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Status != StatusCompleted {
		t.Fatalf("stored status = %q, want %q", stored.Status, StatusCompleted)
	}
	if stored.Profile == nil {
		t.Fatalf("expected stored profile")
	}
}

func TestServiceUploadUnsupportedPayload(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	payload := string([]byte{0x00, 0x01, 0x02, 0x03, 0xff, 0xfe})
	resume, err := svc.Upload(ctx, "guest:test", "resume.bin", strings.NewReader(payload))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if resume.Status != StatusFailed {
		t.Fatalf("status = %q, want %q", resume.Status, StatusFailed)
	}
	if resume.Error == "" {
		t.Fatalf("expected failure reason to be recorded")
	}

	stored, err := svc.Get(ctx, "guest:test", resume.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Status != StatusFailed {
		t.Fatalf("stored status = %q, want %q", stored.Status, StatusFailed)
	}
}

func TestServiceUploadRequiresFileName(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Upload(context.Background(), "guest:test", "", strings.NewReader("x")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceMatchValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	unparsed := Resume{
		ID:        "resume-unparsed",
		UserID:    "guest:test",
		FileName:  "resume.pdf",
		Status:    StatusFailed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := svc.Repo.Create(ctx, unparsed); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Match(ctx, "guest:test", unparsed.ID, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty job description: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Match(ctx, "guest:test", unparsed.ID, "Python developer"); !errors.Is(err, ErrNotParsed) {
		t.Fatalf("unparsed resume: expected ErrNotParsed, got %v", err)
	}
	if _, err := svc.Match(ctx, "guest:test", "missing", "Python developer"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing resume: expected ErrNotFound, got %v", err)
	}
}

func TestServiceMatchScoresStoredProfile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	resume := Resume{
		ID:       "resume-1",
		UserID:   "guest:test",
		FileName: "resume.pdf",
		Status:   StatusCompleted,
		Profile: &parser.Profile{
			Experience: []parser.ExperienceEntry{
				{Title: "Software Engineer", StartDate: "2020", EndDate: parser.EndDatePresent},
			},
			Education: []parser.EducationEntry{{Degree: "Bachelor of Science"}},
			Skills:    []string{"Python", "Docker"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := svc.Repo.Create(ctx, resume); err != nil {
		t.Fatalf("Create: %v", err)
	}

	result, err := svc.Match(ctx, "guest:test", resume.ID, "Senior Python engineer, Docker required")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if result.Skills.Score != 1.0 {
		t.Fatalf("skills score = %v, want 1.0", result.Skills.Score)
	}
	if result.OverallScore <= 0 {
		t.Fatalf("overall score = %v, want > 0", result.OverallScore)
	}
	if result.Semantic != nil {
		t.Fatalf("expected no semantic component without an embedder")
	}
}

func TestServiceAnalysisViewsRequireParsedProfile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	now := time.Now().UTC()
	unparsed := Resume{
		ID:        "resume-unparsed",
		UserID:    "guest:test",
		Status:    StatusFailed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := svc.Repo.Create(ctx, unparsed); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Enrichment(ctx, "guest:test", unparsed.ID); !errors.Is(err, ErrNotParsed) {
		t.Fatalf("Enrichment: expected ErrNotParsed, got %v", err)
	}
	if _, err := svc.BiasReport(ctx, "guest:test", unparsed.ID); !errors.Is(err, ErrNotParsed) {
		t.Fatalf("BiasReport: expected ErrNotParsed, got %v", err)
	}
	if _, err := svc.Anonymized(ctx, "guest:test", unparsed.ID); !errors.Is(err, ErrNotParsed) {
		t.Fatalf("Anonymized: expected ErrNotParsed, got %v", err)
	}
}
