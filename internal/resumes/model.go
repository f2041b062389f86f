package resumes

import (
	"time"

	"resume-parser-api/internal/parser"
)

// Status tracks a resume through its processing lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Resume is an uploaded resume plus the structured profile extracted from it.
// Profile is nil until processing completes.
type Resume struct {
	ID           string
	UserID       string
	FileName     string
	ContentType  string
	SizeBytes    int64
	StorageKey   string
	TextKey      string
	Status       Status
	Error        string
	Profile      *parser.Profile
	Confidence   float64
	ProcessingMs int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
