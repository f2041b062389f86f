package resumes

import (
	"time"

	"resume-parser-api/internal/parser"
)

// ResumeResponse is the outward-facing representation of a resume. Profile
// is only populated on detail views.
type ResumeResponse struct {
	ResumeID        string          `json:"resumeId"`
	FileName        string          `json:"fileName"`
	ContentType     string          `json:"contentType"`
	SizeBytes       int64           `json:"sizeBytes"`
	Status          string          `json:"status"`
	Error           string          `json:"error,omitempty"`
	ConfidenceScore float64         `json:"confidenceScore"`
	ProcessingMs    int64           `json:"processingMs"`
	UploadedAt      time.Time       `json:"uploadedAt"`
	Profile         *parser.Profile `json:"profile,omitempty"`
}

func toResponse(resume Resume, withProfile bool) ResumeResponse {
	resp := ResumeResponse{
		ResumeID:        resume.ID,
		FileName:        resume.FileName,
		ContentType:     resume.ContentType,
		SizeBytes:       resume.SizeBytes,
		Status:          string(resume.Status),
		Error:           resume.Error,
		ConfidenceScore: resume.Confidence,
		ProcessingMs:    resume.ProcessingMs,
		UploadedAt:      resume.CreatedAt,
	}
	if withProfile {
		resp.Profile = resume.Profile
	}
	return resp
}
