package resumes

import "context"

// ResumesRepo defines persistence operations for resumes.
type ResumesRepo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, userId, resumeID string) (Resume, error)
	ListByUser(ctx context.Context, userId string, limit, offset int) ([]Resume, error)
	Delete(ctx context.Context, userId, resumeID string) error
	UpdateResult(ctx context.Context, resume Resume) error
}
