package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of ResumesRepo, used in dev mode
// and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Resume // userId -> resumes
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Resume),
	}
}

// Create stores a new resume for a user.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[resume.UserID] = append(r.data[resume.UserID], resume)
	return nil
}

// GetByID returns a resume by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, resume := range r.data[userId] {
		if resume.ID == resumeID {
			return resume, nil
		}
	}
	return Resume{}, ErrNotFound
}

// ListByUser returns resumes for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userResumes := r.data[userId]
	r.mu.RUnlock()

	if len(userResumes) == 0 || offset >= len(userResumes) {
		return []Resume{}, nil
	}

	out := make([]Resume, len(userResumes))
	copy(out, userResumes)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return out[offset:end], nil
}

// Delete removes a resume for a user.
func (r *MemoryRepo) Delete(ctx context.Context, userId, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	userResumes := r.data[userId]
	for i := range userResumes {
		if userResumes[i].ID == resumeID {
			r.data[userId] = append(userResumes[:i], userResumes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// UpdateResult stores the processing outcome for a resume.
func (r *MemoryRepo) UpdateResult(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	userResumes := r.data[resume.UserID]
	for i := range userResumes {
		if userResumes[i].ID == resume.ID {
			userResumes[i].Status = resume.Status
			userResumes[i].Error = resume.Error
			userResumes[i].Profile = resume.Profile
			userResumes[i].Confidence = resume.Confidence
			userResumes[i].ProcessingMs = resume.ProcessingMs
			userResumes[i].TextKey = resume.TextKey
			userResumes[i].UpdatedAt = resume.UpdatedAt
			r.data[resume.UserID] = userResumes
			return nil
		}
	}
	return ErrNotFound
}

var _ ResumesRepo = (*MemoryRepo)(nil)
