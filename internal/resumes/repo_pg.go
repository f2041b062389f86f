package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-parser-api/internal/parser"
)

// PGRepo implements ResumesRepo using Postgres. The parsed profile is stored
// as a JSONB column.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume record.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    file_name,
    content_type,
    size_bytes,
    storage_key,
    text_key,
    status,
    error,
    profile,
    confidence,
    processing_ms,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	profile, err := marshalProfile(resume.Profile)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.FileName,
		resume.ContentType,
		resume.SizeBytes,
		resume.StorageKey,
		nullString(resume.TextKey),
		string(resume.Status),
		nullString(resume.Error),
		profile,
		resume.Confidence,
		resume.ProcessingMs,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

const resumeColumns = `id, user_id, file_name, content_type, size_bytes, storage_key, text_key, status, error, profile, confidence, processing_ms, created_at, updated_at`

// GetByID fetches a resume by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	query := `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1 AND id = $2
LIMIT 1`
	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, userId, resumeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// ListByUser lists resumes ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Resume, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Delete removes a resume for a user.
func (r *PGRepo) Delete(ctx context.Context, userId, resumeID string) error {
	const query = `
DELETE FROM resumes
WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userId, resumeID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateResult stores the processing outcome for a resume.
func (r *PGRepo) UpdateResult(ctx context.Context, resume Resume) error {
	const query = `
UPDATE resumes
SET status = $1, error = $2, profile = $3, confidence = $4, processing_ms = $5, text_key = $6, updated_at = $7
WHERE user_id = $8 AND id = $9`

	profile, err := marshalProfile(resume.Profile)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		string(resume.Status),
		nullString(resume.Error),
		profile,
		resume.Confidence,
		resume.ProcessingMs,
		nullString(resume.TextKey),
		resume.UpdatedAt,
		resume.UserID,
		resume.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var textKey, errMsg, status sql.NullString
	var profile []byte
	if err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.FileName,
		&resume.ContentType,
		&resume.SizeBytes,
		&resume.StorageKey,
		&textKey,
		&status,
		&errMsg,
		&profile,
		&resume.Confidence,
		&resume.ProcessingMs,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	); err != nil {
		return Resume{}, err
	}
	if textKey.Valid {
		resume.TextKey = textKey.String
	}
	if status.Valid {
		resume.Status = Status(status.String)
	}
	if errMsg.Valid {
		resume.Error = errMsg.String
	}
	if len(profile) > 0 {
		var parsed parser.Profile
		if err := json.Unmarshal(profile, &parsed); err != nil {
			return Resume{}, fmt.Errorf("decode profile: %w", err)
		}
		resume.Profile = &parsed
	}
	return resume, nil
}

func marshalProfile(profile *parser.Profile) (any, error) {
	if profile == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	return encoded, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ ResumesRepo = (*PGRepo)(nil)
