package resumes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateInsertsRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := Resume{
		ID:          "resume-1",
		UserID:      "guest:abc",
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
		SizeBytes:   2048,
		StorageKey:  "users/abc/resume.pdf",
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			resume.ID,
			resume.UserID,
			resume.FileName,
			resume.ContentType,
			resume.SizeBytes,
			resume.StorageKey,
			nil, // text_key
			string(StatusPending),
			nil, // error
			nil, // profile
			resume.Confidence,
			resume.ProcessingMs,
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	profileJSON := []byte(`{"personal_info":{"full_name":"Jane Smith"},"experience":[],"education":[],"skills":["Go"],"certifications":[],"languages":[],"confidence_score":75}`)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "file_name", "content_type", "size_bytes",
		"storage_key", "text_key", "status", "error", "profile",
		"confidence", "processing_ms", "created_at", "updated_at",
	}).AddRow(
		"resume-1", "guest:abc", "resume.pdf", "application/pdf", int64(2048),
		"users/abc/resume.pdf", "users/abc/resume.pdf.extracted.txt", "completed", nil, profileJSON,
		75.0, int64(120), now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("guest:abc", "resume-1").
		WillReturnRows(rows)

	resume, err := repo.GetByID(context.Background(), "guest:abc", "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if resume.Profile == nil {
		t.Fatalf("expected decoded profile, got nil")
	}
	if got := resume.Profile.Personal.FullName; got != "Jane Smith" {
		t.Fatalf("full name = %q, want Jane Smith", got)
	}
	if resume.Status != StatusCompleted {
		t.Fatalf("status = %q, want %q", resume.Status, StatusCompleted)
	}
	if resume.TextKey == "" {
		t.Fatalf("expected text key to be set")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("guest:abc", "missing").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), "guest:abc", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("DELETE FROM resumes").
		WithArgs("guest:abc", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "guest:abc", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateResultPersistsOutcome(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := Resume{
		ID:           "resume-1",
		UserID:       "guest:abc",
		Status:       StatusCompleted,
		TextKey:      "users/abc/resume.pdf.extracted.txt",
		Confidence:   82.5,
		ProcessingMs: 1200,
		UpdatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("UPDATE resumes").
		WithArgs(
			string(StatusCompleted),
			nil, // error
			nil, // profile
			resume.Confidence,
			resume.ProcessingMs,
			resume.TextKey,
			sqlmock.AnyArg(),
			resume.UserID,
			resume.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateResult(context.Background(), resume); err != nil {
		t.Fatalf("UpdateResult: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
