package resumes

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotParsed    = errors.New("resume has no parsed profile")
)
