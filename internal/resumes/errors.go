package resumes

import "errors"

var (
	ErrNotFound     = errors.New("resume not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotPDF       = errors.New("only PDF files are allowed")

	// ErrFileMissing means the backing bytes could not be located under either
	// the recorded storage key or the canonical fallback.
	ErrFileMissing = errors.New("resume file missing")
)
