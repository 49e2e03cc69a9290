package analysis

import "errors"

var (
	// ErrDocumentUnavailable means the record existed but its backing bytes
	// could not be located; the record has been deleted as a side effect.
	ErrDocumentUnavailable = errors.New("resume file missing on server")

	// ErrNoDocument means the user has no resume at all.
	ErrNoDocument = errors.New("no resume found")

	// ErrAnalysisFailed means the collaborator responded but its output could
	// not be validated against the expected structure. Not retried here.
	ErrAnalysisFailed = errors.New("analysis response could not be parsed")
)

// Stable error codes for the caller-facing surface.
const (
	CodeDocumentUnavailable = "document_unavailable"
	CodeNoDocument          = "no_document"
	CodeUpstreamError       = "upstream_error"
	CodeAnalysisFailed      = "analysis_failed"
)
