package llm

import (
	"context"
	"errors"
)

// InlineDocument is a binary payload attached to a request. The bytes are
// passed to the collaborator verbatim and are never inspected or rewritten.
type InlineDocument struct {
	Data     []byte
	MIMEType string
}

// Request is an ordered payload for the generative collaborator: one or more
// instruction strings followed by an optional inline document.
type Request struct {
	Instructions []string
	Document     *InlineDocument
}

// Client dispatches a single request to a generative model and returns the
// raw text of its response. Implementations make exactly one attempt; callers
// decide whether a failure is surfaced or retried.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// ErrUpstream marks transport failures, error statuses, and empty responses
// from the collaborator.
var ErrUpstream = errors.New("generative service unavailable")

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Generate returns ErrNotConfigured.
func (PlaceholderClient) Generate(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}
