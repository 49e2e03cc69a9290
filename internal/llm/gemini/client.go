package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"careerpilot-backend/internal/llm"
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 60 * time.Second
)

// contentGenerator is the slice of the genai SDK the client depends on,
// kept narrow so tests can substitute a fake.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements llm.Client against the Gemini API.
type Client struct {
	models    contentGenerator
	modelName string
	timeout   time.Duration
}

// NewClient constructs a Gemini-backed client.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{models: client.Models, modelName: model, timeout: timeout}, nil
}

// Generate sends the request parts to Gemini and returns the first textual
// response. A single attempt is made; the call is bounded by the configured
// timeout so a stalled collaborator cannot hold the request open forever.
func (c *Client) Generate(ctx context.Context, req llm.Request) (string, error) {
	if c == nil || c.models == nil {
		return "", llm.ErrNotConfigured
	}

	parts := make([]*genai.Part, 0, len(req.Instructions)+1)
	for _, instruction := range req.Instructions {
		if trimmed := strings.TrimSpace(instruction); trimmed != "" {
			parts = append(parts, &genai.Part{Text: trimmed})
		}
	}
	if req.Document != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				Data:     req.Document.Data,
				MIMEType: req.Document.MIMEType,
			},
		})
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("request has no parts")
	}

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: parts,
	}}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.models.GenerateContent(callCtx, c.modelName, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: generate content: %v", llm.ErrUpstream, err)
	}

	output := collectText(resp)
	if output == "" {
		return "", fmt.Errorf("%w: empty response", llm.ErrUpstream)
	}

	return output, nil
}

// Model reports the configured model name.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}
	return strings.TrimSpace(builder.String())
}

var _ llm.Client = (*Client)(nil)
