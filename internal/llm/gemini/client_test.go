package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/genai"

	"careerpilot-backend/internal/llm"
)

type fakeGenerator struct {
	resp     *genai.GenerateContentResponse
	err      error
	gotModel string
	gotParts []*genai.Part
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	if len(contents) > 0 {
		f.gotParts = contents[0].Parts
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: text}},
			},
		}},
	}
}

func TestGenerateAssemblesParts(t *testing.T) {
	fake := &fakeGenerator{resp: textResponse("Software Engineer, Backend Developer")}
	client := &Client{models: fake, modelName: "gemini-2.5-flash", timeout: time.Second}

	out, err := client.Generate(context.Background(), llm.Request{
		Instructions: []string{"List the roles."},
		Document:     &llm.InlineDocument{Data: []byte("%PDF-1.4"), MIMEType: "application/pdf"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "Software Engineer, Backend Developer" {
		t.Fatalf("out = %q", out)
	}

	if fake.gotModel != "gemini-2.5-flash" {
		t.Fatalf("model = %q", fake.gotModel)
	}
	if len(fake.gotParts) != 2 {
		t.Fatalf("parts = %d, want instruction + document", len(fake.gotParts))
	}
	if fake.gotParts[0].Text != "List the roles." {
		t.Fatalf("instruction part = %q", fake.gotParts[0].Text)
	}
	blob := fake.gotParts[1].InlineData
	if blob == nil || blob.MIMEType != "application/pdf" || string(blob.Data) != "%PDF-1.4" {
		t.Fatalf("document part = %+v", fake.gotParts[1])
	}
}

func TestGenerateJoinsMultipleTextParts(t *testing.T) {
	fake := &fakeGenerator{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: "first "}, {Text: " second"}},
			},
		}},
	}}
	client := &Client{models: fake, modelName: "m", timeout: time.Second}

	out, err := client.Generate(context.Background(), llm.Request{Instructions: []string{"go"}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "first\nsecond" {
		t.Fatalf("out = %q", out)
	}
}

func TestGenerateTransportFailure(t *testing.T) {
	fake := &fakeGenerator{err: errors.New("boom")}
	client := &Client{models: fake, modelName: "m", timeout: time.Second}

	_, err := client.Generate(context.Background(), llm.Request{Instructions: []string{"go"}})
	if !errors.Is(err, llm.ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	fake := &fakeGenerator{resp: &genai.GenerateContentResponse{}}
	client := &Client{models: fake, modelName: "m", timeout: time.Second}

	_, err := client.Generate(context.Background(), llm.Request{Instructions: []string{"go"}})
	if !errors.Is(err, llm.ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
}

func TestGenerateRejectsEmptyRequest(t *testing.T) {
	client := &Client{models: &fakeGenerator{resp: textResponse("x")}, modelName: "m", timeout: time.Second}

	if _, err := client.Generate(context.Background(), llm.Request{Instructions: []string{"   "}}); err == nil {
		t.Fatal("blank request must fail")
	}
}

func TestGenerateUnconfigured(t *testing.T) {
	var client *Client
	if _, err := client.Generate(context.Background(), llm.Request{Instructions: []string{"go"}}); !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}
