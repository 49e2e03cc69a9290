package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"careerpilot-backend/internal/resumes"
	"careerpilot-backend/internal/roles"
	"careerpilot-backend/internal/shared/server/middleware"
	"careerpilot-backend/internal/shared/storage/object/local"
)

const guestID = "g1"

// setupRouter builds a minimal gin app with the auth middleware and the
// analysis routes, seeded with one resume for the guest identity.
func setupRouter(t *testing.T, client *fakeLLM) (*gin.Engine, *roles.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := local.New(t.TempDir())
	resumeRepo := resumes.NewMemoryRepo()
	roleRepo := roles.NewMemoryRepo()

	userID := "guest:" + guestID
	key, size, _, err := store.Save(context.Background(), userID, "resume.pdf", bytes.NewReader([]byte("%PDF-1.4 fake")))
	if err != nil {
		t.Fatalf("save resume bytes: %v", err)
	}
	rec := resumes.Resume{
		ID:         "resume-1",
		UserID:     userID,
		FileName:   "resume.pdf",
		StorageKey: key,
		MimeType:   "application/pdf",
		SizeBytes:  size,
		UploadedAt: time.Now().UTC(),
	}
	if err := resumeRepo.Create(context.Background(), rec); err != nil {
		t.Fatalf("create resume record: %v", err)
	}

	svc := &Service{
		Resumes: resumeRepo,
		Locator: &resumes.Locator{Store: store},
		Store:   store,
		Roles:   roleRepo,
		LLM:     client,
	}

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.Auth("dev"))
	NewHandler(svc).RegisterRoutes(api)
	return r, roleRepo
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Guest-Id", guestID)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpoint(t *testing.T) {
	r, roleRepo := setupRouter(t, &fakeLLM{resp: "Software Engineer, Backend Developer"})

	w := doRequest(r, http.MethodPost, "/api/v1/resumes/resume-1/analyze", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		SuggestedRoles []string `json:"suggestedRoles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.SuggestedRoles) != 2 {
		t.Fatalf("suggestedRoles = %v", resp.SuggestedRoles)
	}

	if _, err := roleRepo.Get(context.Background(), "guest:"+guestID); err != nil {
		t.Fatalf("roles not persisted: %v", err)
	}
}

func TestAnalyzeEndpointUnknownResume(t *testing.T) {
	r, _ := setupRouter(t, &fakeLLM{resp: "ignored"})

	w := doRequest(r, http.MethodPost, "/api/v1/resumes/nope/analyze", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), CodeDocumentUnavailable) {
		t.Fatalf("body missing error code: %s", w.Body.String())
	}
}

func TestAnalyzeEndpointUpstreamFailure(t *testing.T) {
	r, _ := setupRouter(t, &fakeLLM{err: context.DeadlineExceeded})

	w := doRequest(r, http.MethodPost, "/api/v1/resumes/resume-1/analyze", "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if !strings.Contains(w.Body.String(), CodeUpstreamError) {
		t.Fatalf("body missing error code: %s", w.Body.String())
	}
}

func TestATSEndpoint(t *testing.T) {
	r, _ := setupRouter(t, &fakeLLM{resp: `{"score": 64, "summary": "Decent resume.", "strengths": ["Go"], "weaknesses": ["Brevity"], "suggestions": ["Expand"]}`})

	w := doRequest(r, http.MethodPost, "/api/v1/resumes/resume-1/ats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var report ATSReport
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Score != 64 {
		t.Fatalf("score = %d, want 64", report.Score)
	}
}

func TestATSEndpointMalformedResponse(t *testing.T) {
	r, _ := setupRouter(t, &fakeLLM{resp: "not json"})

	w := doRequest(r, http.MethodPost, "/api/v1/resumes/resume-1/ats", "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if !strings.Contains(w.Body.String(), CodeAnalysisFailed) {
		t.Fatalf("body missing error code: %s", w.Body.String())
	}
}

func TestCoverLetterEndpoint(t *testing.T) {
	r, _ := setupRouter(t, &fakeLLM{resp: "Dear Hiring Manager,\n\nI am thrilled to apply."})

	w := doRequest(r, http.MethodPost, "/api/v1/cover-letter", `{"jobTitle": "Backend Engineer", "company": "Acme"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		CoverLetter string `json:"coverLetter"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(resp.CoverLetter, "Dear Hiring Manager,") {
		t.Fatalf("coverLetter = %q", resp.CoverLetter)
	}
}

func TestCoverLetterEndpointValidation(t *testing.T) {
	r, _ := setupRouter(t, &fakeLLM{resp: "ignored"})

	w := doRequest(r, http.MethodPost, "/api/v1/cover-letter", `{"jobTitle": "  "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCoverLetterEndpointNoResume(t *testing.T) {
	r, _ := setupRouter(t, &fakeLLM{resp: "ignored"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cover-letter", strings.NewReader(`{"jobTitle": "Backend Engineer", "company": "Acme"}`))
	req.Header.Set("X-Guest-Id", "someone-else")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), CodeNoDocument) {
		t.Fatalf("body missing error code: %s", w.Body.String())
	}
}
