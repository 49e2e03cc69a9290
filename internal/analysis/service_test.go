package analysis

import (
	"bytes"
	"context"
	"errors"
	"path"
	"testing"
	"time"

	"careerpilot-backend/internal/llm"
	"careerpilot-backend/internal/resumes"
	"careerpilot-backend/internal/roles"
	"careerpilot-backend/internal/shared/storage/object"
	"careerpilot-backend/internal/shared/storage/object/local"
)

type fakeLLM struct {
	resp    string
	err     error
	lastReq llm.Request
	calls   int
}

func (f *fakeLLM) Generate(_ context.Context, req llm.Request) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.resp, nil
}

type fixture struct {
	svc      *Service
	resumes  *resumes.MemoryRepo
	roles    *roles.MemoryRepo
	store    object.ObjectStore
	llm      *fakeLLM
	userID   string
	resumeID string
}

// newFixture seeds one user with one resume whose bytes are present in a
// tempdir-backed store.
func newFixture(t *testing.T, client *fakeLLM) *fixture {
	t.Helper()

	store := local.New(t.TempDir())
	resumeRepo := resumes.NewMemoryRepo()
	roleRepo := roles.NewMemoryRepo()

	userID := "user-1"
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

	return &fixture{
		svc:      svc,
		resumes:  resumeRepo,
		roles:    roleRepo,
		store:    store,
		llm:      client,
		userID:   userID,
		resumeID: rec.ID,
	}
}

func TestAnalyzeRolesReplacesSuggestionSet(t *testing.T) {
	fx := newFixture(t, &fakeLLM{resp: "Software Engineer, Backend Developer, DevOps Engineer"})

	got, err := fx.svc.AnalyzeRoles(context.Background(), fx.userID, fx.resumeID)
	if err != nil {
		t.Fatalf("AnalyzeRoles: %v", err)
	}
	if len(got) != 3 || got[0] != "Software Engineer" {
		t.Fatalf("roles = %v", got)
	}

	set, err := fx.roles.Get(context.Background(), fx.userID)
	if err != nil {
		t.Fatalf("roles not persisted: %v", err)
	}
	if len(set.Roles) != 3 {
		t.Fatalf("persisted roles = %v", set.Roles)
	}

	if fx.llm.lastReq.Document == nil || fx.llm.lastReq.Document.MIMEType != "application/pdf" {
		t.Fatalf("document not dispatched: %+v", fx.llm.lastReq.Document)
	}
}

func TestAnalyzeRolesEmptyListSkipsRegistry(t *testing.T) {
	fx := newFixture(t, &fakeLLM{resp: "   "})

	got, err := fx.svc.AnalyzeRoles(context.Background(), fx.userID, fx.resumeID)
	if err != nil {
		t.Fatalf("AnalyzeRoles: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("roles = %v, want empty", got)
	}

	if _, err := fx.roles.Get(context.Background(), fx.userID); !errors.Is(err, roles.ErrNotFound) {
		t.Fatalf("registry should be untouched, got err=%v", err)
	}
}

func TestAnalyzeRolesUpstreamFailureLeavesRegistry(t *testing.T) {
	fx := newFixture(t, &fakeLLM{err: llm.ErrUpstream})
	if err := fx.roles.Replace(context.Background(), fx.userID, []string{"Old Role"}); err != nil {
		t.Fatalf("seed roles: %v", err)
	}

	_, err := fx.svc.AnalyzeRoles(context.Background(), fx.userID, fx.resumeID)
	if !errors.Is(err, llm.ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}

	set, err := fx.roles.Get(context.Background(), fx.userID)
	if err != nil || len(set.Roles) != 1 || set.Roles[0] != "Old Role" {
		t.Fatalf("previous set must survive a failed analysis: %v %v", set, err)
	}
}

func TestAnalyzeRolesUnknownResume(t *testing.T) {
	fx := newFixture(t, &fakeLLM{resp: "ignored"})

	_, err := fx.svc.AnalyzeRoles(context.Background(), fx.userID, "nope")
	if !errors.Is(err, ErrDocumentUnavailable) {
		t.Fatalf("err = %v, want ErrDocumentUnavailable", err)
	}
	if fx.llm.calls != 0 {
		t.Fatalf("collaborator must not be called for unknown resume")
	}
}

func TestAnalyzeRolesReclaimsGhostRecord(t *testing.T) {
	fx := newFixture(t, &fakeLLM{resp: "ignored"})

	rec, err := fx.resumes.GetByID(context.Background(), fx.userID, fx.resumeID)
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if err := fx.store.Delete(context.Background(), rec.StorageKey); err != nil {
		t.Fatalf("delete bytes: %v", err)
	}

	_, err = fx.svc.AnalyzeRoles(context.Background(), fx.userID, fx.resumeID)
	if !errors.Is(err, ErrDocumentUnavailable) {
		t.Fatalf("err = %v, want ErrDocumentUnavailable", err)
	}

	if _, err := fx.resumes.GetByID(context.Background(), fx.userID, fx.resumeID); !errors.Is(err, resumes.ErrNotFound) {
		t.Fatalf("ghost record should be reclaimed, got err=%v", err)
	}
	if fx.llm.calls != 0 {
		t.Fatalf("collaborator must not be called for missing bytes")
	}
}

func TestAnalyzeRolesRecoversDriftedKey(t *testing.T) {
	fx := newFixture(t, &fakeLLM{resp: "Platform Engineer"})

	rec, err := fx.resumes.GetByID(context.Background(), fx.userID, fx.resumeID)
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	// Corrupt the owner prefix but keep the unique base name intact.
	drifted := rec
	drifted.StorageKey = "stale-prefix/" + path.Base(rec.StorageKey)
	if err := fx.resumes.Delete(context.Background(), fx.userID, rec.ID); err != nil {
		t.Fatalf("delete record: %v", err)
	}
	if err := fx.resumes.Create(context.Background(), drifted); err != nil {
		t.Fatalf("recreate record: %v", err)
	}

	got, err := fx.svc.AnalyzeRoles(context.Background(), fx.userID, fx.resumeID)
	if err != nil {
		t.Fatalf("AnalyzeRoles after drift: %v", err)
	}
	if len(got) != 1 || got[0] != "Platform Engineer" {
		t.Fatalf("roles = %v", got)
	}
}

func TestScoreATSReturnsReport(t *testing.T) {
	fx := newFixture(t, &fakeLLM{resp: "```json\n" + `{"score": 85, "summary": "Strong candidate overall.", "strengths": ["Go"], "weaknesses": ["Layout"], "suggestions": ["Add metrics"]}` + "\n```"})

	report, err := fx.svc.ScoreATS(context.Background(), fx.userID, fx.resumeID)
	if err != nil {
		t.Fatalf("ScoreATS: %v", err)
	}
	if report.Score != 85 || report.Summary == "" {
		t.Fatalf("report = %+v", report)
	}
}

func TestScoreATSMalformedResponse(t *testing.T) {
	fx := newFixture(t, &fakeLLM{resp: "I cannot answer in JSON today."})

	_, err := fx.svc.ScoreATS(context.Background(), fx.userID, fx.resumeID)
	if !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("err = %v, want ErrAnalysisFailed", err)
	}
	if fx.llm.calls != 1 {
		t.Fatalf("a malformed response is not retried, calls = %d", fx.llm.calls)
	}
	if _, err := fx.roles.Get(context.Background(), fx.userID); !errors.Is(err, roles.ErrNotFound) {
		t.Fatalf("ATS scoring must not touch the role registry")
	}
}

func TestGenerateCoverLetterUsesLatestResume(t *testing.T) {
	fx := newFixture(t, &fakeLLM{resp: "\nDear Hiring Manager,\n\nI am excited to apply.\n"})

	letter, err := fx.svc.GenerateCoverLetter(context.Background(), fx.userID, "Backend Engineer", "Acme", "")
	if err != nil {
		t.Fatalf("GenerateCoverLetter: %v", err)
	}
	if letter != "Dear Hiring Manager,\n\nI am excited to apply." {
		t.Fatalf("letter = %q", letter)
	}
}

func TestGenerateCoverLetterNoResume(t *testing.T) {
	fx := newFixture(t, &fakeLLM{resp: "ignored"})

	_, err := fx.svc.GenerateCoverLetter(context.Background(), "user-without-resume", "Backend Engineer", "Acme", "")
	if !errors.Is(err, ErrNoDocument) {
		t.Fatalf("err = %v, want ErrNoDocument", err)
	}
	if fx.llm.calls != 0 {
		t.Fatalf("collaborator must not be called without a resume")
	}
}
