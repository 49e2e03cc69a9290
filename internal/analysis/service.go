package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"careerpilot-backend/internal/llm"
	"careerpilot-backend/internal/resumes"
	"careerpilot-backend/internal/roles"
	"careerpilot-backend/internal/shared/metrics"
	"careerpilot-backend/internal/shared/storage/object"
	"careerpilot-backend/internal/shared/telemetry"
)

// Service orchestrates resume analysis: it reconciles the document against
// storage, dispatches a prompt to the generative collaborator, and turns the
// free-form answer into a typed result. It holds no mutable state; every
// operation is an independent unit of work.
type Service struct {
	Resumes resumes.Repo
	Locator *resumes.Locator
	Store   object.ObjectStore
	Roles   roles.Repo
	LLM     llm.Client
}

// AnalyzeRoles asks the collaborator for the top job roles matching the
// resume and replaces the user's suggested-role set with the outcome. An
// empty role list is a valid result, not an error; the registry is only
// written when at least one role came back.
func (s *Service) AnalyzeRoles(ctx context.Context, userID, resumeID string) ([]string, error) {
	started := time.Now()
	metrics.IncAnalysisStarted()

	doc, data, err := s.loadResume(ctx, userID, resumeID)
	if err != nil {
		metrics.IncAnalysisFailed()
		return nil, err
	}

	raw, err := s.LLM.Generate(ctx, buildRoleSuggestionRequest(data, doc.MimeType))
	if err != nil {
		metrics.IncAnalysisFailed()
		return nil, s.upstream("analyze_roles", resumeID, err)
	}

	roleList := parseRoles(raw)
	if len(roleList) > 0 {
		if err := s.Roles.Replace(ctx, userID, roleList); err != nil {
			metrics.IncAnalysisFailed()
			return nil, fmt.Errorf("replace roles: %w", err)
		}
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	telemetry.Info("analysis.roles_complete", map[string]any{
		"user_id":    userID,
		"resume_id":  resumeID,
		"role_count": len(roleList),
	})

	return roleList, nil
}

// ScoreATS asks the collaborator for an ATS compatibility report. The report
// is transient: it is returned to the caller and never persisted. A response
// that cannot be validated surfaces as ErrAnalysisFailed without a retry.
func (s *Service) ScoreATS(ctx context.Context, userID, resumeID string) (ATSReport, error) {
	started := time.Now()
	metrics.IncAnalysisStarted()

	doc, data, err := s.loadResume(ctx, userID, resumeID)
	if err != nil {
		metrics.IncAnalysisFailed()
		return ATSReport{}, err
	}

	raw, err := s.LLM.Generate(ctx, buildATSScoringRequest(data, doc.MimeType))
	if err != nil {
		metrics.IncAnalysisFailed()
		return ATSReport{}, s.upstream("score_ats", resumeID, err)
	}

	report, err := parseATSReport(raw)
	if err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis.ats_malformed", map[string]any{
			"user_id":   userID,
			"resume_id": resumeID,
			"error":     err.Error(),
		})
		return ATSReport{}, err
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)

	return report, nil
}

// GenerateCoverLetter writes a cover letter for the given position using the
// user's most recently uploaded resume. It fails fast with ErrNoDocument
// before any collaborator dispatch when the user has no resume.
func (s *Service) GenerateCoverLetter(ctx context.Context, userID, jobTitle, company, jobDescription string) (string, error) {
	rec, err := s.Resumes.GetCurrentByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return "", ErrNoDocument
		}
		return "", err
	}

	data, err := s.readResolved(ctx, rec)
	if err != nil {
		return "", err
	}

	raw, err := s.LLM.Generate(ctx, buildCoverLetterRequest(data, rec.MimeType, jobTitle, company, jobDescription))
	if err != nil {
		return "", s.upstream("cover_letter", rec.ID, err)
	}

	return parseCoverLetter(raw), nil
}

// loadResume fetches the record and its bytes for an analysis flow. A record
// whose bytes are gone is garbage-collected here, so a dead record cannot be
// selected over and over.
func (s *Service) loadResume(ctx context.Context, userID, resumeID string) (resumes.Resume, []byte, error) {
	rec, err := s.Resumes.GetByID(ctx, userID, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			return resumes.Resume{}, nil, ErrDocumentUnavailable
		}
		return resumes.Resume{}, nil, err
	}

	data, err := s.readResolved(ctx, rec)
	if err != nil {
		return resumes.Resume{}, nil, err
	}
	return rec, data, nil
}

// readResolved resolves the record against storage and reads the bytes.
// Resolution failure deletes the record (garbage collection on read) and
// surfaces ErrDocumentUnavailable.
func (s *Service) readResolved(ctx context.Context, rec resumes.Resume) ([]byte, error) {
	key, err := s.Locator.Resolve(ctx, rec)
	if err != nil {
		if errors.Is(err, resumes.ErrFileMissing) {
			if delErr := s.Resumes.Delete(ctx, rec.UserID, rec.ID); delErr != nil {
				telemetry.Error("analysis.gc_delete_failed", map[string]any{
					"resume_id": rec.ID,
					"error":     delErr.Error(),
				})
			} else {
				metrics.IncRecordReclaimed()
				telemetry.Info("analysis.record_reclaimed", map[string]any{
					"resume_id":  rec.ID,
					"user_id":    rec.UserID,
					"stored_key": rec.StorageKey,
				})
			}
			return nil, ErrDocumentUnavailable
		}
		return nil, err
	}

	body, err := s.Store.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open resume %s: %w", rec.ID, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read resume %s: %w", rec.ID, err)
	}
	return data, nil
}

func (s *Service) upstream(op, resumeID string, err error) error {
	metrics.IncUpstreamError()
	telemetry.Error("analysis.upstream_error", map[string]any{
		"op":        op,
		"resume_id": resumeID,
		"error":     err.Error(),
	})
	if errors.Is(err, llm.ErrUpstream) || errors.Is(err, llm.ErrNotConfigured) {
		return err
	}
	return fmt.Errorf("%w: %v", llm.ErrUpstream, err)
}
