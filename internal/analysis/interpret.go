package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseRoles splits the collaborator's role-suggestion text on commas,
// trimming each token and dropping empties. Order is preserved and
// duplicates are passed through unchanged: whether repetition carries
// ranking signal is the collaborator's business, not ours.
func parseRoles(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			roles = append(roles, trimmed)
		}
	}
	return roles
}

// stripFences removes leading/trailing markdown code-fence markers. The
// prompt forbids fencing, but the collaborator is non-deterministic, so the
// normalization is applied unconditionally; it is idempotent and a no-op on
// clean input.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// A language tag may follow the opening fence.
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// atsPayload mirrors ATSReport with a pointer score so an absent field can be
// told apart from a literal zero.
type atsPayload struct {
	Score       *int     `json:"score"`
	Summary     string   `json:"summary"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// parseATSReport strips formatting noise and decodes the remainder into an
// ATSReport. Structural failures are wrapped in ErrAnalysisFailed and are not
// retried here.
func parseATSReport(raw string) (ATSReport, error) {
	cleaned := stripFences(raw)

	var payload atsPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return ATSReport{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	if payload.Score == nil {
		return ATSReport{}, fmt.Errorf("%w: missing score", ErrAnalysisFailed)
	}
	if strings.TrimSpace(payload.Summary) == "" {
		return ATSReport{}, fmt.Errorf("%w: missing summary", ErrAnalysisFailed)
	}
	if payload.Strengths == nil || payload.Weaknesses == nil || payload.Suggestions == nil {
		return ATSReport{}, fmt.Errorf("%w: missing strengths/weaknesses/suggestions", ErrAnalysisFailed)
	}

	return ATSReport{
		Score:       clampScore(*payload.Score),
		Summary:     payload.Summary,
		Strengths:   payload.Strengths,
		Weaknesses:  payload.Weaknesses,
		Suggestions: payload.Suggestions,
	}, nil
}

// parseCoverLetter passes the collaborator's free text through with only a
// trim; there is no structure to validate.
func parseCoverLetter(raw string) string {
	return strings.TrimSpace(raw)
}
