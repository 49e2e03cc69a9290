package analysis

// ATSReport is the structured result of an ATS compatibility check. It is
// returned to the caller and never persisted.
type ATSReport struct {
	Score       int      `json:"score"`
	Summary     string   `json:"summary"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// clampScore bounds a raw score to the valid [0,100] range.
func clampScore(raw int) int {
	if raw < 0 {
		return 0
	}
	if raw > 100 {
		return 100
	}
	return raw
}
