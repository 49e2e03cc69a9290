package roles

import "time"

// SuggestionSet is the latest set of suggested job roles for a user.
// At most one set exists per user; each analysis replaces it wholesale.
type SuggestionSet struct {
	UserID    string    `json:"userId"`
	Roles     []string  `json:"roles"`
	UpdatedAt time.Time `json:"updatedAt"`
}
