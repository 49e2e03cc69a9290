package applications

import (
	"fmt"
	"strings"
	"time"
)

// Status is a kanban column for a tracked job application.
type Status string

const (
	StatusSaved        Status = "Saved"
	StatusApplied      Status = "Applied"
	StatusInterviewing Status = "Interviewing"
	StatusOffer        Status = "Offer"
	StatusRejected     Status = "Rejected"
)

// ParseStatus normalizes and validates a status value. Matching is
// case-insensitive; the canonical casing is returned.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "saved":
		return StatusSaved, nil
	case "applied":
		return StatusApplied, nil
	case "interviewing":
		return StatusInterviewing, nil
	case "offer":
		return StatusOffer, nil
	case "rejected":
		return StatusRejected, nil
	default:
		return "", fmt.Errorf("unknown status %q", raw)
	}
}

// Application is a job the user is tracking.
type Application struct {
	ID        string
	UserID    string
	JobTitle  string
	Company   string
	Location  string
	JobURL    string
	Notes     string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
