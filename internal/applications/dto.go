package applications

import "time"

// ApplicationResponse is the public projection of an Application.
type ApplicationResponse struct {
	ID        string    `json:"id"`
	JobTitle  string    `json:"jobTitle"`
	Company   string    `json:"company"`
	Location  string    `json:"location,omitempty"`
	JobURL    string    `json:"jobUrl,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(app Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        app.ID,
		JobTitle:  app.JobTitle,
		Company:   app.Company,
		Location:  app.Location,
		JobURL:    app.JobURL,
		Notes:     app.Notes,
		Status:    string(app.Status),
		CreatedAt: app.CreatedAt,
		UpdatedAt: app.UpdatedAt,
	}
}
