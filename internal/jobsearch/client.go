package jobsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://jsearch.p.rapidapi.com"

var (
	// ErrNotConfigured means no API key was supplied.
	ErrNotConfigured = errors.New("job search is not configured")
	// ErrUpstream means the search provider failed or answered abnormally.
	ErrUpstream = errors.New("job search provider error")
)

// Job is one listing from the search provider.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	ApplyLink   string `json:"applyLink"`
	Description string `json:"description,omitempty"`
	PostedAt    string `json:"postedAt,omitempty"`
	IsRemote    bool   `json:"isRemote"`
}

// Client proxies job searches to the JSearch API on RapidAPI.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient constructs a Client. An empty apiKey yields a client whose
// Search always returns ErrNotConfigured.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// jsearchResponse mirrors the provider's envelope; only the fields we
// project are declared.
type jsearchResponse struct {
	Data []struct {
		JobID          string `json:"job_id"`
		JobTitle       string `json:"job_title"`
		EmployerName   string `json:"employer_name"`
		JobCity        string `json:"job_city"`
		JobCountry     string `json:"job_country"`
		JobApplyLink   string `json:"job_apply_link"`
		JobDescription string `json:"job_description"`
		JobPostedAt    string `json:"job_posted_at_datetime_utc"`
		JobIsRemote    bool   `json:"job_is_remote"`
	} `json:"data"`
}

// Search queries listings for a role, optionally scoped to a city. Page is
// 1-based; values below 1 mean the first page.
func (c *Client) Search(ctx context.Context, role, city string, page int) ([]Job, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, fmt.Errorf("role is required")
	}

	query := role + " jobs"
	if city = strings.TrimSpace(city); city != "" {
		query += " in " + city
	}
	if page < 1 {
		page = 1
	}

	u := fmt.Sprintf("%s/search?query=%s&page=%d&num_pages=1", c.baseURL, url.QueryEscape(query), page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", "jsearch.p.rapidapi.com")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope jsearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}

	jobs := make([]Job, 0, len(envelope.Data))
	for _, d := range envelope.Data {
		location := d.JobCity
		if d.JobCountry != "" {
			if location != "" {
				location += ", "
			}
			location += d.JobCountry
		}
		jobs = append(jobs, Job{
			ID:          d.JobID,
			Title:       d.JobTitle,
			Company:     d.EmployerName,
			Location:    location,
			ApplyLink:   d.JobApplyLink,
			Description: d.JobDescription,
			PostedAt:    d.JobPostedAt,
			IsRemote:    d.JobIsRemote,
		})
	}
	return jobs, nil
}
