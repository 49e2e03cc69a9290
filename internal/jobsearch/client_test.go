package jobsearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient("test-key")
	c.baseURL = srv.URL
	c.http = srv.Client()
	return c
}

func TestSearchBuildsQueryAndProjectsResults(t *testing.T) {
	var gotQuery, gotKey, gotPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotPage = r.URL.Query().Get("page")
		gotKey = r.Header.Get("x-rapidapi-key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [{
			"job_id": "j1",
			"job_title": "Backend Engineer",
			"employer_name": "Acme",
			"job_city": "Berlin",
			"job_country": "DE",
			"job_apply_link": "https://example.com/apply",
			"job_is_remote": false
		}]}`))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(srv)
	jobs, err := client.Search(context.Background(), "Backend Engineer", "Berlin", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotQuery != "Backend Engineer jobs in Berlin" {
		t.Fatalf("query = %q", gotQuery)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key header = %q", gotKey)
	}
	if gotPage != "2" {
		t.Fatalf("page = %q", gotPage)
	}
	if len(jobs) != 1 {
		t.Fatalf("jobs = %v", jobs)
	}
	if jobs[0].Company != "Acme" || jobs[0].Location != "Berlin, DE" {
		t.Fatalf("job = %+v", jobs[0])
	}
}

func TestSearchWithoutCity(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(srv)
	if _, err := client.Search(context.Background(), "Data Analyst", "", 0); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotQuery != "Data Analyst jobs" {
		t.Fatalf("query = %q", gotQuery)
	}
}

func TestSearchProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(srv)
	if _, err := client.Search(context.Background(), "Backend Engineer", "", 1); !errors.Is(err, ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
}

func TestSearchNotConfigured(t *testing.T) {
	client := NewClient("")
	if _, err := client.Search(context.Background(), "Backend Engineer", "", 1); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestSearchRequiresRole(t *testing.T) {
	client := NewClient("test-key")
	if _, err := client.Search(context.Background(), "   ", "", 1); err == nil {
		t.Fatal("empty role must fail")
	}
}
