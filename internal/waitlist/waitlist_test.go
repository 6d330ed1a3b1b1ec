package waitlist

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestNewClientUnconfigured(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  string
	}{
		{"empty url", "", "real-key"},
		{"empty key", "https://proj.supabase.co", ""},
		{"placeholder url", "https://your_supabase_project_url_here", "real-key"},
		{"placeholder project", "https://your-project-id.supabase.co", "real-key"},
		{"placeholder key", "https://proj.supabase.co", "your_supabase_anon_key"},
		{"malformed url", "not a url", "real-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.url, tt.key)
			if !errors.Is(err, ErrNotConfigured) {
				t.Errorf("NewClient(%q, %q) err = %v, want ErrNotConfigured", tt.url, tt.key, err)
			}
		})
	}
}

func TestNewClientConfigured(t *testing.T) {
	client, err := NewClient("https://proj.supabase.co/", "real-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.baseURL != "https://proj.supabase.co" {
		t.Errorf("baseURL = %q, trailing slash should be stripped", client.baseURL)
	}
}

func TestSubmitSuccess(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("apikey")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "anon-key")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if err := client.Submit(context.Background(), "  user@example.com ", ToolInterests[0]); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if gotPath != "/rest/v1/waitlist" {
		t.Errorf("path = %q, want /rest/v1/waitlist", gotPath)
	}
	if gotAPIKey != "anon-key" {
		t.Errorf("apikey header = %q", gotAPIKey)
	}

	var rows []waitlistRow
	if err := json.Unmarshal(gotBody, &rows); err != nil {
		t.Fatalf("request body: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Email != "user@example.com" {
		t.Errorf("email = %q, should be trimmed", rows[0].Email)
	}
	if rows[0].ToolInterest != ToolInterests[0] {
		t.Errorf("tool_interest = %q", rows[0].ToolInterest)
	}
}

func TestSubmitDuplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint \"waitlist_email_key\""}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "anon-key")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	err = client.Submit(context.Background(), "user@example.com", ToolInterests[0])
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("err = %v, want ErrDuplicate", err)
	}
}

func TestSubmitBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"code":"XX000","message":"connection pool exhausted"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "anon-key")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	err = client.Submit(context.Background(), "user@example.com", ToolInterests[0])
	if err == nil || errors.Is(err, ErrDuplicate) {
		t.Errorf("expected hard failure, got %v", err)
	}
}

func TestSubmitRejectsBadInput(t *testing.T) {
	client, err := NewClient("https://proj.supabase.co", "anon-key")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if err := client.Submit(context.Background(), "", ToolInterests[0]); err == nil {
		t.Error("expected error for empty email")
	}
	if err := client.Submit(context.Background(), "user@example.com", ToolInterestNone); err == nil {
		t.Error("expected error for sentinel tool interest")
	}
}

func postWaitlist(t *testing.T, r chi.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/waitlist", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWaitlistEndpointDuplicateIsSoftSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"code":"23505","message":"duplicate key"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "anon-key")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, client)

	w := postWaitlist(t, r, `{"email":"user@example.com","toolInterest":"Vibe Code Prompt Generator"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp submitResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success {
		t.Error("duplicate should read as success")
	}
	if resp.Message != "Already on the waitlist!" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestWaitlistEndpointValidation(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, nil)

	for _, body := range []string{
		`{"email":"","toolInterest":"Vibe Code Prompt Generator"}`,
		`{"email":"user@example.com","toolInterest":""}`,
		`{"email":"user@example.com","toolInterest":"None"}`,
	} {
		w := postWaitlist(t, r, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestWaitlistEndpointUnconfigured(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, nil)

	w := postWaitlist(t, r, `{"email":"user@example.com","toolInterest":"Vibe Code Prompt Generator"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestWaitlistEndpointHidesBackendDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"code":"XX000","message":"secret internal detail"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "anon-key")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, client)

	w := postWaitlist(t, r, `{"email":"user@example.com","toolInterest":"Vibe Code Prompt Generator"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "secret internal detail") {
		t.Error("backend error detail must not leak to the client")
	}
}
