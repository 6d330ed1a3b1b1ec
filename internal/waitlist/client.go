package waitlist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrDuplicate reports that the email is already on the waitlist. Callers
// should present this as a soft success, not a failure.
var ErrDuplicate = errors.New("email already on waitlist")

// ErrNotConfigured reports that the hosted backend configuration is absent
// or structurally invalid. No network call is attempted in that state.
var ErrNotConfigured = errors.New("waitlist backend is not configured")

// ToolInterestNone is the placeholder option in the signup form; it is never
// a valid submission value.
const ToolInterestNone = "None"

// ToolInterests are the selectable tool-interest values.
var ToolInterests = []string{
	"Vibe Code Prompt Generator",
	"Vibe Coding Prompt Optimizer/Rewriter",
	"Prebuilt Prompts to Fix Vide Code Error Loops",
}

// Client inserts waitlist rows into a hosted Supabase table through the
// PostgREST API. One outbound call per submission; no retries.
type Client struct {
	baseURL string
	anonKey string
	client  *http.Client
}

// NewClient validates the Supabase configuration and returns a client.
// Placeholder values from config templates count as unconfigured.
func NewClient(supabaseURL, anonKey string) (*Client, error) {
	if !configured(supabaseURL, anonKey) {
		return nil, ErrNotConfigured
	}
	return &Client{
		baseURL: strings.TrimRight(supabaseURL, "/"),
		anonKey: anonKey,
		client:  &http.Client{},
	}, nil
}

func configured(supabaseURL, anonKey string) bool {
	if supabaseURL == "" || anonKey == "" {
		return false
	}
	if strings.Contains(supabaseURL, "your_supabase_project_url_here") ||
		strings.Contains(supabaseURL, "your-project-id") ||
		strings.Contains(anonKey, "your_supabase_anon_key") {
		return false
	}
	u, err := url.Parse(supabaseURL)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

type waitlistRow struct {
	Email        string `json:"email"`
	ToolInterest string `json:"tool_interest"`
}

// postgrestError is the error shape returned by the PostgREST layer.
type postgrestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Submit inserts one waitlist row. The creation timestamp is assigned
// server-side. A duplicate email returns ErrDuplicate.
func (c *Client) Submit(ctx context.Context, email, toolInterest string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email must not be empty")
	}
	if toolInterest == "" || toolInterest == ToolInterestNone {
		return fmt.Errorf("a tool interest must be selected")
	}

	body, err := json.Marshal([]waitlistRow{{Email: email, ToolInterest: toolInterest}})
	if err != nil {
		return fmt.Errorf("marshalling waitlist row: %w", err)
	}

	endpoint := c.baseURL + "/rest/v1/waitlist"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating waitlist request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("waitlist request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	respBody, _ := io.ReadAll(resp.Body)
	var pgErr postgrestError
	_ = json.Unmarshal(respBody, &pgErr)

	if pgErr.Code == "23505" ||
		strings.Contains(pgErr.Message, "duplicate") ||
		strings.Contains(pgErr.Message, "unique") {
		return ErrDuplicate
	}

	return fmt.Errorf("waitlist insert returned status %d: %s", resp.StatusCode, pgErr.Message)
}
