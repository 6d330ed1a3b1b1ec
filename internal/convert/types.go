package convert

import "github.com/tricreta/promptparse/internal/schemas"

// Result statuses. A conversion is ready when the model produced valid JSON
// and need_info when its output reads as a clarification question instead.
const (
	StatusReady    = "ready"
	StatusNeedInfo = "need_info"
)

// Turn is one prior message in a conversation, resupplied by the caller on
// every request. Nothing is persisted server-side between calls.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConversationResult is the outcome of a basic or advanced conversion.
// Exactly one of JSON, Questions or Error is populated.
type ConversationResult struct {
	Status     string   `json:"status"`
	Questions  []string `json:"questions,omitempty"`
	JSON       string   `json:"json,omitempty"`
	Error      string   `json:"error,omitempty"`
	TokensUsed int      `json:"tokensUsed,omitempty"`
}

// RepairResult is the outcome of a repair call. On failure JSON carries the
// original invalid input unchanged so the caller does not lose data.
type RepairResult struct {
	Success    bool   `json:"success"`
	JSON       string `json:"json"`
	Error      string `json:"error,omitempty"`
	TokensUsed int    `json:"tokensUsed,omitempty"`
}

// SchemaMatch pairs a catalog definition with a detection confidence.
type SchemaMatch struct {
	Schema     schemas.Definition `json:"schema"`
	Confidence float64            `json:"confidence"`
}

// DetectResult is the outcome of schema detection.
type DetectResult struct {
	Status         string              `json:"status"`
	Matches        []SchemaMatch       `json:"matches"`
	SelectedSchema *schemas.Definition `json:"selectedSchema"`
}
