package convert

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tricreta/promptparse/internal/llm"
	"github.com/tricreta/promptparse/internal/schemas"
)

// Converter turns natural-language text into JSON through a single LLM call
// per operation. It is stateless across calls; conversational continuity
// exists only because the caller resupplies history on each request.
type Converter struct {
	provider llm.Provider
	model    string

	// unavailable holds the reason every call must fail immediately, e.g.
	// a missing API key. Empty when the provider is usable.
	unavailable string
}

// New creates a Converter backed by the given provider and model.
func New(provider llm.Provider, model string) *Converter {
	return &Converter{provider: provider, model: model}
}

// NewUnavailable creates a Converter whose every conversion and repair call
// fails immediately with the given reason. This keeps the rest of the system
// serving when the LLM credential is absent.
func NewUnavailable(reason string) *Converter {
	return &Converter{unavailable: reason}
}

// ConvertBasic converts text into JSON representing the literal request.
func (c *Converter) ConvertBasic(ctx context.Context, text string) ConversationResult {
	if c.unavailable != "" {
		return ConversationResult{Status: StatusReady, Error: c.unavailable}
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		Model:       c.model,
		System:      basicSystemPrompt,
		Prompt:      fmt.Sprintf(basicUserPrompt, text),
		Temperature: convertTemperature,
	})
	if err != nil {
		return ConversationResult{Status: StatusReady, Error: err.Error()}
	}

	return Classify(resp.Text, resp.TokensUsed)
}

// ConvertAdvanced expands text into a comprehensive, domain-appropriate JSON
// specification. Prior turns, if any, are appended verbatim to the system
// instructions, oldest first.
func (c *Converter) ConvertAdvanced(ctx context.Context, text string, history []Turn) ConversationResult {
	if c.unavailable != "" {
		return ConversationResult{Status: StatusReady, Error: c.unavailable}
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		Model:       c.model,
		System:      comprehensiveSystemPrompt + historyContext(history),
		Prompt:      fmt.Sprintf(advancedUserPrompt, text),
		Temperature: convertTemperature,
	})
	if err != nil {
		return ConversationResult{Status: StatusReady, Error: err.Error()}
	}

	return Classify(resp.Text, resp.TokensUsed)
}

// historyContext renders prior turns as plain "role: content" lines for
// inclusion in the system instructions.
func historyContext(history []Turn) string {
	if len(history) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nConversation History:\n")
	for i, turn := range history {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(turn.Role)
		b.WriteString(": ")
		b.WriteString(turn.Content)
	}
	b.WriteByte('\n')
	return b.String()
}

// Repair asks the model to fix syntax errors in invalid JSON. Unlike
// conversion there is no clarification state: non-JSON model output is a
// failure, and the original input is echoed back unchanged.
func (c *Converter) Repair(ctx context.Context, invalidJSON string, validationErrors []string) RepairResult {
	if c.unavailable != "" {
		return RepairResult{Success: false, JSON: invalidJSON, Error: c.unavailable}
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		Model:       c.model,
		System:      repairSystemPrompt,
		Prompt:      fmt.Sprintf(repairUserPrompt, invalidJSON, strings.Join(validationErrors, ", ")),
		Temperature: repairTemperature,
	})
	if err != nil {
		return RepairResult{Success: false, JSON: invalidJSON, Error: err.Error()}
	}

	trimmed := strings.TrimSpace(resp.Text)
	if !json.Valid([]byte(trimmed)) {
		return RepairResult{
			Success: false,
			JSON:    invalidJSON,
			Error:   "Repair failed - AI returned invalid JSON",
		}
	}

	return RepairResult{
		Success:    true,
		JSON:       prettyJSON(trimmed),
		TokensUsed: resp.TokensUsed,
	}
}

// DetectSchema suggests catalog schemas for the given text. It deliberately
// makes no model call: the first three catalog entries are echoed back at a
// constant confidence, and the first entry is selected. Callers must not
// read real semantic matching into the confidences.
func DetectSchema(text string, catalog []schemas.Definition) DetectResult {
	matches := make([]SchemaMatch, 0, 3)
	for i := 0; i < len(catalog) && i < 3; i++ {
		matches = append(matches, SchemaMatch{Schema: catalog[i], Confidence: 0.5})
	}

	var selected *schemas.Definition
	if len(catalog) > 0 {
		selected = &catalog[0]
	}

	return DetectResult{
		Status:         StatusReady,
		Matches:        matches,
		SelectedSchema: selected,
	}
}
