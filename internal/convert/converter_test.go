package convert

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tricreta/promptparse/internal/llm"
	"github.com/tricreta/promptparse/internal/schemas"
)

// fakeProvider returns a canned response and records the last request.
type fakeProvider struct {
	lastReq llm.Request
	text    string
	tokens  int
	err     error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{Text: f.text, TokensUsed: f.tokens, Model: req.Model}, nil
}

func TestConvertBasicSuccess(t *testing.T) {
	fake := &fakeProvider{text: `{"name":"John Doe","age":30,"company":"TechCorp"}`, tokens: 40}
	conv := New(fake, "gemini-1.5-flash")

	result := conv.ConvertBasic(context.Background(), "John Doe, age 30, works at TechCorp")

	if result.Status != StatusReady {
		t.Fatalf("Status = %q, want ready", result.Status)
	}
	want := "{\n  \"name\": \"John Doe\",\n  \"age\": 30,\n  \"company\": \"TechCorp\"\n}"
	if result.JSON != want {
		t.Errorf("JSON = %q, want %q", result.JSON, want)
	}
	if result.TokensUsed != 40 {
		t.Errorf("TokensUsed = %d, want 40", result.TokensUsed)
	}

	if fake.lastReq.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", fake.lastReq.Temperature)
	}
	if !strings.Contains(fake.lastReq.Prompt, `"John Doe, age 30, works at TechCorp"`) {
		t.Errorf("user prompt should quote the input, got %q", fake.lastReq.Prompt)
	}
	if fake.lastReq.System != basicSystemPrompt {
		t.Error("basic conversion should use the basic system prompt")
	}
}

func TestConvertBasicClarification(t *testing.T) {
	fake := &fakeProvider{text: "Could you specify the poster's dimensions?"}
	conv := New(fake, "gemini-1.5-flash")

	result := conv.ConvertBasic(context.Background(), "make me a poster")

	if result.Status != StatusNeedInfo {
		t.Fatalf("Status = %q, want need_info", result.Status)
	}
	if len(result.Questions) != 1 || result.Questions[0] != "Could you specify the poster's dimensions?" {
		t.Errorf("Questions = %v", result.Questions)
	}
}

func TestConvertBasicProviderError(t *testing.T) {
	fake := &fakeProvider{err: errors.New("gemini returned status 503")}
	conv := New(fake, "gemini-1.5-flash")

	result := conv.ConvertBasic(context.Background(), "anything")

	if result.Status != StatusReady {
		t.Fatalf("Status = %q, want ready", result.Status)
	}
	if result.Error != "gemini returned status 503" {
		t.Errorf("Error = %q", result.Error)
	}
	if result.JSON != "" {
		t.Errorf("JSON should be empty on provider error, got %q", result.JSON)
	}
}

func TestUnavailableConverter(t *testing.T) {
	conv := NewUnavailable("Google API key is missing. Set GOOGLE_API_KEY.")

	result := conv.ConvertBasic(context.Background(), "anything")
	if result.Error != "Google API key is missing. Set GOOGLE_API_KEY." {
		t.Errorf("ConvertBasic Error = %q", result.Error)
	}

	adv := conv.ConvertAdvanced(context.Background(), "anything", nil)
	if adv.Error == "" {
		t.Error("ConvertAdvanced should fail on unavailable converter")
	}

	rep := conv.Repair(context.Background(), "{bad", nil)
	if rep.Success {
		t.Error("Repair should fail on unavailable converter")
	}
	if rep.JSON != "{bad" {
		t.Errorf("Repair should echo original input, got %q", rep.JSON)
	}
}

func TestConvertAdvancedHistory(t *testing.T) {
	fake := &fakeProvider{text: `{"ok":true}`}
	conv := New(fake, "gemini-1.5-flash")

	history := []Turn{
		{Role: "user", Content: "make a poster"},
		{Role: "assistant", Content: "What size?"},
	}
	conv.ConvertAdvanced(context.Background(), "A2, red theme", history)

	sys := fake.lastReq.System
	if !strings.HasPrefix(sys, comprehensiveSystemPrompt) {
		t.Error("advanced conversion should start from the comprehensive prompt")
	}
	wantCtx := "\n\nConversation History:\nuser: make a poster\nassistant: What size?\n"
	if !strings.HasSuffix(sys, wantCtx) {
		t.Errorf("system prompt should end with history context, got suffix %q", sys[len(comprehensiveSystemPrompt):])
	}
	if fake.lastReq.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", fake.lastReq.Temperature)
	}
}

func TestConvertAdvancedNoHistory(t *testing.T) {
	fake := &fakeProvider{text: `{"ok":true}`}
	conv := New(fake, "gemini-1.5-flash")

	conv.ConvertAdvanced(context.Background(), "build a course", nil)

	if fake.lastReq.System != comprehensiveSystemPrompt {
		t.Error("empty history should not alter the system prompt")
	}
}

func TestRepairSuccess(t *testing.T) {
	fake := &fakeProvider{text: `{"name": "Jo"}`, tokens: 15}
	conv := New(fake, "gemini-1.5-flash")

	result := conv.Repair(context.Background(), "{name: 'Jo}", []string{"unexpected token", "unterminated string"})

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.JSON != "{\n  \"name\": \"Jo\"\n}" {
		t.Errorf("JSON = %q", result.JSON)
	}
	if result.TokensUsed != 15 {
		t.Errorf("TokensUsed = %d, want 15", result.TokensUsed)
	}

	if fake.lastReq.Temperature != 0.1 {
		t.Errorf("Temperature = %v, want 0.1", fake.lastReq.Temperature)
	}
	if !strings.Contains(fake.lastReq.Prompt, "{name: 'Jo}") {
		t.Error("user prompt should embed the invalid JSON")
	}
	if !strings.Contains(fake.lastReq.Prompt, "unexpected token, unterminated string") {
		t.Error("user prompt should embed the joined error list")
	}
}

func TestRepairStillInvalid(t *testing.T) {
	fake := &fakeProvider{text: "I could not fix that JSON."}
	conv := New(fake, "gemini-1.5-flash")

	result := conv.Repair(context.Background(), "{name: 'Jo}", []string{"unexpected token"})

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Error != "Repair failed - AI returned invalid JSON" {
		t.Errorf("Error = %q", result.Error)
	}
	if result.JSON != "{name: 'Jo}" {
		t.Errorf("original input should be echoed back, got %q", result.JSON)
	}
}

func TestRepairProviderError(t *testing.T) {
	fake := &fakeProvider{err: errors.New("network down")}
	conv := New(fake, "gemini-1.5-flash")

	result := conv.Repair(context.Background(), "{bad", nil)

	if result.Success {
		t.Fatal("expected failure")
	}
	if result.JSON != "{bad" {
		t.Errorf("JSON = %q, want original input", result.JSON)
	}
	if result.Error != "network down" {
		t.Errorf("Error = %q", result.Error)
	}
}

func TestDetectSchemaStub(t *testing.T) {
	result := DetectSchema("a blog post about turtles", schemas.Catalog)

	if result.Status != StatusReady {
		t.Fatalf("Status = %q, want ready", result.Status)
	}
	if len(result.Matches) != 3 {
		t.Fatalf("Matches len = %d, want 3", len(result.Matches))
	}
	for _, m := range result.Matches {
		if m.Confidence != 0.5 {
			t.Errorf("Confidence = %v, want constant 0.5", m.Confidence)
		}
	}
	if result.SelectedSchema == nil || result.SelectedSchema.ID != schemas.Catalog[0].ID {
		t.Error("first catalog entry should be selected")
	}
}

func TestDetectSchemaEmptyCatalog(t *testing.T) {
	result := DetectSchema("anything", nil)

	if len(result.Matches) != 0 {
		t.Errorf("Matches len = %d, want 0", len(result.Matches))
	}
	if result.SelectedSchema != nil {
		t.Error("SelectedSchema should be nil for an empty catalog")
	}
}

func TestDetectSchemaCapsAtThree(t *testing.T) {
	catalog := make([]schemas.Definition, 5)
	for i := range catalog {
		catalog[i].ID = string(rune('a' + i))
	}

	result := DetectSchema("anything", catalog)
	if len(result.Matches) != 3 {
		t.Errorf("Matches len = %d, want 3", len(result.Matches))
	}
}
