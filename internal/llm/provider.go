package llm

import "context"

// Request contains the parameters for a single generation call.
type Request struct {
	// Model overrides the provider's default model when non-empty.
	Model string
	// System carries the system instructions for the call.
	System string
	// Prompt is the user prompt. Must be non-empty.
	Prompt string
	// Temperature controls output randomness in [0,1].
	Temperature float64
	// MaxTokens caps the response length. Zero means provider default.
	MaxTokens int
}

// Response contains the result of a generation call.
type Response struct {
	// Text is the raw generated text, exactly as returned by the provider.
	Text string
	// TokensUsed is the total token count (prompt + completion) reported
	// by the provider, or zero if the provider reports no usage.
	TokensUsed int
	// Model is the model that actually served the request.
	Model string
}

// Provider defines the interface for LLM providers. Each call is a single
// outbound request with no retries and no caching; identical inputs
// re-invoke the provider.
type Provider interface {
	// Generate sends one generation request and returns the raw response.
	Generate(ctx context.Context, req Request) (*Response, error)
	// Name returns the name of this provider.
	Name() string
}
