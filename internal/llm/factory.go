package llm

import "fmt"

// NewProvider creates a new LLM provider for the given provider type, model
// and API key. Supported provider types: "google", "openai". The API key is
// resolved by the caller at process start and passed in explicitly; this
// package never reads the environment.
func NewProvider(providerType string, model string, apiKey string) (Provider, error) {
	switch providerType {
	case "google":
		if apiKey == "" {
			return nil, fmt.Errorf("google provider requires an API key (set GOOGLE_API_KEY)")
		}
		return NewGoogleProvider(apiKey, model), nil

	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key (set OPENAI_API_KEY)")
		}
		return NewOpenAIProvider(apiKey, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
