package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .promptparse.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to promptparse! Let's configure your service.")
	fmt.Println()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"google", "openai"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	provider := ProviderType(providerStr)

	// 2. Model.
	modelPrompt := promptui.Prompt{
		Label:   "Model",
		Default: DefaultModel(provider),
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: "8080",
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 4. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (SQLite conversion history)",
		Default: "data",
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 5. Supabase settings for the waitlist (optional).
	urlPrompt := promptui.Prompt{
		Label:   "Supabase project URL (blank to disable waitlist)",
		Default: "",
	}
	supabaseURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("supabase url: %w", err)
	}

	var supabaseKey string
	if supabaseURL != "" {
		keyPrompt := promptui.Prompt{
			Label: "Supabase anon key",
			Mask:  '*',
		}
		supabaseKey, err = keyPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("supabase anon key: %w", err)
		}
	}

	// Build the config.
	cfg := &Config{
		Provider:        provider,
		Model:           model,
		Port:            port,
		DataDir:         dataDir,
		SupabaseURL:     supabaseURL,
		SupabaseAnonKey: supabaseKey,
	}

	// Check for API key.
	envVar := APIKeyEnvVar(provider)
	if envVar != "" {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running promptparse serve.\n", envVar)
		}
	}

	// Save to .promptparse.yml.
	configPath := ".promptparse.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
