package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderGoogle ProviderType = "google"
	ProviderOpenAI ProviderType = "openai"
)

// Config is the top-level promptparse configuration, corresponding to
// .promptparse.yml.
type Config struct {
	Provider        ProviderType `yaml:"provider" koanf:"provider"`
	Model           string       `yaml:"model" koanf:"model"`
	Port            int          `yaml:"port" koanf:"port"`
	DataDir         string       `yaml:"data_dir" koanf:"data_dir"`
	SupabaseURL     string       `yaml:"supabase_url" koanf:"supabase_url"`
	SupabaseAnonKey string       `yaml:"supabase_anon_key" koanf:"supabase_anon_key"`
}
