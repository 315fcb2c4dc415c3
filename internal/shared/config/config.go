package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"

	defaultPort      = "3001"
	defaultModel     = "claude-sonnet-4-6"
	defaultMaxTokens = 4096
)

// Config holds application configuration.
type Config struct {
	Port                    string
	Env                     string
	CORSAllowOriginPatterns []string
	LLMProvider             string
	LLMModel                string
	LLMMaxTokens            int
	AnthropicAPIKey         string
	GeminiAPIKey            string
	OpenAIAPIKey            string
	OpenAIBaseURL           string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	provider := normalizeProvider(getEnv("LLM_PROVIDER", ProviderAnthropic))
	return Config{
		Port:                    getEnv("PORT", defaultPort),
		Env:                     normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOriginPatterns: splitAndTrim(getEnv("CORS_ALLOW_ORIGIN_PATTERNS", `^chrome-extension://`)),
		LLMProvider:             provider,
		LLMModel:                getEnv("LLM_MODEL", defaultModelFor(provider)),
		LLMMaxTokens:            getEnvInt("LLM_MAX_TOKENS", defaultMaxTokens),
		AnthropicAPIKey:         strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		GeminiAPIKey:            strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		OpenAIAPIKey:            strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:           strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
	}
}

// APIKey returns the secret for the configured provider.
func (c Config) APIKey() string {
	switch c.LLMProvider {
	case ProviderGemini:
		return c.GeminiAPIKey
	case ProviderOpenAI:
		return c.OpenAIAPIKey
	default:
		return c.AnthropicAPIKey
	}
}

// Validate reports missing required settings. Callers abort startup on error.
func (c Config) Validate() error {
	var errs []error
	if c.APIKey() == "" {
		switch c.LLMProvider {
		case ProviderGemini:
			errs = append(errs, errors.New("GEMINI_API_KEY is not set"))
		case ProviderOpenAI:
			errs = append(errs, errors.New("OPENAI_API_KEY is not set"))
		default:
			errs = append(errs, errors.New("ANTHROPIC_API_KEY is not set"))
		}
	}
	if strings.TrimSpace(c.LLMModel) == "" {
		errs = append(errs, errors.New("LLM_MODEL is empty"))
	}
	if c.LLMMaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("LLM_MAX_TOKENS must be positive, got %d", c.LLMMaxTokens))
	}
	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "gemini", "google":
		return ProviderGemini
	case "openai":
		return ProviderOpenAI
	default:
		return ProviderAnthropic
	}
}

func defaultModelFor(provider string) string {
	switch provider {
	case ProviderGemini:
		return "gemini-2.5-pro"
	case ProviderOpenAI:
		return "gpt-4o"
	default:
		return defaultModel
	}
}
