package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Upstream completion service
	LLMProvider string
	LLMAPIKey   string
	LLMModel    string
	LLMBaseURL  string
	LLMTimeout  time.Duration

	// CORS
	AllowedOrigins []string

	// Logging & telemetry
	LogFile          string
	TelemetryEnabled bool
	TelemetryDir     string
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:             getEnvOrDefault("PORT", "8000"),
		Env:              getEnvOrDefault("ENV", "development"),
		LLMProvider:      strings.ToLower(getEnvOrDefault("LLM_PROVIDER", ProviderOpenAI)),
		LLMAPIKey:        mustGetEnv("LLM_API_KEY"),
		LLMModel:         getEnvOrDefault("LLM_MODEL", "deepseek/deepseek-r1-0528-qwen3-8b:free"),
		LLMBaseURL:       getEnvOrDefault("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
		LLMTimeout:       time.Duration(getEnvAsIntOrDefault("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
		AllowedOrigins:   getEnvAsListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		LogFile:          getEnvOrDefault("LOG_FILE", ""),
		TelemetryEnabled: getEnvAsBoolOrDefault("TELEMETRY_ENABLED", false),
		TelemetryDir:     getEnvOrDefault("TELEMETRY_DIR", "logs"),
	}

	if cfg.LLMProvider != ProviderOpenAI && cfg.LLMProvider != ProviderGemini {
		panic(fmt.Sprintf("unsupported LLM_PROVIDER %q (want %q or %q)", cfg.LLMProvider, ProviderOpenAI, ProviderGemini))
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

// getEnvAsListOrDefault splits a comma separated value, dropping empty items.
func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
