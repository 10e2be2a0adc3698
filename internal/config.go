package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     uint16
	BaseURL  string

	// CORSOrigins is the comma-separated allowlist for browser clients.
	// "*" allows any origin, which is only acceptable in development.
	CORSOrigins []string

	Gemini GeminiConfig
}

// GeminiConfig holds credentials and tuning for the recommendation model.
type GeminiConfig struct {
	APIKey string

	// Model overrides the default recommendation model when set.
	Model string

	// TimeoutSeconds bounds each upstream model call.
	TimeoutSeconds int
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:         getEnv("ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Port:        getEnvInt("PORT", 3000),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		Gemini: GeminiConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			Model:          getEnv("GEMINI_MODEL", ""),
			TimeoutSeconds: int(getEnvInt("GEMINI_TIMEOUT_SECONDS", 30)),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set")
	}

	if cfg.Env == "prod" && len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		slog.Default().Warn("CORS_ORIGINS is a wildcard in production")
	}

	return cfg, nil
}

// Secure reports whether cookies should require HTTPS.
func (c *Config) Secure() bool {
	return c.Env == "prod"
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}
