package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/stemsi/aptify-backend/internal/generator"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string
	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string

	// StaticDir and TemplateDir are optional; empty disables the browser pages.
	StaticDir    string
	StaticMaxAge int
	TemplateDir  string

	// GeminiAPIKey may be empty, which disables generated questions.
	GeminiAPIKey     string
	GeminiBaseURL    string
	GeminiAPIVersion string
	GeminiModel      string
	GeminiTimeout    time.Duration

	// TopUpShortResults pads a short generated quiz with fallback questions.
	TopUpShortResults bool
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	defaults := generator.DefaultConfig()

	return &Config{
		ServerPort:        getEnv("PORT", "5000"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "pretty"),
		AllowedOrigins:    parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		StaticDir:         getEnv("STATIC_DIR", ""),
		StaticMaxAge:      getEnvInt("STATIC_MAX_AGE_SECONDS", 3600),
		TemplateDir:       getEnv("TEMPLATE_DIR", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL:     getEnv("GEMINI_BASE_URL", defaults.BaseURL),
		GeminiAPIVersion:  getEnv("GEMINI_API_VERSION", defaults.APIVersion),
		GeminiModel:       getEnv("GEMINI_MODEL", defaults.Model),
		GeminiTimeout:     time.Duration(getEnvInt("GEMINI_TIMEOUT_SECONDS", 30)) * time.Second,
		TopUpShortResults: getEnvBool("TOP_UP_SHORT_RESULTS", false),
	}
}

// Generator returns the question generator settings. Sampling parameters
// keep their production defaults.
func (c *Config) Generator() generator.Config {
	cfg := generator.DefaultConfig()
	cfg.APIKey = c.GeminiAPIKey
	cfg.BaseURL = c.GeminiBaseURL
	cfg.APIVersion = c.GeminiAPIVersion
	cfg.Model = c.GeminiModel
	if c.GeminiTimeout > 0 {
		cfg.Timeout = c.GeminiTimeout
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
