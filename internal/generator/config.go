package generator

import (
	"net/http"
	"time"
)

// Config holds everything the Fetcher needs to reach the generation API.
// An empty APIKey disables generation without failing construction.
type Config struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	Model      string

	// Timeout bounds one generateContent call.
	Timeout time.Duration

	// Sampling favours deterministic, factual output.
	Temperature     float32
	TopK            float32
	TopP            float32
	MaxOutputTokens int32

	// HTTPClient is optional; nil uses a fresh client with no own timeout.
	HTTPClient *http.Client
}

// DefaultConfig returns the production defaults without an API key.
func DefaultConfig() Config {
	return Config{
		BaseURL:         "https://generativelanguage.googleapis.com",
		APIVersion:      "v1",
		Model:           "gemini-2.0-flash",
		Timeout:         30 * time.Second,
		Temperature:     0.2,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 4096,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.APIVersion == "" {
		c.APIVersion = d.APIVersion
	}
	if c.Model == "" {
		c.Model = d.Model
	}
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	if c.Temperature <= 0 {
		c.Temperature = d.Temperature
	}
	if c.TopK <= 0 {
		c.TopK = d.TopK
	}
	if c.TopP <= 0 {
		c.TopP = d.TopP
	}
	if c.MaxOutputTokens <= 0 {
		c.MaxOutputTokens = d.MaxOutputTokens
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	return c
}
