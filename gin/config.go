// Package gin exposes the admin HTTP surface for the extraction pipeline:
// a JSON batch endpoint and a server-sent-events streaming variant.
package gin

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds server runtime configuration, loaded from the environment.
type Config struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	GeminiAPIKey    string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel     string        `envconfig:"GEMINI_MODEL"`
	FetchTimeout    time.Duration `envconfig:"FETCH_TIMEOUT" default:"15s"`
	PipelineTimeout time.Duration `envconfig:"PIPELINE_TIMEOUT" default:"90s"`
	DomainRPS       float64       `envconfig:"DOMAIN_RPS" default:"1"`
}

// LoadConfig reads configuration from SALESITE_-prefixed environment
// variables (e.g. SALESITE_ADDR), falling back to defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("salesite", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
