package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultInjectionThreshold is the probability above which a detector hit
// is treated as a confirmed prompt injection.
const DefaultInjectionThreshold = 0.85

// DetectionSettings holds the settings for the prompt injection detector.
// When ScoringEndpoint is empty the service falls back to the built-in
// heuristic detector.
type DetectionSettings struct {
	Threshold       float64 `mapstructure:"threshold" validate:"gte=0,lte=1"`
	ScoringEndpoint string  `mapstructure:"scoring_endpoint" validate:"omitempty,url"`
	RequestTimeout  int     `mapstructure:"request_timeout" validate:"omitempty,min=1,max=300"`
}

// Validate checks that all fields in DetectionSettings are valid
func (s *DetectionSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DetectionSettings: %w", err)
	}

	return nil
}

// GatewaySettings holds the settings for the downstream model gateway.
// When APIKey is empty the service falls back to the simulated gateway.
type GatewaySettings struct {
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	Endpoint       string `mapstructure:"endpoint" validate:"omitempty,url"`
	RequestTimeout int    `mapstructure:"request_timeout" validate:"omitempty,min=1,max=300"`
}

// Validate checks that all fields in GatewaySettings are valid
func (s *GatewaySettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for GatewaySettings: %w", err)
	}

	return nil
}

// FeedSettings holds the settings for threat intelligence feed synchronization
type FeedSettings struct {
	URLs           []string `mapstructure:"urls" validate:"dive,url"`
	WorkerLimit    int      `mapstructure:"worker_limit" validate:"omitempty,min=1,max=64"`
	RequestTimeout int      `mapstructure:"request_timeout" validate:"omitempty,min=1,max=300"`
}

// Validate checks that all fields in FeedSettings are valid
func (s *FeedSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for FeedSettings: %w", err)
	}

	return nil
}
