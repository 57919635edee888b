package detection

import (
	"fmt"

	"cerberus_security_service/internal/domain/watchman"
	"cerberus_security_service/internal/pkg/config"
	"cerberus_security_service/internal/pkg/logger"
)

// NewInjectionDetector selects the detector implementation from settings. When no
// scoring endpoint is configured the service runs with the heuristic detector.
func NewInjectionDetector(settings *config.DetectionSettings, log logger.Logger) (watchman.InjectionDetector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid detection settings: %w", err)
	}

	if settings.ScoringEndpoint != "" {
		return NewRemoteDetector(settings, log)
	}

	log.Warn("No scoring endpoint configured. Running with the heuristic detector.")
	return NewHeuristicDetector(log)
}
