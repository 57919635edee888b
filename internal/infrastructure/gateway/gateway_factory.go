package gateway

import (
	"fmt"

	domain "cerberus_security_service/internal/domain/gateway"
	"cerberus_security_service/internal/pkg/config"
	"cerberus_security_service/internal/pkg/logger"
)

// NewModelGateway selects the gateway implementation from settings. When no API
// key is configured the service runs with the simulated gateway.
func NewModelGateway(settings *config.GatewaySettings, log logger.Logger) (domain.ModelGateway, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gateway settings: %w", err)
	}

	if settings.APIKey != "" {
		return NewGeminiGateway(settings, log)
	}

	log.Warn("No model API key configured. Running with the simulated gateway.")
	return NewSimulatedGateway(log)
}
