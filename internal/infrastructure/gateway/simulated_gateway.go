package gateway

import (
	"context"
	"fmt"
	"strings"

	domain "cerberus_security_service/internal/domain/gateway"
	"cerberus_security_service/internal/pkg/logger"
)

// SimulatedGatewayName identifies the simulated gateway implementation.
const SimulatedGatewayName = "simulated"

// simulatedGateway returns canned replies without calling any external model.
// It stands in for the Gemini gateway when no API key is configured.
type simulatedGateway struct {
	logger logger.Logger
}

// NewSimulatedGateway creates the simulated model gateway.
func NewSimulatedGateway(logger logger.Logger) (domain.ModelGateway, error) {
	logger.Info("Using simulated model gateway.")
	return &simulatedGateway{logger: logger}, nil
}

// Generate returns a canned reply based on the prompt content.
func (g *simulatedGateway) Generate(_ context.Context, prompt string) (string, error) {
	lowered := strings.ToLower(prompt)

	switch {
	case strings.Contains(lowered, "hello"):
		return "Hello there! How can I assist you today?", nil
	case strings.Contains(lowered, "tell me a joke"):
		return "Why don't scientists trust atoms? Because they make up everything!", nil
	default:
		return fmt.Sprintf("gemini processed: '%s' (simulated response)", prompt), nil
	}
}

// Name identifies the gateway implementation.
func (g *simulatedGateway) Name() string {
	return SimulatedGatewayName
}
