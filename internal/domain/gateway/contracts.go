package gateway

import (
	"context"
)

// ModelGateway is an interface for sending prompts to a downstream language model.
// The current implementation targets the Gemini generateContent API, but this may
// be replaced with any other model provider.
type ModelGateway interface {
	// Generate sends a prompt to the model and returns its reply.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the gateway implementation.
	Name() string
}
