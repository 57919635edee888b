package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	domain "cerberus_security_service/internal/domain/gateway"
	"cerberus_security_service/internal/pkg/config"
	"cerberus_security_service/internal/pkg/logger"
)

// GeminiGatewayName identifies the Gemini-backed gateway implementation.
const GeminiGatewayName = "gemini"

// geminiGateway forwards prompts to the Gemini generateContent API.
type geminiGateway struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
	logger   logger.Logger
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// NewGeminiGateway creates a gateway for the configured Gemini model.
func NewGeminiGateway(settings *config.GatewaySettings, logger logger.Logger) (domain.ModelGateway, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("api key is required for the Gemini gateway")
	}
	if settings.Model == "" {
		return nil, fmt.Errorf("model name is required for the Gemini gateway")
	}
	if settings.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required for the Gemini gateway")
	}

	timeout := time.Duration(settings.RequestTimeout) * time.Second
	if settings.RequestTimeout == 0 {
		timeout = 30 * time.Second
	}

	return &geminiGateway{
		endpoint: settings.Endpoint,
		model:    settings.Model,
		apiKey:   settings.APIKey,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}, nil
}

// Generate sends the prompt to the generateContent endpoint and returns the
// first candidate reply.
func (g *geminiGateway) Generate(ctx context.Context, prompt string) (string, error) {
	requestBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	}

	body, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode generate request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.endpoint, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("model endpoint returned status %d", resp.StatusCode)
	}

	var result generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// Name identifies the gateway implementation.
func (g *geminiGateway) Name() string {
	return GeminiGatewayName
}
