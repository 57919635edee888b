package detection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cerberus_security_service/internal/domain/watchman"
	"cerberus_security_service/internal/pkg/config"
	"cerberus_security_service/internal/pkg/logger"
)

// remoteDetector scores prompts via an external model-backed scoring endpoint.
type remoteDetector struct {
	endpoint string
	client   *http.Client
	logger   logger.Logger
}

type scoreRequest struct {
	Prompt string `json:"prompt"`
}

type scoreResponse struct {
	Injection bool    `json:"injection"`
	Score     float64 `json:"score"`
}

// NewRemoteDetector creates a detector backed by the configured scoring endpoint.
func NewRemoteDetector(settings *config.DetectionSettings, logger logger.Logger) (watchman.InjectionDetector, error) {
	if settings.ScoringEndpoint == "" {
		return nil, fmt.Errorf("scoring endpoint is required for the remote detector")
	}

	timeout := time.Duration(settings.RequestTimeout) * time.Second
	if settings.RequestTimeout == 0 {
		timeout = 10 * time.Second
	}

	return &remoteDetector{
		endpoint: settings.ScoringEndpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}, nil
}

// Detect posts the prompt to the scoring endpoint and returns its verdict.
func (d *remoteDetector) Detect(ctx context.Context, prompt string) (bool, float64, error) {
	body, err := json.Marshal(scoreRequest{Prompt: prompt})
	if err != nil {
		return false, 0, fmt.Errorf("failed to encode scoring request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, 0, fmt.Errorf("failed to create scoring request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return false, 0, fmt.Errorf("scoring request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, 0, fmt.Errorf("scoring endpoint returned status %d", resp.StatusCode)
	}

	var result scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, 0, fmt.Errorf("failed to decode scoring response: %w", err)
	}

	if result.Score < 0 || result.Score > 1 {
		return false, 0, fmt.Errorf("scoring endpoint returned out-of-range score %f", result.Score)
	}

	return result.Injection, result.Score, nil
}

// Name identifies the detector in analysis records.
func (d *remoteDetector) Name() string {
	return watchman.DetectorRemote
}
