package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cerberus_security_service/internal/domain/oracle"
	"cerberus_security_service/internal/pkg/config"
	"cerberus_security_service/internal/pkg/logger"
)

// feedDocument is the wire format of a single indicator in a feed.
type feedDocument struct {
	Type        string  `json:"type"`
	Value       string  `json:"value"`
	Severity    string  `json:"severity"`
	Confidence  float64 `json:"confidence"`
	Source      string  `json:"source"`
	Description string  `json:"description"`
}

// httpFeedConnector fetches JSON indicator feeds over HTTP.
type httpFeedConnector struct {
	client *http.Client
	logger logger.Logger
}

// NewHTTPFeedConnector creates a feed connector with the configured request timeout.
func NewHTTPFeedConnector(settings *config.FeedSettings, logger logger.Logger) (oracle.ThreatFeedConnector, error) {
	timeout := time.Duration(settings.RequestTimeout) * time.Second
	if settings.RequestTimeout == 0 {
		timeout = 15 * time.Second
	}

	return &httpFeedConnector{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}, nil
}

// Fetch retrieves and decodes the indicator documents published at a feed URL.
// The feed source defaults to the feed URL when a document omits it.
func (c *httpFeedConnector) Fetch(ctx context.Context, feedURL string) ([]*oracle.ThreatIndicator, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed %s returned status %d", feedURL, resp.StatusCode)
	}

	var documents []feedDocument
	if err := json.NewDecoder(resp.Body).Decode(&documents); err != nil {
		return nil, fmt.Errorf("failed to decode feed %s: %w", feedURL, err)
	}

	indicators := make([]*oracle.ThreatIndicator, 0, len(documents))
	for _, doc := range documents {
		source := doc.Source
		if source == "" {
			source = feedURL
		}

		indicators = append(indicators, &oracle.ThreatIndicator{
			Type:        doc.Type,
			Value:       doc.Value,
			Severity:    doc.Severity,
			Confidence:  doc.Confidence,
			Source:      source,
			Description: doc.Description,
		})
	}

	c.logger.Info("Fetched ", len(indicators), " indicators from feed ", feedURL)
	return indicators, nil
}
