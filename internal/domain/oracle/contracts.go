package oracle

import (
	"context"
)

// ThreatIntelService defines methods for ingesting indicators and assessing values.
type ThreatIntelService interface {
	// Ingest validates and persists a batch of indicators. Indicators without an
	// ID or creation timestamp are completed before persisting.
	Ingest(ctx context.Context, indicators []*ThreatIndicator) ([]*ThreatIndicator, error)

	// Assess matches a value against the stored indicators and returns a
	// ThreatAssessment with the matches and an aggregate risk score.
	Assess(ctx context.Context, value string) (*ThreatAssessment, error)

	// SyncFeeds fetches all configured threat feeds and ingests their indicators.
	// It returns the number of indicators ingested.
	SyncFeeds(ctx context.Context) (int, error)
}

// IndicatorMetadataService defines methods for retrieving and deleting indicators.
type IndicatorMetadataService interface {
	// List retrieves indicators considering a query filter when set.
	List(ctx context.Context, query *ThreatIndicatorQuery) ([]*ThreatIndicator, error)

	// GetByID retrieves an indicator by ID.
	GetByID(ctx context.Context, indicatorID string) (*ThreatIndicator, error)

	// DeleteByID deletes an indicator by ID.
	DeleteByID(ctx context.Context, indicatorID string) error
}

// ThreatIndicatorRepository defines the interface for ThreatIndicator persistence
type ThreatIndicatorRepository interface {
	// Create adds a new ThreatIndicator to the database
	Create(ctx context.Context, indicator *ThreatIndicator) error
	// List lists ThreatIndicators in the database with optional filter
	List(ctx context.Context, query *ThreatIndicatorQuery) ([]*ThreatIndicator, error)
	// GetByID retrieves a ThreatIndicator from the database by ID
	GetByID(ctx context.Context, indicatorID string) (*ThreatIndicator, error)
	// DeleteByID deletes a ThreatIndicator in the database by ID
	DeleteByID(ctx context.Context, indicatorID string) error
}

// ThreatFeedConnector is an interface for fetching indicators from an external feed.
type ThreatFeedConnector interface {
	// Fetch retrieves the indicator documents published at a feed URL.
	Fetch(ctx context.Context, feedURL string) ([]*ThreatIndicator, error)
}
