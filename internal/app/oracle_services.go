package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"cerberus_security_service/internal/domain/oracle"
	"cerberus_security_service/internal/pkg/config"
	"cerberus_security_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// threatIntelService implements the ThreatIntelService interface for ingesting
// indicators, assessing values and syncing external feeds
type threatIntelService struct {
	indicatorRepo oracle.ThreatIndicatorRepository
	feedConnector oracle.ThreatFeedConnector
	feedSettings  *config.FeedSettings
	logger        logger.Logger
}

// NewThreatIntelService creates a new threatIntelService instance
func NewThreatIntelService(
	indicatorRepo oracle.ThreatIndicatorRepository,
	feedConnector oracle.ThreatFeedConnector,
	feedSettings *config.FeedSettings,
	logger logger.Logger,
) (oracle.ThreatIntelService, error) {
	if feedSettings == nil {
		return nil, fmt.Errorf("feed settings are required")
	}
	if err := feedSettings.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &threatIntelService{
		indicatorRepo: indicatorRepo,
		feedConnector: feedConnector,
		feedSettings:  feedSettings,
		logger:        logger,
	}, nil
}

// Ingest validates and persists a batch of indicators. Indicators without an
// ID or creation timestamp are completed before persisting. The whole batch
// is validated up front so a bad indicator never leaves a partial write.
func (s *threatIntelService) Ingest(ctx context.Context, indicators []*oracle.ThreatIndicator) ([]*oracle.ThreatIndicator, error) {
	for _, indicator := range indicators {
		if indicator.ID == "" {
			indicator.ID = uuid.New().String()
		}
		if indicator.DateTimeCreated.IsZero() {
			indicator.DateTimeCreated = time.Now()
		}

		if err := indicator.Validate(); err != nil {
			return nil, fmt.Errorf("invalid indicator with value %s: %w", indicator.Value, err)
		}
	}

	for _, indicator := range indicators {
		if err := s.indicatorRepo.Create(ctx, indicator); err != nil {
			return nil, fmt.Errorf("failed to ingest indicator with value %s: %w", indicator.Value, err)
		}
	}

	s.logger.Info("Ingested ", len(indicators), " threat indicators")
	return indicators, nil
}

// Assess matches a value against the stored indicators and returns a
// ThreatAssessment with the matches and an aggregate risk score. The risk
// score is the maximum of severity weight times confidence over all matches.
func (s *threatIntelService) Assess(ctx context.Context, value string) (*oracle.ThreatAssessment, error) {
	if strings.TrimSpace(value) == "" {
		return nil, fmt.Errorf("value must not be empty")
	}

	assessment := &oracle.ThreatAssessment{
		Value:   value,
		Matches: []*oracle.ThreatIndicator{},
	}

	// Page through the full indicator corpus; the repository caps page size.
	query := oracle.NewThreatIndicatorQuery()
	query.Limit = 500

	for {
		indicators, err := s.indicatorRepo.List(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		for _, indicator := range indicators {
			if !matchesIndicator(value, indicator) {
				continue
			}
			assessment.Matches = append(assessment.Matches, indicator)

			score := oracle.SeverityWeight[indicator.Severity] * indicator.Confidence
			if score > assessment.RiskScore {
				assessment.RiskScore = score
			}
		}

		if len(indicators) < query.Limit {
			break
		}
		query.Offset += query.Limit
	}

	if len(assessment.Matches) > 0 {
		s.logger.Warn("Value matched ", len(assessment.Matches), " threat indicators with risk score ", assessment.RiskScore)
	}

	return assessment, nil
}

// matchesIndicator reports whether a value matches an indicator. Keyword
// indicators match as case-insensitive substrings, all other types require
// an exact case-insensitive match.
func matchesIndicator(value string, indicator *oracle.ThreatIndicator) bool {
	if indicator.Type == oracle.IndicatorTypeKeyword {
		return strings.Contains(strings.ToLower(value), strings.ToLower(indicator.Value))
	}
	return strings.EqualFold(value, indicator.Value)
}

// SyncFeeds fetches all configured threat feeds with a bounded number of
// workers and ingests their indicators. It returns the number of indicators
// ingested. A failing feed does not abort the sync, the first error
// encountered is returned alongside the count.
func (s *threatIntelService) SyncFeeds(ctx context.Context) (int, error) {
	if len(s.feedSettings.URLs) == 0 {
		s.logger.Info("No threat feeds configured, skipping sync")
		return 0, nil
	}

	workerLimit := s.feedSettings.WorkerLimit
	if workerLimit <= 0 {
		workerLimit = 4
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ingested  int
		firstErr  error
		semaphore = make(chan struct{}, workerLimit)
	)

	for _, feedURL := range s.feedSettings.URLs {
		wg.Add(1)
		go func(feedURL string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			indicators, err := s.feedConnector.Fetch(ctx, feedURL)
			if err != nil {
				s.logger.Error("Failed to fetch feed ", feedURL, ": ", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("failed to fetch feed %s: %w", feedURL, err)
				}
				mu.Unlock()
				return
			}

			if _, err := s.Ingest(ctx, indicators); err != nil {
				s.logger.Error("Failed to ingest feed ", feedURL, ": ", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			mu.Lock()
			ingested += len(indicators)
			mu.Unlock()
		}(feedURL)
	}

	wg.Wait()

	s.logger.Info("Feed sync completed, ingested ", ingested, " indicators from ", len(s.feedSettings.URLs), " feeds")
	return ingested, firstErr
}

// indicatorMetadataService implements the IndicatorMetadataService interface
// for retrieving and deleting indicators
type indicatorMetadataService struct {
	indicatorRepo oracle.ThreatIndicatorRepository
	logger        logger.Logger
}

// NewIndicatorMetadataService creates a new indicatorMetadataService instance
func NewIndicatorMetadataService(
	indicatorRepo oracle.ThreatIndicatorRepository,
	logger logger.Logger,
) (oracle.IndicatorMetadataService, error) {
	return &indicatorMetadataService{
		indicatorRepo: indicatorRepo,
		logger:        logger,
	}, nil
}

// List retrieves indicators considering a query filter when set.
func (s *indicatorMetadataService) List(ctx context.Context, query *oracle.ThreatIndicatorQuery) ([]*oracle.ThreatIndicator, error) {
	indicators, err := s.indicatorRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return indicators, nil
}

// GetByID retrieves an indicator by ID.
func (s *indicatorMetadataService) GetByID(ctx context.Context, indicatorID string) (*oracle.ThreatIndicator, error) {
	indicator, err := s.indicatorRepo.GetByID(ctx, indicatorID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return indicator, nil
}

// DeleteByID deletes an indicator by ID.
func (s *indicatorMetadataService) DeleteByID(ctx context.Context, indicatorID string) error {
	if err := s.indicatorRepo.DeleteByID(ctx, indicatorID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
