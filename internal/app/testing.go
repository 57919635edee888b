//go:build integration
// +build integration

package app

import (
	"testing"

	"cerberus_security_service/internal/domain/engineer"
	domainGateway "cerberus_security_service/internal/domain/gateway"
	"cerberus_security_service/internal/domain/oracle"
	"cerberus_security_service/internal/domain/watchman"
	"cerberus_security_service/internal/infrastructure/detection"
	"cerberus_security_service/internal/infrastructure/feeds"
	"cerberus_security_service/internal/infrastructure/gateway"
	"cerberus_security_service/internal/infrastructure/persistence"
	"cerberus_security_service/internal/infrastructure/scanrules"
	"cerberus_security_service/internal/pkg/config"
	"cerberus_security_service/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	// Watchman services
	PromptAnalysisService   watchman.PromptAnalysisService
	PromptScreeningService  watchman.PromptScreeningService
	AnalysisMetadataService watchman.AnalysisMetadataService

	// Oracle services
	ThreatIntelService       oracle.ThreatIntelService
	IndicatorMetadataService oracle.IndicatorMetadataService

	// Engineer services
	ScanService               engineer.ScanService
	ScanReportMetadataService engineer.ScanReportMetadataService

	// Infrastructure
	Detector     watchman.InjectionDetector
	ModelGateway domainGateway.ModelGateway
	DBContext    *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests.
// The detector and gateway fall back to their offline implementations so tests
// run without network access.
func SetupTestServices(t *testing.T, dbType string, feedSettings *config.FeedSettings) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Empty scoring endpoint selects the heuristic detector
	detectionSettings := &config.DetectionSettings{
		Threshold: config.DefaultInjectionThreshold,
	}
	detector, err := detection.NewInjectionDetector(detectionSettings, logger)
	require.NoError(t, err, "Failed to create injection detector")

	// Empty API key selects the simulated gateway
	modelGateway, err := gateway.NewModelGateway(&config.GatewaySettings{}, logger)
	require.NoError(t, err, "Failed to create model gateway")

	feedConnector, err := feeds.NewHTTPFeedConnector(feedSettings, logger)
	require.NoError(t, err, "Failed to create feed connector")

	// Initialize watchman services
	promptAnalysisService, err := NewPromptAnalysisService(
		detector,
		dbContext.AnalysisRepo,
		detectionSettings.Threshold,
		logger,
	)
	require.NoError(t, err, "Failed to create PromptAnalysisService")

	promptScreeningService, err := NewPromptScreeningService(
		promptAnalysisService,
		modelGateway,
		logger,
	)
	require.NoError(t, err, "Failed to create PromptScreeningService")

	analysisMetadataService, err := NewAnalysisMetadataService(
		dbContext.AnalysisRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create AnalysisMetadataService")

	// Initialize oracle services
	threatIntelService, err := NewThreatIntelService(
		dbContext.IndicatorRepo,
		feedConnector,
		feedSettings,
		logger,
	)
	require.NoError(t, err, "Failed to create ThreatIntelService")

	indicatorMetadataService, err := NewIndicatorMetadataService(
		dbContext.IndicatorRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create IndicatorMetadataService")

	// Initialize engineer services
	scanService, err := NewScanService(
		scanrules.DefaultRules(),
		dbContext.ScanRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create ScanService")

	scanReportMetadataService, err := NewScanReportMetadataService(
		dbContext.ScanRepo,
		logger,
	)
	require.NoError(t, err, "Failed to create ScanReportMetadataService")

	return &TestServices{
		PromptAnalysisService:     promptAnalysisService,
		PromptScreeningService:    promptScreeningService,
		AnalysisMetadataService:   analysisMetadataService,
		ThreatIntelService:        threatIntelService,
		IndicatorMetadataService:  indicatorMetadataService,
		ScanService:               scanService,
		ScanReportMetadataService: scanReportMetadataService,
		Detector:                  detector,
		ModelGateway:              modelGateway,
		DBContext:                 dbContext,
	}
}
