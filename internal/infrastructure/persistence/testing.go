//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"cerberus_security_service/internal/domain/engineer"
	"cerberus_security_service/internal/domain/oracle"
	"cerberus_security_service/internal/domain/watchman"
	"cerberus_security_service/internal/infrastructure/persistence/models"
	"cerberus_security_service/internal/pkg/config"
	"cerberus_security_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	AnalysisRepo  watchman.PromptAnalysisRepository
	IndicatorRepo oracle.ThreatIndicatorRepository
	ScanRepo      engineer.ScanReportRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.PromptAnalysisModel{}, &models.ThreatIndicatorModel{}, &models.ScanReportModel{})
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	log := testutil.SetupTestLogger(t)

	analysisRepo, err := NewGormAnalysisRepository(db, log)
	require.NoError(t, err, "Failed to create analysis repository")

	indicatorRepo, err := NewGormIndicatorRepository(db, log)
	require.NoError(t, err, "Failed to create indicator repository")

	scanRepo, err := NewGormScanRepository(db, log)
	require.NoError(t, err, "Failed to create scan repository")

	return &TestContext{
		DB:            db,
		AnalysisRepo:  analysisRepo,
		IndicatorRepo: indicatorRepo,
		ScanRepo:      scanRepo,
	}
}

// CreateTestAnalysis creates a test prompt analysis with default values
func CreateTestAnalysis(t *testing.T, flagged bool) *watchman.PromptAnalysis {
	t.Helper()

	confidence := 0.05
	details := watchman.DetailPromptClear
	if flagged {
		confidence = 0.95
		details = watchman.DetailInjectionDetected
	}

	return &watchman.PromptAnalysis{
		ID:              uuid.NewString(),
		SessionID:       uuid.NewString(),
		Prompt:          "tell me about the history of ai",
		Flagged:         flagged,
		Confidence:      confidence,
		Detector:        watchman.DetectorHeuristic,
		Details:         details,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestIndicator creates a test threat indicator with default values
func CreateTestIndicator(t *testing.T, indicatorType, value string) *oracle.ThreatIndicator {
	t.Helper()

	return &oracle.ThreatIndicator{
		ID:              uuid.NewString(),
		Type:            indicatorType,
		Value:           value,
		Severity:        oracle.SeverityHigh,
		Confidence:      0.9,
		Source:          "test-feed",
		DateTimeCreated: time.Now(),
	}
}

// CreateTestScanReport creates a test scan report with default values
func CreateTestScanReport(t *testing.T, targetName string) *engineer.ScanReport {
	t.Helper()

	return &engineer.ScanReport{
		ID:         uuid.NewString(),
		TargetName: targetName,
		Endpoint:   "https://llm.example.com",
		Findings: []*engineer.Finding{
			{
				ID:          uuid.NewString(),
				RuleID:      "missing-rate-limiting",
				Severity:    engineer.SeverityLow,
				Description: "the model endpoint is not rate limited",
				Remediation: "apply per-client rate limits to model routes",
			},
		},
		RiskScore:       0.25,
		DateTimeCreated: time.Now(),
	}
}
