//go:build integration
// +build integration

package app

import (
	"context"
	"sort"
	"testing"

	"cerberus_security_service/internal/domain/engineer"
	"cerberus_security_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanService_Run uses table-driven tests for target profiles with
// different hardening gaps
func TestScanService_Run(t *testing.T) {
	tests := []struct {
		name          string
		target        *engineer.ScanTarget
		wantRuleIDs   []string
		wantRiskScore float64
	}{
		{
			name: "hardened target produces no findings",
			target: &engineer.ScanTarget{
				Name:            "prod-assistant",
				Endpoint:        "https://assistant.example.com",
				TLSEnabled:      true,
				AuthRequired:    true,
				AllowedOrigins:  []string{"https://app.example.com"},
				MaxPromptLength: 4096,
				LogsRawPrompts:  false,
				RateLimited:     true,
			},
			wantRuleIDs:   []string{},
			wantRiskScore: 0,
		},
		{
			name: "unprotected target fails every check",
			target: &engineer.ScanTarget{
				Name:            "dev-playground",
				Endpoint:        "http://playground.internal:8000",
				TLSEnabled:      false,
				AuthRequired:    false,
				AllowedOrigins:  []string{"*"},
				MaxPromptLength: 0,
				LogsRawPrompts:  true,
				RateLimited:     false,
			},
			wantRuleIDs: []string{
				"cors-wildcard-origin",
				"missing-authentication",
				"missing-rate-limiting",
				"plaintext-endpoint",
				"raw-prompt-logging",
				"unbounded-prompt-length",
			},
			wantRiskScore: 1.0,
		},
		{
			name: "partially hardened target",
			target: &engineer.ScanTarget{
				Name:            "staging-assistant",
				Endpoint:        "https://staging.example.com",
				TLSEnabled:      true,
				AuthRequired:    true,
				AllowedOrigins:  []string{"https://staging-app.example.com"},
				MaxPromptLength: 4096,
				LogsRawPrompts:  true,
				RateLimited:     false,
			},
			wantRuleIDs: []string{
				"missing-rate-limiting",
				"raw-prompt-logging",
			},
			wantRiskScore: 0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := SetupTestServices(t, config.SqliteDbType, &config.FeedSettings{})
			ctx := context.Background()

			report, err := services.ScanService.Run(ctx, tt.target)
			require.NoError(t, err)
			require.NotNil(t, report)

			assert.Equal(t, tt.target.Name, report.TargetName)
			assert.Equal(t, tt.target.Endpoint, report.Endpoint)
			assert.InDelta(t, tt.wantRiskScore, report.RiskScore, 0.001)

			ruleIDs := make([]string, 0, len(report.Findings))
			for _, finding := range report.Findings {
				assert.NotEmpty(t, finding.ID)
				assert.NotEmpty(t, finding.Description)
				assert.NotEmpty(t, finding.Remediation)
				ruleIDs = append(ruleIDs, finding.RuleID)
			}
			assert.Equal(t, tt.wantRuleIDs, ruleIDs)
			assert.True(t, sort.StringsAreSorted(ruleIDs), "findings must be ordered by rule ID")

			// The report must be retrievable with its findings intact
			fetched, err := services.ScanReportMetadataService.GetByID(ctx, report.ID)
			require.NoError(t, err)
			assert.Len(t, fetched.Findings, len(report.Findings))
		})
	}
}

// TestScanService_Run_InvalidTarget verifies target validation
func TestScanService_Run_InvalidTarget(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType, &config.FeedSettings{})
	ctx := context.Background()

	_, err := services.ScanService.Run(ctx, &engineer.ScanTarget{
		Name:     "",
		Endpoint: "not-a-url",
	})
	assert.Error(t, err)
}

// TestScanReportMetadataService_ListAndDelete verifies filtered listing and deletion
func TestScanReportMetadataService_ListAndDelete(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType, &config.FeedSettings{})
	ctx := context.Background()

	first, err := services.ScanService.Run(ctx, &engineer.ScanTarget{
		Name:            "alpha",
		Endpoint:        "https://alpha.example.com",
		TLSEnabled:      true,
		AuthRequired:    true,
		MaxPromptLength: 2048,
		RateLimited:     true,
	})
	require.NoError(t, err)

	_, err = services.ScanService.Run(ctx, &engineer.ScanTarget{
		Name:            "beta",
		Endpoint:        "https://beta.example.com",
		TLSEnabled:      true,
		AuthRequired:    true,
		MaxPromptLength: 2048,
		RateLimited:     true,
	})
	require.NoError(t, err)

	query := engineer.NewScanQuery()
	query.TargetName = "alpha"
	reports, err := services.ScanReportMetadataService.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, first.ID, reports[0].ID)

	err = services.ScanReportMetadataService.DeleteByID(ctx, first.ID)
	require.NoError(t, err)

	_, err = services.ScanReportMetadataService.GetByID(ctx, first.ID)
	assert.Error(t, err)
}
