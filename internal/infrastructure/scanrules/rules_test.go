//go:build unit
// +build unit

package scanrules

import (
	"testing"

	"cerberus_security_service/internal/domain/engineer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hardenedTarget() *engineer.ScanTarget {
	return &engineer.ScanTarget{
		Name:            "hardened",
		Endpoint:        "https://llm.example.com",
		TLSEnabled:      true,
		AuthRequired:    true,
		AllowedOrigins:  []string{"https://app.example.com"},
		MaxPromptLength: 8192,
		LogsRawPrompts:  false,
		RateLimited:     true,
	}
}

func findRule(t *testing.T, id string) engineer.HardeningRule {
	t.Helper()

	for _, rule := range DefaultRules() {
		if rule.ID() == id {
			return rule
		}
	}
	t.Fatalf("rule %s not found", id)
	return nil
}

func TestDefaultRules_HardenedTargetPasses(t *testing.T) {
	target := hardenedTarget()

	for _, rule := range DefaultRules() {
		assert.Nil(t, rule.Evaluate(target), "rule %s should pass", rule.ID())
	}
}

func TestDefaultRules_Failures(t *testing.T) {
	tests := []struct {
		name             string
		mutate           func(*engineer.ScanTarget)
		ruleID           string
		expectedSeverity string
	}{
		{"plaintext endpoint", func(tg *engineer.ScanTarget) {
			tg.TLSEnabled = false
			tg.Endpoint = "http://llm.example.com"
		}, RulePlaintextEndpoint, engineer.SeverityCritical},
		{"missing auth", func(tg *engineer.ScanTarget) { tg.AuthRequired = false }, RuleMissingAuth, engineer.SeverityCritical},
		{"wildcard origin", func(tg *engineer.ScanTarget) { tg.AllowedOrigins = []string{"*"} }, RuleWildcardOrigin, engineer.SeverityMedium},
		{"unbounded prompt", func(tg *engineer.ScanTarget) { tg.MaxPromptLength = 0 }, RuleUnboundedPrompt, engineer.SeverityMedium},
		{"raw prompt logging", func(tg *engineer.ScanTarget) { tg.LogsRawPrompts = true }, RuleRawPromptLogging, engineer.SeverityHigh},
		{"missing rate limit", func(tg *engineer.ScanTarget) { tg.RateLimited = false }, RuleMissingRateLimit, engineer.SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := hardenedTarget()
			tt.mutate(target)

			finding := findRule(t, tt.ruleID).Evaluate(target)
			require.NotNil(t, finding)

			assert.Equal(t, tt.ruleID, finding.RuleID)
			assert.Equal(t, tt.expectedSeverity, finding.Severity)
			assert.NotEmpty(t, finding.Description)
			assert.NotEmpty(t, finding.Remediation)
			assert.NotEmpty(t, finding.ID)
		})
	}
}
