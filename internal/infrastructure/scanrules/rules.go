package scanrules

import (
	"strings"

	"cerberus_security_service/internal/domain/engineer"

	"github.com/google/uuid"
)

// Rule ID constants
const (
	RulePlaintextEndpoint = "plaintext-endpoint"
	RuleMissingAuth       = "missing-authentication"
	RuleWildcardOrigin    = "cors-wildcard-origin"
	RuleUnboundedPrompt   = "unbounded-prompt-length"
	RuleRawPromptLogging  = "raw-prompt-logging"
	RuleMissingRateLimit  = "missing-rate-limiting"
)

// checkFunc evaluates a target and reports severity, description and remediation
// when the check fails.
type checkFunc func(target *engineer.ScanTarget) (bool, string, string, string)

// staticRule implements engineer.HardeningRule with a fixed check function.
type staticRule struct {
	id    string
	check checkFunc
}

func (r *staticRule) ID() string {
	return r.id
}

func (r *staticRule) Evaluate(target *engineer.ScanTarget) *engineer.Finding {
	failed, severity, description, remediation := r.check(target)
	if !failed {
		return nil
	}

	return &engineer.Finding{
		ID:          uuid.NewString(),
		RuleID:      r.id,
		Severity:    severity,
		Description: description,
		Remediation: remediation,
	}
}

// DefaultRules returns the built-in hardening rule set.
func DefaultRules() []engineer.HardeningRule {
	return []engineer.HardeningRule{
		&staticRule{
			id: RulePlaintextEndpoint,
			check: func(target *engineer.ScanTarget) (bool, string, string, string) {
				failed := !target.TLSEnabled || strings.HasPrefix(target.Endpoint, "http://")
				return failed, engineer.SeverityCritical,
					"the target accepts model traffic over plaintext HTTP",
					"terminate TLS in front of the model endpoint and disable plaintext listeners"
			},
		},
		&staticRule{
			id: RuleMissingAuth,
			check: func(target *engineer.ScanTarget) (bool, string, string, string) {
				return !target.AuthRequired, engineer.SeverityCritical,
					"the model endpoint accepts unauthenticated requests",
					"require API keys or bearer tokens on every model route"
			},
		},
		&staticRule{
			id: RuleWildcardOrigin,
			check: func(target *engineer.ScanTarget) (bool, string, string, string) {
				failed := false
				for _, origin := range target.AllowedOrigins {
					if origin == "*" {
						failed = true
						break
					}
				}
				return failed, engineer.SeverityMedium,
					"the target allows cross-origin requests from any origin",
					"restrict allowed origins to known frontends"
			},
		},
		&staticRule{
			id: RuleUnboundedPrompt,
			check: func(target *engineer.ScanTarget) (bool, string, string, string) {
				return target.MaxPromptLength == 0, engineer.SeverityMedium,
					"the target does not bound prompt length",
					"enforce a maximum prompt length before requests reach the model"
			},
		},
		&staticRule{
			id: RuleRawPromptLogging,
			check: func(target *engineer.ScanTarget) (bool, string, string, string) {
				return target.LogsRawPrompts, engineer.SeverityHigh,
					"the target writes raw prompts to its logs",
					"redact or hash prompt contents before logging"
			},
		},
		&staticRule{
			id: RuleMissingRateLimit,
			check: func(target *engineer.ScanTarget) (bool, string, string, string) {
				return !target.RateLimited, engineer.SeverityLow,
					"the model endpoint is not rate limited",
					"apply per-client rate limits to model routes"
			},
		},
	}
}
