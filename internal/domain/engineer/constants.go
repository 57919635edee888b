package engineer

// Severity constants for scan findings
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// SeverityWeight maps a finding severity to its contribution to the report risk score.
var SeverityWeight = map[string]float64{
	SeverityLow:      0.25,
	SeverityMedium:   0.5,
	SeverityHigh:     0.75,
	SeverityCritical: 1.0,
}
