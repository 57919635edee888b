package oracle

// Indicator type constants
const (
	IndicatorTypeIP      = "ip"
	IndicatorTypeDomain  = "domain"
	IndicatorTypeURL     = "url"
	IndicatorTypeHash    = "hash"
	IndicatorTypeKeyword = "keyword"
)

// Severity constants
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// SeverityWeight maps a severity to its contribution to risk scores.
var SeverityWeight = map[string]float64{
	SeverityLow:      0.25,
	SeverityMedium:   0.5,
	SeverityHigh:     0.75,
	SeverityCritical: 1.0,
}
