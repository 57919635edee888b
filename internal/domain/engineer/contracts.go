package engineer

import (
	"context"
)

// HardeningRule is a single check evaluated against a scan target.
type HardeningRule interface {
	// ID identifies the rule in findings.
	ID() string

	// Evaluate checks the target and returns a Finding when the check fails,
	// or nil when it passes.
	Evaluate(target *ScanTarget) *Finding
}

// ScanService defines methods for running hardening scans.
type ScanService interface {
	// Run evaluates all registered rules against the target, persists the
	// resulting report and returns it. Findings are ordered by rule ID.
	Run(ctx context.Context, target *ScanTarget) (*ScanReport, error)
}

// ScanReportMetadataService defines methods for retrieving and deleting scan reports.
type ScanReportMetadataService interface {
	// List retrieves scan reports considering a query filter when set.
	List(ctx context.Context, query *ScanQuery) ([]*ScanReport, error)

	// GetByID retrieves a scan report by ID.
	GetByID(ctx context.Context, reportID string) (*ScanReport, error)

	// DeleteByID deletes a scan report by ID.
	DeleteByID(ctx context.Context, reportID string) error
}

// ScanReportRepository defines the interface for ScanReport persistence
type ScanReportRepository interface {
	// Create adds a new ScanReport to the database
	Create(ctx context.Context, report *ScanReport) error
	// List lists ScanReports in the database with optional filter
	List(ctx context.Context, query *ScanQuery) ([]*ScanReport, error)
	// GetByID retrieves a ScanReport from the database by ID
	GetByID(ctx context.Context, reportID string) (*ScanReport, error)
	// DeleteByID deletes a ScanReport in the database by ID
	DeleteByID(ctx context.Context, reportID string) error
}
