package app

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"cerberus_security_service/internal/domain/engineer"
	"cerberus_security_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// scanService implements the ScanService interface for running hardening scans
type scanService struct {
	rules    []engineer.HardeningRule
	scanRepo engineer.ScanReportRepository
	logger   logger.Logger
}

// NewScanService creates a new scanService instance
func NewScanService(
	rules []engineer.HardeningRule,
	scanRepo engineer.ScanReportRepository,
	logger logger.Logger,
) (engineer.ScanService, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("at least one hardening rule is required")
	}

	return &scanService{
		rules:    rules,
		scanRepo: scanRepo,
		logger:   logger,
	}, nil
}

// Run evaluates all registered rules against the target concurrently, persists
// the resulting report and returns it. Findings are ordered by rule ID and the
// report risk score is the maximum severity weight over all findings.
func (s *scanService) Run(ctx context.Context, target *engineer.ScanTarget) (*engineer.ScanReport, error) {
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		findings []*engineer.Finding
	)

	for _, rule := range s.rules {
		wg.Add(1)
		go func(rule engineer.HardeningRule) {
			defer wg.Done()

			finding := rule.Evaluate(target)
			if finding == nil {
				return
			}
			if finding.ID == "" {
				finding.ID = uuid.New().String()
			}

			mu.Lock()
			findings = append(findings, finding)
			mu.Unlock()
		}(rule)
	}

	wg.Wait()

	sort.Slice(findings, func(i, j int) bool {
		return findings[i].RuleID < findings[j].RuleID
	})

	riskScore := 0.0
	for _, finding := range findings {
		if weight := engineer.SeverityWeight[finding.Severity]; weight > riskScore {
			riskScore = weight
		}
	}

	report := &engineer.ScanReport{
		ID:              uuid.New().String(),
		TargetName:      target.Name,
		Endpoint:        target.Endpoint,
		Findings:        findings,
		RiskScore:       riskScore,
		DateTimeCreated: time.Now(),
	}

	if err := s.scanRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if len(findings) > 0 {
		s.logger.Warn("Scan of target ", target.Name, " produced ", len(findings), " findings with risk score ", riskScore)
	} else {
		s.logger.Info("Scan of target ", target.Name, " produced no findings")
	}

	return report, nil
}

// scanReportMetadataService implements the ScanReportMetadataService interface
// for retrieving and deleting scan reports
type scanReportMetadataService struct {
	scanRepo engineer.ScanReportRepository
	logger   logger.Logger
}

// NewScanReportMetadataService creates a new scanReportMetadataService instance
func NewScanReportMetadataService(
	scanRepo engineer.ScanReportRepository,
	logger logger.Logger,
) (engineer.ScanReportMetadataService, error) {
	return &scanReportMetadataService{
		scanRepo: scanRepo,
		logger:   logger,
	}, nil
}

// List retrieves scan reports considering a query filter when set.
func (s *scanReportMetadataService) List(ctx context.Context, query *engineer.ScanQuery) ([]*engineer.ScanReport, error) {
	reports, err := s.scanRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return reports, nil
}

// GetByID retrieves a scan report by ID.
func (s *scanReportMetadataService) GetByID(ctx context.Context, reportID string) (*engineer.ScanReport, error) {
	report, err := s.scanRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return report, nil
}

// DeleteByID deletes a scan report by ID.
func (s *scanReportMetadataService) DeleteByID(ctx context.Context, reportID string) error {
	if err := s.scanRepo.DeleteByID(ctx, reportID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
