//go:build unit
// +build unit

package v1

import (
	"context"

	"cerberus_security_service/internal/domain/engineer"
	"cerberus_security_service/internal/domain/oracle"
	"cerberus_security_service/internal/domain/watchman"

	"github.com/stretchr/testify/mock"
)

// MockPromptAnalysisService is a mock implementation of PromptAnalysisService
type MockPromptAnalysisService struct {
	mock.Mock
}

func (m *MockPromptAnalysisService) Analyze(ctx context.Context, sessionID, prompt string) (*watchman.PromptAnalysis, error) {
	args := m.Called(ctx, sessionID, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*watchman.PromptAnalysis), args.Error(1)
}

// MockPromptScreeningService is a mock implementation of PromptScreeningService
type MockPromptScreeningService struct {
	mock.Mock
}

func (m *MockPromptScreeningService) Screen(ctx context.Context, sessionID, prompt string) (*watchman.ScreeningResult, error) {
	args := m.Called(ctx, sessionID, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*watchman.ScreeningResult), args.Error(1)
}

// MockAnalysisMetadataService is a mock implementation of AnalysisMetadataService
type MockAnalysisMetadataService struct {
	mock.Mock
}

func (m *MockAnalysisMetadataService) List(ctx context.Context, query *watchman.PromptAnalysisQuery) ([]*watchman.PromptAnalysis, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*watchman.PromptAnalysis), args.Error(1)
}

func (m *MockAnalysisMetadataService) GetByID(ctx context.Context, analysisID string) (*watchman.PromptAnalysis, error) {
	args := m.Called(ctx, analysisID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*watchman.PromptAnalysis), args.Error(1)
}

func (m *MockAnalysisMetadataService) DeleteByID(ctx context.Context, analysisID string) error {
	args := m.Called(ctx, analysisID)
	return args.Error(0)
}

// MockThreatIntelService is a mock implementation of ThreatIntelService
type MockThreatIntelService struct {
	mock.Mock
}

func (m *MockThreatIntelService) Ingest(ctx context.Context, indicators []*oracle.ThreatIndicator) ([]*oracle.ThreatIndicator, error) {
	args := m.Called(ctx, indicators)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*oracle.ThreatIndicator), args.Error(1)
}

func (m *MockThreatIntelService) Assess(ctx context.Context, value string) (*oracle.ThreatAssessment, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oracle.ThreatAssessment), args.Error(1)
}

func (m *MockThreatIntelService) SyncFeeds(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockIndicatorMetadataService is a mock implementation of IndicatorMetadataService
type MockIndicatorMetadataService struct {
	mock.Mock
}

func (m *MockIndicatorMetadataService) List(ctx context.Context, query *oracle.ThreatIndicatorQuery) ([]*oracle.ThreatIndicator, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*oracle.ThreatIndicator), args.Error(1)
}

func (m *MockIndicatorMetadataService) GetByID(ctx context.Context, indicatorID string) (*oracle.ThreatIndicator, error) {
	args := m.Called(ctx, indicatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oracle.ThreatIndicator), args.Error(1)
}

func (m *MockIndicatorMetadataService) DeleteByID(ctx context.Context, indicatorID string) error {
	args := m.Called(ctx, indicatorID)
	return args.Error(0)
}

// MockScanService is a mock implementation of ScanService
type MockScanService struct {
	mock.Mock
}

func (m *MockScanService) Run(ctx context.Context, target *engineer.ScanTarget) (*engineer.ScanReport, error) {
	args := m.Called(ctx, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engineer.ScanReport), args.Error(1)
}

// MockScanReportMetadataService is a mock implementation of ScanReportMetadataService
type MockScanReportMetadataService struct {
	mock.Mock
}

func (m *MockScanReportMetadataService) List(ctx context.Context, query *engineer.ScanQuery) ([]*engineer.ScanReport, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*engineer.ScanReport), args.Error(1)
}

func (m *MockScanReportMetadataService) GetByID(ctx context.Context, reportID string) (*engineer.ScanReport, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engineer.ScanReport), args.Error(1)
}

func (m *MockScanReportMetadataService) DeleteByID(ctx context.Context, reportID string) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}
