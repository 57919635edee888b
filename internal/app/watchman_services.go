package app

import (
	"context"
	"fmt"
	"time"

	"cerberus_security_service/internal/domain/gateway"
	"cerberus_security_service/internal/domain/watchman"
	"cerberus_security_service/internal/pkg/logger"

	"github.com/google/uuid"
)

// promptAnalysisService implements the PromptAnalysisService interface for analyzing prompts
type promptAnalysisService struct {
	detector     watchman.InjectionDetector
	analysisRepo watchman.PromptAnalysisRepository
	threshold    float64
	logger       logger.Logger
}

// NewPromptAnalysisService creates a new promptAnalysisService instance
func NewPromptAnalysisService(
	detector watchman.InjectionDetector,
	analysisRepo watchman.PromptAnalysisRepository,
	threshold float64,
	logger logger.Logger,
) (watchman.PromptAnalysisService, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("threshold must be between 0 and 1, got %f", threshold)
	}

	return &promptAnalysisService{
		detector:     detector,
		analysisRepo: analysisRepo,
		threshold:    threshold,
		logger:       logger,
	}, nil
}

// Analyze runs the configured detector against a prompt, persists the verdict
// and returns the stored PromptAnalysis.
func (s *promptAnalysisService) Analyze(ctx context.Context, sessionID, prompt string) (*watchman.PromptAnalysis, error) {
	hit, confidence, err := s.detector.Detect(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("detection failed: %w", err)
	}

	flagged := hit && confidence >= s.threshold
	details := watchman.DetailPromptClear
	if flagged {
		details = watchman.DetailInjectionDetected
	}

	analysis := &watchman.PromptAnalysis{
		ID:              uuid.New().String(),
		SessionID:       sessionID,
		Prompt:          prompt,
		Flagged:         flagged,
		Confidence:      confidence,
		Detector:        s.detector.Name(),
		Details:         details,
		DateTimeCreated: time.Now(),
	}

	if err := s.analysisRepo.Create(ctx, analysis); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if flagged {
		s.logger.Warn("Prompt injection detected with confidence ", confidence, " for session ", sessionID)
	} else {
		s.logger.Info("Prompt deemed safe with confidence ", confidence, " for session ", sessionID)
	}

	return analysis, nil
}

// promptScreeningService implements the PromptScreeningService interface for
// gating prompts before they reach the downstream model
type promptScreeningService struct {
	analysisService watchman.PromptAnalysisService
	modelGateway    gateway.ModelGateway
	logger          logger.Logger
}

// NewPromptScreeningService creates a new promptScreeningService instance
func NewPromptScreeningService(
	analysisService watchman.PromptAnalysisService,
	modelGateway gateway.ModelGateway,
	logger logger.Logger,
) (watchman.PromptScreeningService, error) {
	return &promptScreeningService{
		analysisService: analysisService,
		modelGateway:    modelGateway,
		logger:          logger,
	}, nil
}

// Screen analyzes a prompt and forwards it to the model gateway when it is clear.
// Flagged prompts are blocked and never reach the model.
func (s *promptScreeningService) Screen(ctx context.Context, sessionID, prompt string) (*watchman.ScreeningResult, error) {
	analysis, err := s.analysisService.Analyze(ctx, sessionID, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if analysis.Flagged {
		s.logger.Warn("Prompt blocked for session ", sessionID)
		return &watchman.ScreeningResult{
			Analysis: analysis,
			Blocked:  true,
		}, nil
	}

	reply, err := s.modelGateway.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("model gateway failed: %w", err)
	}

	return &watchman.ScreeningResult{
		Analysis: analysis,
		Blocked:  false,
		Reply:    reply,
	}, nil
}

// analysisMetadataService implements the AnalysisMetadataService interface for
// retrieving and deleting stored analyses
type analysisMetadataService struct {
	analysisRepo watchman.PromptAnalysisRepository
	logger       logger.Logger
}

// NewAnalysisMetadataService creates a new analysisMetadataService instance
func NewAnalysisMetadataService(
	analysisRepo watchman.PromptAnalysisRepository,
	logger logger.Logger,
) (watchman.AnalysisMetadataService, error) {
	return &analysisMetadataService{
		analysisRepo: analysisRepo,
		logger:       logger,
	}, nil
}

// List retrieves stored analyses considering a query filter when set.
func (s *analysisMetadataService) List(ctx context.Context, query *watchman.PromptAnalysisQuery) ([]*watchman.PromptAnalysis, error) {
	analyses, err := s.analysisRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return analyses, nil
}

// GetByID retrieves an analysis by ID.
func (s *analysisMetadataService) GetByID(ctx context.Context, analysisID string) (*watchman.PromptAnalysis, error) {
	analysis, err := s.analysisRepo.GetByID(ctx, analysisID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return analysis, nil
}

// DeleteByID deletes an analysis by ID.
func (s *analysisMetadataService) DeleteByID(ctx context.Context, analysisID string) error {
	if err := s.analysisRepo.DeleteByID(ctx, analysisID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
