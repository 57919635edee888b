package watchman

import (
	"context"
)

// InjectionDetector scores a prompt for signs of prompt injection.
type InjectionDetector interface {
	// Detect returns whether the prompt looks like an injection attempt and the
	// probability assigned by the detector.
	Detect(ctx context.Context, prompt string) (bool, float64, error)

	// Name identifies the detector implementation in analysis records.
	Name() string
}

// PromptAnalysisService defines methods for analyzing prompts.
type PromptAnalysisService interface {
	// Analyze runs the configured detector against a prompt, persists the verdict
	// and returns the stored PromptAnalysis.
	Analyze(ctx context.Context, sessionID, prompt string) (*PromptAnalysis, error)
}

// PromptScreeningService defines methods for screening prompts before they reach
// the downstream model.
type PromptScreeningService interface {
	// Screen analyzes a prompt and, when it is clear, forwards it to the model
	// gateway. Flagged prompts are blocked and never reach the model.
	Screen(ctx context.Context, sessionID, prompt string) (*ScreeningResult, error)
}

// AnalysisMetadataService defines methods for retrieving and deleting stored analyses.
type AnalysisMetadataService interface {
	// List retrieves stored analyses considering a query filter when set.
	List(ctx context.Context, query *PromptAnalysisQuery) ([]*PromptAnalysis, error)

	// GetByID retrieves an analysis by ID.
	GetByID(ctx context.Context, analysisID string) (*PromptAnalysis, error)

	// DeleteByID deletes an analysis by ID.
	DeleteByID(ctx context.Context, analysisID string) error
}

// PromptAnalysisRepository defines the interface for PromptAnalysis persistence
type PromptAnalysisRepository interface {
	// Create adds a new PromptAnalysis to the database
	Create(ctx context.Context, analysis *PromptAnalysis) error
	// List lists PromptAnalyses in the database with optional filter
	List(ctx context.Context, query *PromptAnalysisQuery) ([]*PromptAnalysis, error)
	// GetByID retrieves a PromptAnalysis from the database by ID
	GetByID(ctx context.Context, analysisID string) (*PromptAnalysis, error)
	// DeleteByID deletes a PromptAnalysis in the database by ID
	DeleteByID(ctx context.Context, analysisID string) error
}
