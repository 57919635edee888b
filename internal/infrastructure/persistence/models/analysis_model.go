package models

import (
	"time"

	"cerberus_security_service/internal/domain/watchman"
)

// PromptAnalysisModel is the GORM database model for prompt analyses (infrastructure concern)
type PromptAnalysisModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	SessionID       string    `gorm:"not null;index;type:uuid"`
	Prompt          string    `gorm:"not null;type:text"`
	Flagged         bool      `gorm:"not null;index"`
	Confidence      float64   `gorm:"not null"`
	Detector        string    `gorm:"type:varchar(20)"`
	Details         string    `gorm:"type:varchar(255)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PromptAnalysisModel) TableName() string {
	return "prompt_analyses"
}

// ToDomain converts GORM model to domain entity
func (m *PromptAnalysisModel) ToDomain() *watchman.PromptAnalysis {
	return &watchman.PromptAnalysis{
		ID:              m.ID,
		SessionID:       m.SessionID,
		Prompt:          m.Prompt,
		Flagged:         m.Flagged,
		Confidence:      m.Confidence,
		Detector:        m.Detector,
		Details:         m.Details,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PromptAnalysisModel) FromDomain(a *watchman.PromptAnalysis) {
	m.ID = a.ID
	m.SessionID = a.SessionID
	m.Prompt = a.Prompt
	m.Flagged = a.Flagged
	m.Confidence = a.Confidence
	m.Detector = a.Detector
	m.Details = a.Details
	m.DateTimeCreated = a.DateTimeCreated
}
