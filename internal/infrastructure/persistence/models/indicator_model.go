package models

import (
	"time"

	"cerberus_security_service/internal/domain/oracle"
)

// ThreatIndicatorModel is the GORM database model for threat indicators (infrastructure concern)
type ThreatIndicatorModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Type            string    `gorm:"not null;index;type:varchar(20)"`
	Value           string    `gorm:"not null;index;type:varchar(1024)"`
	Severity        string    `gorm:"not null;index;type:varchar(20)"`
	Confidence      float64   `gorm:"not null"`
	Source          string    `gorm:"not null;type:varchar(255)"`
	Description     string    `gorm:"type:varchar(1024)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ThreatIndicatorModel) TableName() string {
	return "threat_indicators"
}

// ToDomain converts GORM model to domain entity
func (m *ThreatIndicatorModel) ToDomain() *oracle.ThreatIndicator {
	return &oracle.ThreatIndicator{
		ID:              m.ID,
		Type:            m.Type,
		Value:           m.Value,
		Severity:        m.Severity,
		Confidence:      m.Confidence,
		Source:          m.Source,
		Description:     m.Description,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ThreatIndicatorModel) FromDomain(i *oracle.ThreatIndicator) {
	m.ID = i.ID
	m.Type = i.Type
	m.Value = i.Value
	m.Severity = i.Severity
	m.Confidence = i.Confidence
	m.Source = i.Source
	m.Description = i.Description
	m.DateTimeCreated = i.DateTimeCreated
}
