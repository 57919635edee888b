package models

import (
	"encoding/json"
	"fmt"
	"time"

	"cerberus_security_service/internal/domain/engineer"
)

// ScanReportModel is the GORM database model for scan reports (infrastructure concern).
// Findings are serialized as a JSON column on the report row.
type ScanReportModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	TargetName      string    `gorm:"not null;index;type:varchar(255)"`
	Endpoint        string    `gorm:"not null;type:varchar(1024)"`
	Findings        []byte    `gorm:"type:json"`
	RiskScore       float64   `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ScanReportModel) TableName() string {
	return "scan_reports"
}

// ToDomain converts GORM model to domain entity
func (m *ScanReportModel) ToDomain() (*engineer.ScanReport, error) {
	var findings []*engineer.Finding
	if len(m.Findings) > 0 {
		if err := json.Unmarshal(m.Findings, &findings); err != nil {
			return nil, fmt.Errorf("failed to decode findings for report %s: %w", m.ID, err)
		}
	}

	return &engineer.ScanReport{
		ID:              m.ID,
		TargetName:      m.TargetName,
		Endpoint:        m.Endpoint,
		Findings:        findings,
		RiskScore:       m.RiskScore,
		DateTimeCreated: m.DateTimeCreated,
	}, nil
}

// FromDomain converts domain entity to GORM model
func (m *ScanReportModel) FromDomain(r *engineer.ScanReport) error {
	findings, err := json.Marshal(r.Findings)
	if err != nil {
		return fmt.Errorf("failed to encode findings for report %s: %w", r.ID, err)
	}

	m.ID = r.ID
	m.TargetName = r.TargetName
	m.Endpoint = r.Endpoint
	m.Findings = findings
	m.RiskScore = r.RiskScore
	m.DateTimeCreated = r.DateTimeCreated
	return nil
}
