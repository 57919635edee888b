// Package models contains the GORM database models for prompt analyses,
// threat indicators and scan reports, with conversions to and from the
// domain entities.
package models
