// Package engineer defines the core entities and contracts for the Engineer head,
// which runs hardening scans against AI deployment targets and records the
// resulting findings.
package engineer
