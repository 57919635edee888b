// Package oracle defines the core entities and contracts for the Oracle head,
// which maintains threat intelligence indicators ingested from external feeds
// and assesses values against the indicator corpus.
package oracle
