// Package feeds provides connectors for fetching threat intelligence indicators
// from external feeds.
package feeds
