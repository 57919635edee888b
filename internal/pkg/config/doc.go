// Package config defines the configuration settings for the Cerberus services,
// covering the HTTP server, database, logging, injection detection, the model
// gateway and threat feed synchronization. Settings are loaded from YAML files
// with environment variable overrides and validated before use.
package config
