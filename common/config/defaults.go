package config

import "time"

// NewDefaultConfig provides a configuration with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		// Service information
		ServiceName:    "store-manager",
		ServiceVersion: "dev",
		Environment:    "development",

		// OpenTelemetry configuration
		OtelEnabled:      false,
		OtelEndpoint:     "localhost:4317",
		OtelInsecure:     true,
		OtelSampleRatio:  1.0,
		OtelBatchTimeout: 5 * time.Second,

		// Logging configuration
		LogLevel:  "info",
		LogFormat: "text",

		// Application-specific settings
		Port: "3000",

		// Storage
		StoreBackend:  BackendMemory,
		MongoURL:      "mongodb://mongodb:27017/StoreManager",
		MongoDatabase: "StoreManager",

		// Shutdown timeouts
		ShutdownTotalTimeout:   30 * time.Second,
		ShutdownServerTimeout:  10 * time.Second,
		ShutdownOtelMinTimeout: 5 * time.Second,

		SimulateOverallErrorChance: 0.1,
	}
}
