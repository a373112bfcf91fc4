package config

import "os"

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	Provider   string
	// AdminToken guards POST /admin/rescore; empty leaves the route unmounted.
	AdminToken string
	Scoring    ScoringConfig
	Metrics    MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Provider:   envOrDefault(envProvider, defaultProvider),
		AdminToken: os.Getenv(envAdminToken),
		Scoring:    loadScoring(),
		Metrics:    loadMetrics(),
	}
}
