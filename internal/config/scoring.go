package config

import "time"

// ScoringConfig controls roster rescoring and the ad-hoc analyze endpoint.
type ScoringConfig struct {
	RescoreInterval time.Duration
	Workers         int
	AnalyzeRate     float64 // sustained requests per second for POST /risk/analyze
	AnalyzeBurst    int
}

func loadScoring() ScoringConfig {
	return ScoringConfig{
		RescoreInterval: durationEnvOrDefault(envRescore, defaultRescoreInterval),
		Workers:         intEnvOrDefault(envWorkers, defaultWorkers),
		AnalyzeRate:     floatEnvOrDefault(envAnalyzeRate, defaultAnalyzeRate),
		AnalyzeBurst:    intEnvOrDefault(envAnalyzeBurst, defaultAnalyzeBurst),
	}
}
