package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envAdminToken   = "ADMIN_TOKEN"
	envRescore      = "RESCORE_INTERVAL"
	envWorkers      = "SCORING_WORKERS"
	envAnalyzeRate  = "ANALYZE_RATE_PER_SEC"
	envAnalyzeBurst = "ANALYZE_BURST"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = "fixture"
	// Recency bonuses age out by the day, so an hourly rescore keeps the cache fresh.
	defaultRescoreInterval = Duration(time.Hour)
	defaultWorkers         = 4
	defaultAnalyzeRate     = 5.0
	defaultAnalyzeBurst    = 10
	defaultMetricsPort     = "9090"
	defaultServiceName     = "injury-risk-service"
)
