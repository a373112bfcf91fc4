package server

import (
	"context"
	"log/slog"
	"net/http"

	appassessments "github.com/preston-bernstein/injury-risk-service/internal/app/assessments"
	appplayers "github.com/preston-bernstein/injury-risk-service/internal/app/players"
	"github.com/preston-bernstein/injury-risk-service/internal/config"
	httpserver "github.com/preston-bernstein/injury-risk-service/internal/http"
	"github.com/preston-bernstein/injury-risk-service/internal/http/handlers"
	"github.com/preston-bernstein/injury-risk-service/internal/http/middleware"
	"github.com/preston-bernstein/injury-risk-service/internal/logging"
	"github.com/preston-bernstein/injury-risk-service/internal/metrics"
	"github.com/preston-bernstein/injury-risk-service/internal/poller"
	"github.com/preston-bernstein/injury-risk-service/internal/providers"
	"github.com/preston-bernstein/injury-risk-service/internal/risk"
	"github.com/preston-bernstein/injury-risk-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg                config.Config
	logger             *slog.Logger
	metrics            *metrics.Recorder
	store              *store.MemoryStore
	playersService     *appplayers.Service
	assessmentsService *appassessments.Service
	httpServer         httpServer
	metricsServer      httpServer
	poller             Poller
	metricsStop        func(context.Context) error
}

type services struct {
	store       *store.MemoryStore
	players     *appplayers.Service
	assessments *appassessments.Service
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.RosterProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.RosterProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	svcs := buildServices(cfg, logger, recorder)
	plr := poller.New(provider, svcs.players, svcs.assessments, logger, recorder, cfg.Scoring.RescoreInterval)
	httpSrv := buildHTTPServer(cfg, svcs, logger, recorder, plr)

	return &Server{
		cfg:                cfg,
		logger:             logger,
		metrics:            recorder,
		store:              svcs.store,
		playersService:     svcs.players,
		assessmentsService: svcs.assessments,
		httpServer:         httpSrv,
		metricsServer:      metricsSrv,
		poller:             plr,
		metricsStop:        metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildServices(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) services {
	memoryStore := store.NewMemoryStore()
	return services{
		store:       memoryStore,
		players:     appplayers.NewService(memoryStore),
		assessments: appassessments.NewService(memoryStore, risk.NewScorer(), recorder, logger, cfg.Scoring.Workers),
	}
}

func buildHTTPServer(cfg config.Config, svcs services, logger *slog.Logger, recorder *metrics.Recorder, plr *poller.Poller) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}
	handler := handlers.NewHandler(svcs.players, svcs.assessments, logger, statusFn)

	// Admin routes are only mounted when a token is configured.
	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" && plr != nil {
		admin = handlers.NewAdminHandler(plr, cfg.AdminToken, logger)
	}
	limiter := middleware.NewRateLimiter(cfg.Scoring.AnalyzeRate, cfg.Scoring.AnalyzeBurst, recorder, logger)
	router := httpserver.NewRouter(handler, admin, limiter)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
