package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/injury-risk-service/internal/domain/assessments"
	"github.com/preston-bernstein/injury-risk-service/internal/domain/players"
	"github.com/preston-bernstein/injury-risk-service/internal/logging"
	"github.com/preston-bernstein/injury-risk-service/internal/metrics"
	"github.com/preston-bernstein/injury-risk-service/internal/providers"
)

const defaultInterval = time.Hour

var errNoRoster = errors.New("poller: roster sink is not configured")

// Roster receives each freshly fetched player snapshot.
type Roster interface {
	ReplacePlayers([]players.Player)
}

// Assessor scores a roster as of a given instant.
type Assessor interface {
	AssessAll(ctx context.Context, items []players.Player, at time.Time) ([]assessments.PlayerAssessment, error)
}

// Poller refreshes the roster on an interval and rescores every player.
type Poller struct {
	provider providers.RosterProvider
	roster   Roster
	assessor Assessor
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	// cycleMu serialises fetch-and-score cycles; results land in start order.
	cycleMu sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	PlayersScored       int
	HighRiskPlayers     int
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.RosterProvider, roster Roster, assessor Assessor, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		roster:   roster,
		assessor: assessor,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// WithClock overrides the evaluation clock used for each cycle.
func (p *Poller) WithClock(now func() time.Time) *Poller {
	if now != nil {
		p.now = now
	}
	return p
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Score the roster once on boot so /ready flips quickly.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RunOnce performs a single fetch-and-score cycle synchronously.
func (p *Poller) RunOnce(ctx context.Context) error {
	return p.fetchOnce(ctx)
}

func (p *Poller) fetchOnce(ctx context.Context) error {
	p.cycleMu.Lock()
	defer p.cycleMu.Unlock()

	start := time.Now()
	p.recordAttempt(start)

	results, err := p.cycle(ctx)
	p.metrics.RecordPollerCycle(time.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "poller cycle failed", err, logging.FieldDurationMS, time.Since(start).Milliseconds())
		p.recordFailure(err, start)
		return err
	}

	high := 0
	for _, a := range results {
		if a.Risk.RiskLevel == assessments.RiskHigh {
			high++
		}
	}
	p.recordSuccess(start, len(results), high)
	logging.Info(p.logger, "poller rescored roster",
		logging.FieldCount, len(results),
		"high_risk", high,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) cycle(ctx context.Context) ([]assessments.PlayerAssessment, error) {
	if p.roster == nil {
		return nil, errNoRoster
	}
	items, err := p.provider.FetchPlayers(ctx)
	if err != nil {
		return nil, err
	}
	p.roster.ReplacePlayers(items)
	if p.assessor == nil {
		return nil, nil
	}
	return p.assessor.AssessAll(ctx, items, p.now())
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, scored, high int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.PlayersScored = scored
	p.status.HighRiskPlayers = high
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.RosterProvider {
	return p.provider
}
