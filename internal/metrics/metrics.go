package metrics

import (
	"sync"
	"time"
)

type assessmentStats struct {
	byLevel      map[string]int
	total        int
	lastOverall  float64
	lastDuration time.Duration
}

type pollerStats struct {
	cycles  int
	errors  int
	lastRun time.Duration
}

// Recorder captures lightweight, in-memory metrics about scoring and roster refreshes,
// and forwards to OpenTelemetry instruments when telemetry is enabled.
type Recorder struct {
	mu          sync.Mutex
	assessments assessmentStats
	poller      pollerStats
	rateLimited int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		assessments: assessmentStats{byLevel: make(map[string]int)},
		otel:        otel,
	}
}

// RecordAssessment counts one scored player. source names the caller (roster, adhoc).
func (r *Recorder) RecordAssessment(source, level string, overall float64, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.assessments.byLevel[level]++
	r.assessments.total++
	r.assessments.lastOverall = overall
	r.assessments.lastDuration = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAssessment(source, level, overall, duration)
	}
}

// RecordPollerCycle tracks roster refresh cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.poller.cycles++
	r.poller.lastRun = duration
	if err != nil {
		r.poller.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPoller(duration, err)
	}
}

// RecordRateLimited counts a request rejected by the rate limiter.
func (r *Recorder) RecordRateLimited(path string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.rateLimited++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimited(path)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a point-in-time copy of the recorder's counters.
type Snapshot struct {
	Assessments         int
	AssessmentsByLevel  map[string]int
	LastOverallRisk     float64
	LastScoringDuration time.Duration
	PollerCycles        int
	PollerErrors        int
	LastPollerDuration  time.Duration
	RateLimitedRequests int
}

// Snapshot returns a copy of the current counters.
func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{AssessmentsByLevel: map[string]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	byLevel := make(map[string]int, len(r.assessments.byLevel))
	for k, v := range r.assessments.byLevel {
		byLevel[k] = v
	}
	return Snapshot{
		Assessments:         r.assessments.total,
		AssessmentsByLevel:  byLevel,
		LastOverallRisk:     r.assessments.lastOverall,
		LastScoringDuration: r.assessments.lastDuration,
		PollerCycles:        r.poller.cycles,
		PollerErrors:        r.poller.errors,
		LastPollerDuration:  r.poller.lastRun,
		RateLimitedRequests: r.rateLimited,
	}
}

// Assessments returns how many players were scored at the given level.
func (r *Recorder) Assessments(level string) int {
	return r.Snapshot().AssessmentsByLevel[level]
}

// PollerErrors returns the number of failed roster refreshes.
func (r *Recorder) PollerErrors() int {
	return r.Snapshot().PollerErrors
}
