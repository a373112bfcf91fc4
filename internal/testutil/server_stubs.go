package testutil

import (
	"context"
	"net/http"
	"sync"

	"github.com/preston-bernstein/injury-risk-service/internal/poller"
)

// StubRescorer stands in for the roster rescorer: it satisfies the server's
// poller lifecycle and the admin rescore endpoint.
type StubRescorer struct {
	mu         sync.Mutex
	startCalls int
	stopCalls  int
	runCalls   int

	StopErr   error
	RunErr    error
	StatusVal poller.Status
}

func (r *StubRescorer) Start(ctx context.Context) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.startCalls++
}

func (r *StubRescorer) Stop(ctx context.Context) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopCalls++
	return r.StopErr
}

// RunOnce records an on-demand rescore and returns RunErr.
func (r *StubRescorer) RunOnce(ctx context.Context) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runCalls++
	return r.RunErr
}

func (r *StubRescorer) Status() poller.Status {
	return r.StatusVal
}

// Calls reports how many times Start, Stop and RunOnce were invoked.
func (r *StubRescorer) Calls() (start, stop, run int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.startCalls, r.stopCalls, r.runCalls
}

// StubHTTPServer implements the server's httpServer. ListenErr is returned from
// ListenAndServe; use http.ErrServerClosed for a clean close.
type StubHTTPServer struct {
	mu            sync.Mutex
	listenCalls   int
	shutdownCalls int

	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listenCalls++
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shutdownCalls++
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}

// Calls reports how many times ListenAndServe and Shutdown were invoked.
func (s *StubHTTPServer) Calls() (listen, shutdown int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenCalls, s.shutdownCalls
}

// BlockingHTTPServer holds Shutdown until Unblock is closed or the context ends.
type BlockingHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ShutdownCalls int
	Unblock       chan struct{}
}

func (b *BlockingHTTPServer) ListenAndServe() error {
	return nil
}

func (b *BlockingHTTPServer) Shutdown(ctx context.Context) error {
	b.ShutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.Unblock:
		return nil
	}
}

func (b *BlockingHTTPServer) Addr() string {
	return b.AddrVal
}

func (b *BlockingHTTPServer) Handler() http.Handler {
	return b.HandlerVal
}
