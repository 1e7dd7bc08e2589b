package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// StatePruner is the storage capability the sweeper depends on.
type StatePruner interface {
	PruneStale(ctx context.Context, olderThan time.Duration) (int, error)
}

// SessionSweeperConfig holds sweeper configuration
type SessionSweeperConfig struct {
	TTL      time.Duration // How long session state is retained
	Interval time.Duration // How often to sweep
}

// SessionSweeper periodically removes session state past its retention
// window. Abandoned quiz sessions otherwise accumulate forever.
type SessionSweeper struct {
	store    StatePruner
	ttl      time.Duration
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewSessionSweeper creates a new session sweeper job
func NewSessionSweeper(store StatePruner, cfg SessionSweeperConfig) *SessionSweeper {
	if cfg.TTL == 0 {
		cfg.TTL = 30 * 24 * time.Hour
	}
	if cfg.Interval == 0 {
		cfg.Interval = 1 * time.Hour
	}
	return &SessionSweeper{
		store:    store,
		ttl:      cfg.TTL,
		interval: cfg.Interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the sweeper job
func (s *SessionSweeper) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	slog.Info("session sweeper started",
		slog.Duration("ttl", s.ttl),
		slog.Duration("interval", s.interval),
	)
}

// Stop gracefully stops the sweeper job
func (s *SessionSweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	slog.Info("session sweeper stopped")
}

// run is the main loop
func (s *SessionSweeper) run() {
	defer s.wg.Done()

	// Sweep immediately on start
	s.RunOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.RunOnce()
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single sweep
func (s *SessionSweeper) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pruned, err := s.store.PruneStale(ctx, s.ttl)
	if err != nil {
		slog.Error("session sweep failed", slog.Any("error", err))
		return
	}

	if pruned > 0 {
		slog.Info("session sweep complete", slog.Int("pruned", pruned))
	}
}
