package task

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// IdleSweeper removes sessions not updated within ttl.
type IdleSweeper interface {
	SweepIdle(ctx context.Context, ttl time.Duration) (int, error)
}

// SweeperConfig holds configuration for the session sweeper
type SweeperConfig struct {
	// TTL is how long a session may stay idle before it is removed
	TTL time.Duration

	// Interval defines how often to sweep
	// If zero, defaults to 10 minutes
	Interval time.Duration
}

// DefaultSweeperConfig returns a SweeperConfig with reasonable defaults
func DefaultSweeperConfig() SweeperConfig {
	return SweeperConfig{
		TTL:      24 * time.Hour,
		Interval: 10 * time.Minute,
	}
}

// Sweeper periodically evicts idle drill sessions
type Sweeper struct {
	target     IdleSweeper
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once
	config     SweeperConfig
	logger     *slog.Logger
}

// NewSweeper creates a new Sweeper
func NewSweeper(target IdleSweeper, config SweeperConfig, logger *slog.Logger) *Sweeper {
	defaults := DefaultSweeperConfig()
	if config.Interval <= 0 {
		config.Interval = defaults.Interval
	}
	if config.TTL <= 0 {
		config.TTL = defaults.TTL
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Sweeper{
		target:     target,
		ctx:        ctx,
		cancelFunc: cancel,
		config:     config,
		logger:     logger.With("component", "session_sweeper"),
	}
}

// Start begins sweeping in a background goroutine
func (s *Sweeper) Start() {
	s.wg.Add(1)
	go s.loop()

	s.logger.Info("session sweeper started",
		"ttl", s.config.TTL,
		"interval", s.config.Interval)
}

// Stop gracefully shuts down the sweeper and waits for an in-flight sweep.
// It is safe to call more than once.
func (s *Sweeper) Stop() {
	s.once.Do(func() {
		s.cancelFunc()
		s.wg.Wait()
		s.logger.Info("session sweeper stopped")
	})
}

// RunOnce performs a single sweep
func (s *Sweeper) RunOnce(ctx context.Context) (int, error) {
	removed, err := s.target.SweepIdle(ctx, s.config.TTL)
	if err != nil {
		s.logger.Error("failed to sweep idle sessions", "error", err)
		return 0, err
	}
	if removed > 0 {
		s.logger.Debug("swept idle sessions", "removed", removed)
	}
	return removed, nil
}

func (s *Sweeper) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return

		case <-ticker.C:
			// Errors are logged by RunOnce; the next tick retries
			_, _ = s.RunOnce(s.ctx)
		}
	}
}
