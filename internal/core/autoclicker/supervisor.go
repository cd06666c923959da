package autoclicker

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Budget is a run duration in ticks. Zero means unbounded.
type Budget uint64

// ParseBudget reads the first positional argument as a number of seconds.
// A missing or malformed value selects unbounded mode.
func ParseBudget(args []string) Budget {
	if len(args) == 0 {
		return 0
	}
	n, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, 64)
	if err != nil {
		return 0
	}
	return Budget(n)
}

func (b Budget) Unbounded() bool {
	return b == 0
}

// Supervisor runs a click loop and decides when it must stop.
type Supervisor struct {
	cfg      Config
	loop     *ClickLoop
	budget   Budget
	signal   *Signal
	reporter Reporter
	logger   Logger
}

func NewSupervisor(cfg Config, loop *ClickLoop, budget Budget, reporter Reporter, logger Logger) (*Supervisor, error) {
	if loop == nil {
		return nil, fmt.Errorf("click loop is nil")
	}
	if reporter == nil {
		return nil, fmt.Errorf("reporter is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	if cfg.Tick <= 0 {
		return nil, fmt.Errorf("tick must be > 0")
	}
	if cfg.ClickDelay <= 0 {
		return nil, fmt.Errorf("click delay must be > 0")
	}
	return &Supervisor{
		cfg:      cfg,
		loop:     loop,
		budget:   budget,
		signal:   NewSignal(),
		reporter: reporter,
		logger:   logger,
	}, nil
}

// Signal returns the stop flag shared with the click loop.
func (s *Supervisor) Signal() *Signal {
	return s.signal
}

// Run starts the click loop, waits for the budget to run out, the loop to
// stop itself or ctx to be cancelled, then stops the loop and waits for it
// to return. No click is injected after Run returns.
func (s *Supervisor) Run(ctx context.Context) {
	doneCh := make(chan struct{})
	go func() {
		defer close(doneCh)
		total, cause, err := s.loop.Run(s.signal)
		if err != nil {
			s.reporter.Failed(err)
			return
		}
		s.reporter.Finished(total, cause)
	}()

	if s.budget.Unbounded() {
		s.logger.Info("Running until the pointer moves")
		s.waitUnbounded(ctx)
	} else {
		s.logger.Info("Running with budget", "seconds", uint64(s.budget))
		s.waitBudget(ctx)
	}

	s.signal.Stop()
	<-doneCh
}

func (s *Supervisor) waitBudget(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Tick)
	defer ticker.Stop()

	remaining := s.budget
	for remaining > 0 && !s.signal.Stopped() {
		select {
		case <-ticker.C:
			remaining--
		case <-s.signal.Done():
			s.logger.Info("Click loop stopped", "remaining", uint64(remaining))
			return
		case <-ctx.Done():
			s.logger.Info("Interrupted", "remaining", uint64(remaining))
			return
		}
	}
	if remaining == 0 {
		s.logger.Info("Budget exhausted")
	}
}

func (s *Supervisor) waitUnbounded(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.ClickDelay)
	defer ticker.Stop()

	for !s.signal.Stopped() {
		select {
		case <-ticker.C:
		case <-ctx.Done():
			s.logger.Info("Interrupted")
			return
		}
	}
	s.logger.Info("Click loop stopped")
}
