package autoclicker

import (
	"fmt"
	"time"
)

// ClickLoop clicks at the pointer location until the signal stops it or
// the pointer is moved away from where it started.
type ClickLoop struct {
	cfg       Config
	connector Connector
	logger    Logger
}

func NewClickLoop(cfg Config, connector Connector, logger Logger) (*ClickLoop, error) {
	if connector == nil {
		return nil, fmt.Errorf("connector is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	if cfg.ClickDelay <= 0 {
		return nil, fmt.Errorf("click delay must be > 0")
	}
	if cfg.StopThreshold <= 0 {
		return nil, fmt.Errorf("stop threshold must be > 0")
	}
	return &ClickLoop{cfg: cfg, connector: connector, logger: logger}, nil
}

// Run returns the number of clicks performed. On failure the count is
// discarded. The signal is always stopped when Run returns.
func (l *ClickLoop) Run(sig *Signal) (uint64, StopCause, error) {
	defer sig.Stop()

	display, err := l.connector.Connect()
	if err != nil {
		return 0, StopSignal, newError(ConnectionFailure, err)
	}
	defer func() {
		if err := display.Close(); err != nil {
			l.logger.Warn("Failed to close display connection", "err", err)
		}
	}()

	roots := display.Roots()
	if len(roots) == 0 {
		return 0, StopSignal, newError(NoRootScreen, nil)
	}
	root := roots[0]

	start, err := display.QueryPointer(root)
	if err != nil {
		return 0, StopSignal, newError(PointerQueryFailure, err)
	}
	l.logger.Debug("Pointer start", "x", start.X, "y", start.Y)

	var clicks uint64
	for !sig.Stopped() {
		clicks++
		if err := click(display, root); err != nil {
			l.logger.Warn("Click injection failed", "err", err)
		}

		l.wait(sig)

		pos, err := display.QueryPointer(root)
		if err != nil {
			return 0, StopSignal, newError(PointerQueryFailure, err)
		}
		if Moved(start, pos, l.cfg.StopThreshold) {
			l.logger.Debug("Pointer moved", "x", pos.X, "y", pos.Y)
			return clicks, StopMovement, nil
		}
	}
	return clicks, StopSignal, nil
}

// wait sleeps for one click delay, returning early once the signal stops.
func (l *ClickLoop) wait(sig *Signal) {
	timer := time.NewTimer(l.cfg.ClickDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-sig.Done():
	}
}

// click sends a press and a release, flushing after each so the server
// handles the press before the release is queued.
func click(display Display, root Window) error {
	if err := display.FakeButton(root, true); err != nil {
		return fmt.Errorf("button press: %w", err)
	}
	if err := display.Flush(); err != nil {
		return fmt.Errorf("flush press: %w", err)
	}
	if err := display.FakeButton(root, false); err != nil {
		return fmt.Errorf("button release: %w", err)
	}
	if err := display.Flush(); err != nil {
		return fmt.Errorf("flush release: %w", err)
	}
	return nil
}

// Moved reports whether pos is at least threshold away from start on
// either axis.
func Moved(start, pos Position, threshold int32) bool {
	dx := int32(pos.X) - int32(start.X)
	dy := int32(pos.Y) - int32(start.Y)
	return abs32(dx) >= threshold || abs32(dy) >= threshold
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
