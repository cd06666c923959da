package autoclicker

import (
	"sync"
	"sync/atomic"
)

// Signal is a one-way stop flag shared by the click loop and the
// supervisor. It starts running and can only move to stopped.
type Signal struct {
	stopped atomic.Bool
	once    sync.Once
	done    chan struct{}
}

func NewSignal() *Signal {
	return &Signal{done: make(chan struct{})}
}

// Stopped reports whether a stop has been requested.
func (s *Signal) Stopped() bool {
	return s.stopped.Load()
}

// Stop requests a stop. Safe to call multiple times and from any goroutine.
func (s *Signal) Stop() {
	s.stopped.Store(true)
	s.once.Do(func() { close(s.done) })
}

// Done is closed on the first Stop.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}
