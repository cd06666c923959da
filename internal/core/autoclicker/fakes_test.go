package autoclicker

import (
	"errors"
	"sync"
	"time"
)

type fakeConnector struct {
	display *recordingDisplay
	err     error
}

func (c *fakeConnector) Connect() (Display, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.display, nil
}

// recordingDisplay replays scripted pointer positions and records every
// injection and flush.
type recordingDisplay struct {
	mu        sync.Mutex
	roots     []Window
	positions []Position
	queries   int
	// queryErrAt fails the n-th pointer query (1-based). Zero never fails.
	queryErrAt int
	// onQuery runs before each query with its 1-based index.
	onQuery   func(n int)
	buttonErr error
	ops       []string
	closed    bool
}

func newRecordingDisplay(positions ...Position) *recordingDisplay {
	return &recordingDisplay{roots: []Window{0x100}, positions: positions}
}

func (d *recordingDisplay) Roots() []Window {
	return d.roots
}

func (d *recordingDisplay) QueryPointer(root Window) (Position, error) {
	d.mu.Lock()
	d.queries++
	n := d.queries
	hook := d.onQuery
	d.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	if d.queryErrAt == n {
		return Position{}, errors.New("bad window")
	}
	if len(d.positions) == 0 {
		return Position{}, nil
	}
	if n > len(d.positions) {
		return d.positions[len(d.positions)-1], nil
	}
	return d.positions[n-1], nil
}

func (d *recordingDisplay) FakeButton(root Window, press bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if press {
		d.ops = append(d.ops, "press")
	} else {
		d.ops = append(d.ops, "release")
	}
	return d.buttonErr
}

func (d *recordingDisplay) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ops = append(d.ops, "flush")
	return nil
}

func (d *recordingDisplay) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

func (d *recordingDisplay) snapshot() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.ops))
	copy(out, d.ops)
	return out
}

func (d *recordingDisplay) presses() int {
	n := 0
	for _, op := range d.snapshot() {
		if op == "press" {
			n++
		}
	}
	return n
}

func (d *recordingDisplay) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

type recordingReporter struct {
	mu       sync.Mutex
	total    uint64
	cause    StopCause
	err      error
	finished int
	failed   int
}

func (r *recordingReporter) Finished(total uint64, cause StopCause) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total = total
	r.cause = cause
	r.finished++
}

func (r *recordingReporter) Failed(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
	r.failed++
}

func testConfig() Config {
	return Config{
		ClickDelay:    2 * time.Millisecond,
		StopThreshold: DefaultStopThreshold,
		Tick:          10 * time.Millisecond,
	}
}
