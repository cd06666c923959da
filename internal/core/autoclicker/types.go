package autoclicker

import "time"

const (
	DefaultClickDelay    = 300 * time.Millisecond
	DefaultStopThreshold = 30
	DefaultTick          = time.Second
)

// Window identifies a root window on the display server.
type Window uint32

// Position is a pointer location in root window coordinates.
type Position struct {
	X int16
	Y int16
}

type Config struct {
	// ClickDelay is the pause after each click. It is also the movement
	// sampling interval and the supervisor's poll interval.
	ClickDelay time.Duration
	// StopThreshold is the per-axis displacement that ends the loop.
	StopThreshold int32
	// Tick is one unit of the run budget.
	Tick time.Duration
}

func DefaultConfig() Config {
	return Config{
		ClickDelay:    DefaultClickDelay,
		StopThreshold: DefaultStopThreshold,
		Tick:          DefaultTick,
	}
}

// Connector opens a session with the display service.
type Connector interface {
	Connect() (Display, error)
}

// Display is a single connection to the display service. It is owned by
// one goroutine and is not safe for concurrent use.
type Display interface {
	Roots() []Window
	QueryPointer(root Window) (Position, error)
	// FakeButton queues a synthetic left button press or release at the
	// current pointer location.
	FakeButton(root Window, press bool) error
	// Flush blocks until the server has processed every queued request.
	Flush() error
	Close() error
}

type StopCause int

const (
	StopSignal StopCause = iota
	StopMovement
)

func (c StopCause) String() string {
	switch c {
	case StopMovement:
		return "movement"
	default:
		return "signal"
	}
}

// Reporter receives the outcome of a click loop. Exactly one method is
// called per run, from the click loop goroutine.
type Reporter interface {
	Finished(total uint64, cause StopCause)
	Failed(err error)
}

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
