package autoclicker

type ErrorKind int

const (
	ConnectionFailure ErrorKind = iota + 1
	NoRootScreen
	PointerQueryFailure
)

func (k ErrorKind) String() string {
	switch k {
	case ConnectionFailure:
		return "connection failure"
	case NoRootScreen:
		return "no root screen available"
	case PointerQueryFailure:
		return "pointer query failure"
	default:
		return "unknown failure"
	}
}

// Error is a click loop failure. Err holds the display service error, if any.
type Error struct {
	Kind ErrorKind
	Err  error
}

var (
	ErrConnection   = &Error{Kind: ConnectionFailure}
	ErrNoRootScreen = &Error{Kind: NoRootScreen}
	ErrPointerQuery = &Error{Kind: PointerQueryFailure}
)

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrConnection)
// works regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
