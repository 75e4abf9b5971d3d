package nfa

import "fmt"

// ExecErrorKind classifies the fatal, non-result failures an
// Executor run can raise, in short: runtime protocol errors and
// timeouts are both fatal, as opposed to NoMatch/PartialSearch which
// are ordinary results.
type ExecErrorKind int

const (
	ErrProtocol ExecErrorKind = iota
	ErrTimeout
	ErrUngenerable
)

func (k ExecErrorKind) String() string {
	switch k {
	case ErrProtocol:
		return "protocol"
	case ErrTimeout:
		return "timeout"
	case ErrUngenerable:
		return "ungenerable"
	default:
		return "unknown"
	}
}

// ExecError is a fatal Executor failure. It is distinct from the
// ordinary NoMatch/PartialSearch results, which are not errors.
type ExecError struct {
	Kind ExecErrorKind
	Msg  string
}

func (e *ExecError) Error() string { return fmt.Sprintf("nfa: %s: %s", e.Kind, e.Msg) }

func protocolErrorf(format string, args ...interface{}) *ExecError {
	return &ExecError{Kind: ErrProtocol, Msg: fmt.Sprintf(format, args...)}
}
