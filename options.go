package tnfa

import (
	"errors"
	"time"
)

// ReturnMode selects the shape of a capture's payload in a result:
// an (index, length) pair or the substring itself.
type ReturnMode int

const (
	ReturnIndex ReturnMode = iota
	ReturnBinary
)

// CaptureMode selects which capture keys a result exposes: every
// group, named groups only, none, or an explicit list. Key 0 (the
// whole input) is always present regardless of mode.
type CaptureMode int

const (
	CaptureAll CaptureMode = iota
	CaptureNamed
	CaptureNone
	CaptureList
)

// DefaultTimeout is the default per-call traversal budget.
const DefaultTimeout = time.Second

// Options is the closed option set accepted by Compile, Match, Search
// and Generate: a single record threaded through every public
// operation rather than a grab-bag of booleans per call.
type Options struct {
	// Dotall, if true, makes `.` match `\n`. Only consulted by Compile;
	// it shapes the graph, so changing it on a later Match/Search call
	// on an already-compiled handle has no effect.
	Dotall bool

	Return      ReturnMode
	Capture     CaptureMode
	CaptureKeys []string // consulted only when Capture == CaptureList

	Timeout  time.Duration
	Multiple Multiplicity
	Offset   int

	// GraphName, when non-empty, names the digraph Regexp.Graph
	// renders; the core itself never reads it.
	GraphName string
}

// Multiplicity selects whether a call returns the first accepting
// outcome or every distinct one.
type Multiplicity int

const (
	MultipleOne Multiplicity = iota
	MultipleAll
)

// DefaultOptions returns the default option record: dotall=false,
// return=index, capture=all,
// timeout=1000ms, multiple=one, offset=0, graph_name=nil.
func DefaultOptions() Options {
	return Options{
		Return:   ReturnIndex,
		Capture:  CaptureAll,
		Timeout:  DefaultTimeout,
		Multiple: MultipleOne,
	}
}

// Option errors, in short: "negative timeout/offset, offset
// past end of input, unknown multiple value. Raised before any
// traversal."
var (
	ErrNegativeTimeout = errors.New("tnfa: timeout must not be negative")
	ErrNegativeOffset  = errors.New("tnfa: offset must not be negative")
	ErrOffsetPastInput = errors.New("tnfa: offset is past the end of input")
	ErrUnknownMultiple = errors.New("tnfa: unknown multiple value")
)

func validateOptions(opts Options, inputLen int) error {
	if opts.Timeout < 0 {
		return ErrNegativeTimeout
	}
	if opts.Offset < 0 {
		return ErrNegativeOffset
	}
	if opts.Offset > inputLen {
		return ErrOffsetPastInput
	}
	if opts.Multiple != MultipleOne && opts.Multiple != MultipleAll {
		return ErrUnknownMultiple
	}
	return nil
}

func effectiveTimeout(d time.Duration) time.Duration {
	if d == 0 {
		return DefaultTimeout
	}
	return d
}
