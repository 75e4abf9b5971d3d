package syntax

import "fmt"

// ParseError is raised by the Lexer or Parser. It carries the
// code-point offset into the source pattern at which the problem was
// detected, the way a position-aware diagnostic should, rather than
// just a bare message string.
type ParseError struct {
	Pos     int
	Pattern string
	Msg     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("regex parse error at position %d in %q: %s", e.Pos, e.Pattern, e.Msg)
}

func newParseError(pattern string, pos int, format string, args ...interface{}) *ParseError {
	return &ParseError{Pos: pos, Pattern: pattern, Msg: fmt.Sprintf(format, args...)}
}
