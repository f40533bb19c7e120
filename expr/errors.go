package expr

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol is returned when an evaluated Variable or BuiltinCall
// name resolves to nothing in the Context or the caller's assignment.
var ErrUnknownSymbol = errors.New("expr: unknown symbol")

// ErrArityMismatch is returned when a BuiltinCall is evaluated with the
// wrong number of arguments for the name it resolved to.
var ErrArityMismatch = errors.New("expr: arity mismatch")

// ErrNonDifferentiable is returned by Diff when it reaches a builtin with
// no registered derivative rule.
var ErrNonDifferentiable = errors.New("expr: not differentiable")

// ParseError reports a syntax error at a byte offset into the source text.
type ParseError struct {
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expr: parse error at %d: %s", e.Pos, e.Message)
}

// ErrParse is the sentinel every *ParseError wraps, so callers can match
// with errors.Is(err, expr.ErrParse) without caring about position.
var ErrParse = errors.New("expr: parse error")

func (e *ParseError) Unwrap() error { return ErrParse }

// parseErrorf builds a *ParseError at the given position.
func parseErrorf(pos int, format string, args ...interface{}) error {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
