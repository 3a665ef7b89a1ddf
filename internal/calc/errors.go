// internal/calc/errors.go
package calc

import (
	"errors"
	"fmt"
)

// --- Sentinel errors ---

var (
	// ErrEndOfInput is returned when the scanner or parser runs out of text
	// before a production is complete.
	ErrEndOfInput = errors.New("Unexpected end of input")
	// ErrTokenNotMatched is returned when no production accepts the next token.
	// The offending token has been consumed so parsing can resume after it.
	ErrTokenNotMatched = errors.New("Token not matched")
	// ErrAssertionFailed signals an internal inconsistency in the scanner.
	ErrAssertionFailed = errors.New("Assertion failed")
	// ErrInvalidNode is returned when evaluating a node of an unknown type.
	ErrInvalidNode = errors.New("Invalid node")
)

// --- Typed errors ---

// UnboundVariableError is returned when an identifier has no binding in
// the evaluation context.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("No such variable: %s", e.Name)
}

// SyntaxError reports malformed input found by the scanner, such as an
// unsupported escape sequence.
type SyntaxError struct {
	Offset int // byte offset of the problem
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error at %d: %s", e.Offset, e.Msg)
}

// ParseFloatError wraps a failure to convert a numeric literal.
type ParseFloatError struct {
	Text string
	Err  error
}

func (e *ParseFloatError) Error() string {
	return fmt.Sprintf("Invalid number %q: %v", e.Text, e.Err)
}

func (e *ParseFloatError) Unwrap() error { return e.Err }

// Recoverable reports whether err only invalidates the current clause.
// Every error produced by this package is recoverable; anything else is not.
func Recoverable(err error) bool {
	var (
		unbound *UnboundVariableError
		syntax  *SyntaxError
		number  *ParseFloatError
	)
	switch {
	case errors.Is(err, ErrEndOfInput), errors.Is(err, ErrTokenNotMatched),
		errors.Is(err, ErrAssertionFailed), errors.Is(err, ErrInvalidNode):
		return true
	case errors.As(err, &unbound), errors.As(err, &syntax), errors.As(err, &number):
		return true
	}
	return false
}
