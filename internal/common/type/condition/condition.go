// Released under an MIT license. See LICENSE.

// Package condition provides the error type raised by the reader, evaluator and primitives.
package condition

import (
	"errors"
	"fmt"
)

// Kind identifies the cause of a condition.
type Kind int

// Condition kinds.
const (
	Syntax Kind = iota
	Incomplete
	Arity
	Type
	UnboundSymbol
	UndefinedFunction
	InvalidFunction
	Depth
	ResourceExhaustion
)

// String returns a human readable label for the kind k.
func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax error"
	case Incomplete:
		return "incomplete input"
	case Arity:
		return "arity error"
	case Type:
		return "type error"
	case UnboundSymbol:
		return "unbound symbol"
	case UndefinedFunction:
		return "undefined function"
	case InvalidFunction:
		return "invalid function"
	case Depth:
		return "recursion too deep"
	case ResourceExhaustion:
		return "heap exhausted"
	}

	return "unknown condition"
}

// T (condition) is an error with a kind.
type T struct {
	kind Kind
	text string
}

type condition = T

// New creates a condition of kind k. The message is formatted as with fmt.Sprintf.
func New(k Kind, format string, args ...interface{}) *condition {
	return &condition{
		kind: k,
		text: fmt.Sprintf(format, args...),
	}
}

// Error returns the text of the condition c.
func (c *condition) Error() string {
	return c.text
}

// Kind returns the kind of the condition c.
func (c *condition) Kind() Kind {
	return c.kind
}

// Is returns true if err is, or wraps, a condition of kind k.
func Is(err error, k Kind) bool {
	var c *condition
	if errors.As(err, &c) {
		return c.Kind() == k
	}

	return false
}

// IsSyntax returns true for both syntax errors and incomplete input.
func IsSyntax(err error) bool {
	return Is(err, Syntax) || Is(err, Incomplete)
}
