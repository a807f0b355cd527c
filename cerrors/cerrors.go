// Package cerrors contains the closed diagnostic taxonomy shared by every
// stage of the compiler.  Each stage fails hard on its first violation and
// wraps the underlying cause with a Kind so the driver can report it without
// needing to track source positions.
package cerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which class of diagnostic a failure belongs to.
type Kind string

// The closed set of diagnostic kinds.  No other value is ever produced.
const (
	IO                 Kind = "IO"
	BadToken           Kind = "BadToken"
	MissingToken       Kind = "MissingToken"
	BadIntegerLiteral  Kind = "BadInteger"
	UnknownExpression  Kind = "UnknownExpression"
	TrailingInput      Kind = "TrailingInput"
	UnexpectedAstShape Kind = "UnexpectedAstShape"
	StackTooEarly      Kind = "StackTooEarly"
	UnexpectedAsmShape Kind = "UnexpectedAssemblyShape"
)

// Error pairs a Kind with a human-readable detail, and carries a stack
// trace (via github.com/pkg/errors) for -D diagnostics.  The trace is a
// debugging aid; it is never surfaced as a source position.
type Error struct {
	Kind   Kind
	Detail string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Unwrap lets errors.Is/errors.As see through to any wrapped cause.
func (e *Error) Unwrap() error { return e.cause }

// New builds a fresh diagnostic of the given kind, with a stack trace
// attached at the call site.
func New(kind Kind, format string, args ...interface{}) error {
	return errors.WithStack(&Error{
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	})
}

// Wrap attaches a Kind to an existing error, preserving it as the cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) error {
	if cause == nil {
		return nil
	}
	return errors.WithStack(&Error{
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
		cause:  cause,
	})
}

// As reports whether err (or something it wraps) is a *Error, and if so
// returns it.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the Kind of err, or "" if err is not (and does not wrap)
// a *Error.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return ""
}
