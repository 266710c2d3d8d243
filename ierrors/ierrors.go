// ierrors package provides a thin facade over "github.com/cockroachdb/errors".
// It gives all packages of this module one place to create, annotate and inspect errors,
// and keeps the stack traces and error marks of the underlying library available.
//
//nolint:goerr113
package ierrors

import (
	"github.com/cockroachdb/errors"
)

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(text string) error {
	return errors.New(text)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error. The %w verb wraps the given error.
func Errorf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target, and if one is found, sets
// target to that error value and returns true. Otherwise, it returns false.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Wrap prepends an error with a message and wraps it into a new error.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf prepends an error with a message format specifier and arguments
// and wraps it into a new error.
func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

// WithMessagef annotates the error with a message format specifier and arguments
// without attaching an additional stacktrace.
func WithMessagef(err error, format string, args ...any) error {
	return errors.WithMessagef(err, format, args...)
}

// WithStack adds a stacktrace to the error.
func WithStack(err error) error {
	return errors.WithStack(err)
}
