package ierrors

import (
	"github.com/cockroachdb/errors"
)

// AssertionFailedf creates an error that denotes a violated precondition, i.e. a programming
// error on the caller side instead of bad input data. If a reference error is given, it stays
// the cause of the result so that errors.Is(result, reference) holds for both the standard
// library and this package.
func AssertionFailedf(reference error, format string, args ...any) error {
	if reference == nil {
		return errors.AssertionFailedf(format, args...)
	}

	return errors.WithAssertionFailure(errors.Wrapf(reference, format, args...))
}

// IsAssertionFailure returns true if the error or any of its causes was created by AssertionFailedf.
func IsAssertionFailure(err error) bool {
	return errors.HasAssertionFailure(err)
}
