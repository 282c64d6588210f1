package service

import "github.com/juju/errors"

// Failure kinds attached to errors with errors.WithType. Validation,
// not-found and not-implemented outcomes use the juju/errors built-ins
// (errors.NotValid, errors.NotFound, errors.NotImplemented).
const (
	ErrIO            = errors.ConstError("registry i/o error")
	ErrSerialization = errors.ConstError("registry serialization error")
	ErrSubprocess    = errors.ConstError("shell spawn error")
)

// IsUserFacing reports whether err is an outcome that should be printed as
// a plain message rather than treated as an operational failure.
func IsUserFacing(err error) bool {
	return errors.Is(err, errors.NotValid) ||
		errors.Is(err, errors.NotFound) ||
		errors.Is(err, errors.NotImplemented)
}
