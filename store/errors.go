package store

import (
	stderrors "errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Error kinds returned by every store operation. Callers are expected to
// classify failures with errors.Is and map them to their own boundary
// (HTTP status codes, CLI exit codes, ...); the store itself never decides
// how a failure is presented.
var (
	// ErrNotFound: the referenced id does not resolve to a live record.
	ErrNotFound = stderrors.New("record not found")

	// ErrInvalidArgument: malformed input, rejected before touching storage.
	ErrInvalidArgument = stderrors.New("invalid argument")

	// ErrConflict: a uniqueness constraint (email, username, restaurant
	// name) would be violated.
	ErrConflict = stderrors.New("conflict")

	// ErrStorageUnavailable: the backing store could not complete the
	// operation. Always propagated, never swallowed.
	ErrStorageUnavailable = stderrors.New("storage unavailable")
)

// storageErr translates a driver-level failure into one of the store's error
// kinds, annotated with the failing operation.
func storageErr(err error, op string) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(ErrNotFound, op)
	}
	return errors.Wrapf(ErrStorageUnavailable, "%s: %v", op, err)
}

// IsNotFound reports whether err is of the ErrNotFound kind.
func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound)
}
