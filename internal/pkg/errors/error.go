package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict: resource already exists")
	ErrInternal     = errors.New("internal server error")

	// Modification workflow errors. ErrLookupCreation and ErrTransaction
	// abort the whole vehicle transaction; ErrInsurancePartial happens after
	// the vehicle side already committed and marks a partial success, not a
	// full failure.
	ErrLookupCreation   = errors.New("catalog lookup/creation failed")
	ErrTransaction      = errors.New("transaction failure")
	ErrInsurancePartial = errors.New("insurance upsert failed after vehicle commit")
)

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps err under a sentinel so callers can classify it with
// errors.Is while keeping the original cause in the chain.
func Wrapf(sentinel, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// MessageOrDefault returns err.Error() or a fallback message if err is nil.
func MessageOrDefault(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}
