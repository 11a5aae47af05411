package errors

import (
	"errors"
	"fmt"
)

// Report whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Find the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WithOperation records the failing operation on a guard error, or wraps
// a plain error as an I/O failure of that operation.
func WithOperation(err error, operation string) error {
	if err == nil {
		return nil
	}

	var guardErr *GuardError
	if As(err, &guardErr) {
		guardErr.Operation = operation
		return guardErr
	}

	return ErrIO(operation, err)
}
