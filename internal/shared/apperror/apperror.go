// Package apperror defines the application-level error kinds shared
// across layers. The HTTP boundary is the only place that translates
// them into a wire format.
package apperror

import (
	"errors"
	"fmt"
)

// InvalidArgumentError represents a business-rule violation such as a
// missing user or a duplicate username. The boundary layer renders it
// as 400 Bad Request with the reason as the message. The service layer
// does not distinguish subtypes; the reason text carries the detail.
type InvalidArgumentError struct {
	Reason string
}

// Error returns the reason, satisfying the error interface.
func (e *InvalidArgumentError) Error() string {
	return e.Reason
}

// NewInvalidArgument creates a new InvalidArgumentError with a
// formatted reason.
func NewInvalidArgument(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidArgument reports whether err is (or wraps) an
// InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}
