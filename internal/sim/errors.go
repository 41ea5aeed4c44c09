// Package sim holds the building blocks shared by the frame-driven
// simulations: validation errors, the injectable random source, sampling
// ranges and RGBA colors. It has no knowledge of scenes or rendering.
package sim

import (
	"errors"
	"fmt"
	"math"
)

// ValidationError reports a configuration rejected at construction time.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validation error codes.
const (
	CodeInvertedRange = "INVERTED_RANGE"
	CodeOutOfRange    = "OUT_OF_RANGE"
	CodeNotFinite     = "NOT_FINITE"
	CodeMissing       = "MISSING"
)

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// Invalid builds a ValidationError with CodeOutOfRange.
func Invalid(field, format string, args ...any) error {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf(format, args...),
	}
}

// CheckFinite returns a ValidationError if any value is NaN or infinite.
func CheckFinite(field string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ValidationError{
				Field:   field,
				Code:    CodeNotFinite,
				Message: fmt.Sprintf("value %v is not finite", v),
			}
		}
	}
	return nil
}
