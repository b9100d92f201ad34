// Package measurement converts plot dimensions entered in buhol into metric
// area and LuWang capacity.
//
// Two failure taxonomies are kept apart:
//   - Input validation (ValidateField, ValidateShape) rejects out-of-range or
//     non-finite values per field, before any calculation runs.
//   - Geometric infeasibility (a three-sides triangle that breaks the triangle
//     inequality) is not an error; the calculator returns the zero result and
//     TriangleAdvisory supplies the message to show.
package measurement

import (
	"errors"
	"fmt"
	"math"

	"github.com/hapkiduki/luwang-go/internal/domain/valueobject"
)

// MaxBuhol is the largest accepted value for a single dimension.
const MaxBuhol = 1000

// Validation errors define the reasons a field value is rejected.
var (
	ErrNegativeValue  = errors.New("value cannot be negative")
	ErrNotFinite      = errors.New("value must be a finite number")
	ErrExceedsMaximum = errors.New("value exceeds maximum")
)

// FieldError is a validation failure bound to a single input field.
type FieldError struct {
	// Label is the field label shown to the user.
	Label string

	// Message is the user-facing message. It always names the field.
	Message string

	err error
}

// Error implements error.
func (e *FieldError) Error() string {
	return e.Message
}

// Unwrap returns the validation sentinel behind the failure.
func (e *FieldError) Unwrap() error {
	return e.err
}

// ValidateField checks a raw numeric field before it reaches the calculator.
// Zero is accepted as "not yet entered". Integrality is not required.
//
// Parameters:
//   - value: the raw field value in buhol
//   - label: the field label used in the message
//
// Returns:
//   - error: nil if acceptable, otherwise a *FieldError wrapping
//     ErrNotFinite, ErrNegativeValue or ErrExceedsMaximum
func ValidateField(value float64, label string) error {
	switch {
	case math.IsNaN(value) || math.IsInf(value, 0):
		return &FieldError{Label: label, Message: fmt.Sprintf("%s must be a valid number", label), err: ErrNotFinite}
	case value < 0:
		return &FieldError{Label: label, Message: fmt.Sprintf("%s cannot be negative", label), err: ErrNegativeValue}
	case value > MaxBuhol:
		return &FieldError{Label: label, Message: fmt.Sprintf("%s cannot exceed %d buhol", label, MaxBuhol), err: ErrExceedsMaximum}
	}
	return nil
}

// ValidationOutcome is the verdict for one field.
type ValidationOutcome struct {
	// Field is the dimension name (e.g., "side_a").
	Field string `json:"field"`

	// FieldLabel is the label shown next to the input.
	FieldLabel string `json:"field_label"`

	// ErrorMessage is empty when the field may be used in a calculation.
	ErrorMessage string `json:"error_message,omitempty"`
}

// Valid reports whether the field passed validation.
func (o ValidationOutcome) Valid() bool {
	return o.ErrorMessage == ""
}

// ValidateShape validates every dimension of a shape independently, so one
// bad field never hides the verdict on another.
//
// Parameters:
//   - shape: the shape whose dimensions are checked
//
// Returns:
//   - []ValidationOutcome: one outcome per dimension, in input order
func ValidateShape(shape valueobject.Shape) []ValidationOutcome {
	if shape == nil {
		return nil
	}

	dims := shape.Dimensions()
	outcomes := make([]ValidationOutcome, 0, len(dims))
	for _, d := range dims {
		outcome := ValidationOutcome{Field: d.Name, FieldLabel: d.Label}
		if err := ValidateField(d.ValueBuhol, d.Label); err != nil {
			outcome.ErrorMessage = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// HasErrors reports whether any outcome carries an error.
func HasErrors(outcomes []ValidationOutcome) bool {
	for _, o := range outcomes {
		if !o.Valid() {
			return true
		}
	}
	return false
}
