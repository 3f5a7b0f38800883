package wpm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	KindShapeMismatch        ErrorKind = "shape_mismatch"
	KindDuplicateAlternative ErrorKind = "duplicate_alternative"
	KindWeightSumInvalid     ErrorKind = "weight_sum_invalid"
	KindWeightOutOfRange     ErrorKind = "weight_out_of_range"
	KindNonPositiveValue     ErrorKind = "non_positive_value"
)

var (
	ErrShapeMismatch        = errors.New("shape mismatch")
	ErrDuplicateAlternative = errors.New("duplicate alternative")
	ErrWeightSumInvalid     = errors.New("criterion weights must sum to 100%")
	ErrWeightOutOfRange     = errors.New("criterion weight out of range")
	ErrNonPositiveValue     = errors.New("criterion value must be positive")
)

var kindSentinels = map[ErrorKind]error{
	KindShapeMismatch:        ErrShapeMismatch,
	KindDuplicateAlternative: ErrDuplicateAlternative,
	KindWeightSumInvalid:     ErrWeightSumInvalid,
	KindWeightOutOfRange:     ErrWeightOutOfRange,
	KindNonPositiveValue:     ErrNonPositiveValue,
}

// ValidationError reports invalid input. Alternative and Criterion are set when
// the failure is attributable to one of them; Criterion is 1-based.
type ValidationError struct {
	Kind        ErrorKind
	Alternative string
	Criterion   int
	Message     string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return kindSentinels[e.Kind]
}

// AsValidationError extracts a *ValidationError from err, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func shapeError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: KindShapeMismatch, Message: "shape mismatch: " + fmt.Sprintf(format, args...)}
}
