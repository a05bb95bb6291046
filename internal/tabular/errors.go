package tabular

import (
	"errors"
	"fmt"
)

// InvalidInputError marks input the quality core refuses to compute on:
// ragged views, negative counts, shares outside [0,1]. Degenerate but
// well-formed data (zero rows, zero columns) is never an error.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// Invalidf builds an InvalidInputError with a formatted reason.
func Invalidf(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
