package fp

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange is the cause of every failure on an element whose value
	// is not in [0, p).
	ErrOutOfRange = errors.New("field element out of range")

	// ErrSyntax is returned by SetString on malformed input.
	ErrSyntax = errors.New("invalid decimal field element")
)

// RangeError records the operation that received a non-canonical element.
// Arithmetic methods panic with a *RangeError; Validate returns one.
type RangeError struct {
	Op    string
	Value Element
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("fp: %s: %s: %s is not below the modulus %s",
		e.Op, ErrOutOfRange, e.Value.LimbString(), prime.LimbString())
}

// Cause returns ErrOutOfRange so errors.Cause unwraps to the sentinel.
func (e *RangeError) Cause() error { return ErrOutOfRange }

// Unwrap returns ErrOutOfRange so errors.Is matches the sentinel.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// mustBeValid aborts op when x is not a canonical field element.
func mustBeValid(op string, x *Element) {
	if !x.IsValid() {
		panic(&RangeError{Op: op, Value: *x})
	}
}
