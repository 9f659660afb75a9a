package rop

import (
	"fmt"

	"github.com/pkg/errors"
)

// PanicError is the rejection reason of a future whose step panicked.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("rop: step panicked: %v", e.Value)
}

func newPanicError(v any) error {
	return errors.WithStack(&PanicError{Value: v})
}

// IsPanic reports whether err was produced by a panicking step.
func IsPanic(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

// PanicValue returns the recovered value of a panicking step, if err carries one.
func PanicValue(err error) (any, bool) {
	var pe *PanicError
	if !errors.As(err, &pe) {
		return nil, false
	}
	return pe.Value, true
}
