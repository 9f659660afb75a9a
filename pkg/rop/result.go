package rop

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFailure is carried by Fail when it is given a nil error.
	ErrNilFailure = errors.New("rop: failure with nil error")
	// ErrRejected is the rejection reason of a future rejected with a nil error.
	ErrRejected = errors.New("rop: future rejected")
)

// Result is the value carried through a pipe. It is either a success holding a
// value, a failure holding an error, or empty.
type Result[T any] struct {
	result    T
	err       error
	hasResult bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		hasResult: true,
	}
}

func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Result[T]{
		err: err,
	}
}

func Empty[T any]() Result[T] {
	return Result[T]{}
}

// ValueOf classifies a plain value: nil pointers and interfaces are empty,
// non-nil errors are failures, everything else is a success.
func ValueOf[T any](v T) Result[T] {
	if IsNil(v) {
		return Empty[T]()
	}
	if err, ok := any(v).(error); ok {
		return Fail[T](err)
	}
	return Success(v)
}

// FromTuple converts a (value, error) pair.
func FromTuple[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return ValueOf(v)
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}

// OrElse returns the value of a success and def otherwise.
func (r Result[T]) OrElse(def T) T {
	if r.IsSuccess() {
		return r.result
	}
	return def
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// IsEmpty reports an absent value: nothing was set, or the value is a nil
// pointer or interface. A failure is never empty.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && (!r.hasResult || IsNil(r.result))
}

func (r Result[T]) IsSuccess() bool {
	return !r.IsFailure() && !r.IsEmpty()
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) String() string {
	switch {
	case r.IsFailure():
		return "Fail(" + r.err.Error() + ")"
	case r.IsEmpty():
		return "Empty"
	default:
		return fmt.Sprintf("Success(%v)", r.result)
	}
}

func (r Result[T]) future() *Future[T] {
	return Resolved(r)
}
