package pipe

import (
	"context"

	"github.com/ib-77/ropipe/pkg/rop"
	"github.com/ib-77/ropipe/pkg/rop/solo"
)

// Immediate is a pipe whose value is available now. Its operators run
// synchronously on the caller's goroutine; a panicking step is not recovered.
type Immediate[T any] struct {
	value rop.Result[T]
}

func (p Immediate[T]) Value() rop.Of[T] {
	return p.value
}

// Result returns the carried value.
func (p Immediate[T]) Result() rop.Result[T] {
	return p.value
}

func (p Immediate[T]) Future() *rop.Future[T] {
	return rop.Resolved(p.value)
}

func (p Immediate[T]) Deferred() bool {
	return false
}

func (p Immediate[T]) Await(_ context.Context) (rop.Result[T], error) {
	return p.value, nil
}

func (p Immediate[T]) CoalesceError(fn func(err error) rop.Of[T]) Pipe[T] {
	return promote(solo.CoalesceError(p.value, fn))
}

func (p Immediate[T]) CoalesceNullish(fn func() rop.Of[T]) Pipe[T] {
	return promote(solo.CoalesceNullish(p.value, fn))
}

func (p Immediate[T]) Tee(fn func(r rop.Result[T])) Pipe[T] {
	return promote(solo.Tee(p.value, fn))
}

func (p Immediate[T]) sealed() {}
