package pipe

import (
	"context"

	"github.com/ib-77/ropipe/pkg/rop"
	"github.com/ib-77/ropipe/pkg/rop/solo"
)

// Deferred is a pipe whose value is a future. Its operators never block: each
// one schedules a continuation on the carried future and returns a new
// Deferred pipe for the flattened outcome. A rejection of the carried future
// skips every step, a step that panics rejects the resulting future.
type Deferred[T any] struct {
	value *rop.Future[T]
}

func (p Deferred[T]) Value() rop.Of[T] {
	return p.future()
}

func (p Deferred[T]) Future() *rop.Future[T] {
	return p.future()
}

func (p Deferred[T]) Deferred() bool {
	return true
}

func (p Deferred[T]) Await(ctx context.Context) (rop.Result[T], error) {
	return p.future().Await(ctx)
}

func (p Deferred[T]) CoalesceError(fn func(err error) rop.Of[T]) Pipe[T] {
	return then(p, func(r rop.Result[T]) rop.Of[T] {
		return solo.CoalesceError(r, fn)
	})
}

func (p Deferred[T]) CoalesceNullish(fn func() rop.Of[T]) Pipe[T] {
	return then(p, func(r rop.Result[T]) rop.Of[T] {
		return solo.CoalesceNullish(r, fn)
	})
}

func (p Deferred[T]) Tee(fn func(r rop.Result[T])) Pipe[T] {
	return then(p, func(r rop.Result[T]) rop.Of[T] {
		return solo.Tee(r, fn)
	})
}

func (p Deferred[T]) sealed() {}

// future treats the zero Deferred as carrying an empty value, as rop.Then does
// for a nil future.
func (p Deferred[T]) future() *rop.Future[T] {
	if p.value == nil {
		return rop.Resolved(rop.Empty[T]())
	}
	return p.value
}

func then[T, U any](p Deferred[T], step func(r rop.Result[T]) rop.Of[U]) Deferred[U] {
	return Deferred[U]{value: rop.Then(p.future(), step)}
}
