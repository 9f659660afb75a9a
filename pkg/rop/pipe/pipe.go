package pipe

import (
	"context"

	"github.com/ib-77/ropipe/pkg/rop"
)

// Pipe carries a single value through a chain of steps. It is implemented by
// Immediate, which holds a rop.Result, and Deferred, which holds a
// *rop.Future. Every operator returns a new Pipe and leaves the receiver
// unchanged.
type Pipe[T any] interface {
	// Value returns the carried value: a rop.Result for an immediate pipe,
	// the *rop.Future for a deferred one.
	Value() rop.Of[T]
	// Future returns the carried value as a future.
	Future() *rop.Future[T]
	// Deferred reports whether the carried value is a future.
	Deferred() bool
	// Await returns the carried value once it is available. The error is a
	// rejection of the carried future or the error of ctx.
	Await(ctx context.Context) (rop.Result[T], error)

	// CoalesceError recovers a failure through fn.
	CoalesceError(fn func(err error) rop.Of[T]) Pipe[T]
	// CoalesceNullish replaces an empty value with the outcome of fn.
	CoalesceNullish(fn func() rop.Of[T]) Pipe[T]
	// Tee calls fn with the carried value and keeps it.
	Tee(fn func(r rop.Result[T])) Pipe[T]

	sealed()
}

// Make starts an immediate pipe from a plain value, classified by
// rop.ValueOf. A future passed to Make is carried as a plain value; use From
// to start a deferred pipe from a future or any other step outcome.
func Make[T any](seed T) Pipe[T] {
	return Immediate[T]{value: rop.ValueOf(seed)}
}

// From starts a pipe from a step outcome: deferred for a future, immediate
// for anything else. Operators on an immediate pipe build their result
// through From, which is how a chain is promoted once a step answers with a
// future.
func From[T any](of rop.Of[T]) Pipe[T] {
	if isDeferred(of) {
		return Deferred[T]{value: of.(*rop.Future[T])}
	}
	r, ok := of.(rop.Result[T])
	if !ok {
		r = rop.Empty[T]()
	}
	return Immediate[T]{value: r}
}

// Async starts a deferred pipe whose value is computed by fn on a new
// goroutine.
func Async[T any](fn func() rop.Of[T]) Pipe[T] {
	return Deferred[T]{value: rop.Async(fn)}
}

// isDeferred is the classification rule: only a non-nil future is deferred.
func isDeferred[T any](of rop.Of[T]) bool {
	f, ok := of.(*rop.Future[T])
	return ok && f != nil
}

// promote builds the pipe for the outcome of an immediate step.
func promote[T any](of rop.Of[T]) Pipe[T] {
	next := From(of)
	if d, ok := next.(Deferred[T]); ok {
		if e := rop.Logger().Trace(); e.Enabled() {
			e.Str("future_id", d.value.ID().String()).Msg("pipe promoted to deferred")
		}
	}
	return next
}
