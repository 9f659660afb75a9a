package pipe

import (
	"context"

	"github.com/ib-77/ropipe/pkg/rop"
	"github.com/ib-77/ropipe/pkg/rop/solo"
)

// And applies fn to the carried value whatever its category.
func And[T, U any](p Pipe[T], fn func(r rop.Result[T]) rop.Of[U]) Pipe[U] {
	return bind(p, func(r rop.Result[T]) rop.Of[U] {
		return solo.And(r, fn)
	})
}

// AndOk applies fn unless the carried value is a failure. A failure skips fn
// and is carried over with the same error, so failures accumulate along the
// chain while the value type changes.
func AndOk[T, U any](p Pipe[T], fn func(r rop.Result[T]) rop.Of[U]) Pipe[U] {
	return bind(p, func(r rop.Result[T]) rop.Of[U] {
		return solo.AndOk(r, fn)
	})
}

// AndMaybe applies fn unless the carried value is empty. An empty value skips
// fn and is carried over. Failures are not empty and reach fn.
func AndMaybe[T, U any](p Pipe[T], fn func(r rop.Result[T]) rop.Of[U]) Pipe[U] {
	return bind(p, func(r rop.Result[T]) rop.Of[U] {
		return solo.AndMaybe(r, fn)
	})
}

// Map transforms a successful value; failures and empty values pass through.
func Map[T, U any](p Pipe[T], fn func(v T) U) Pipe[U] {
	return bind(p, func(r rop.Result[T]) rop.Of[U] {
		return solo.Map(r, fn)
	})
}

// Try calls fn with a successful value and carries a returned error as a
// failure. It is the explicit way to turn error returns into carried values.
func Try[T, U any](p Pipe[T], fn func(v T) (U, error)) Pipe[U] {
	return bind(p, func(r rop.Result[T]) rop.Of[U] {
		return solo.Try(r, fn)
	})
}

// Finally waits for the carried value and reduces it with the handler of its
// category. The error is a rejection or the error of ctx; no handler runs then.
func Finally[T, U any](ctx context.Context, p Pipe[T],
	onSuccess func(v T) U,
	onFailure func(err error) U,
	onEmpty func() U) (U, error) {

	r, err := p.Await(ctx)
	if err != nil {
		var zero U
		return zero, err
	}
	return solo.Finally(r, onSuccess, onFailure, onEmpty), nil
}

func bind[T, U any](p Pipe[T], step func(r rop.Result[T]) rop.Of[U]) Pipe[U] {
	switch p := p.(type) {
	case Immediate[T]:
		return promote(step(p.value))
	case Deferred[T]:
		return then(p, step)
	default:
		return promote(step(rop.Empty[T]()))
	}
}
