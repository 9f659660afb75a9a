package solo

import (
	"github.com/ib-77/ropipe/pkg/rop"
)

// And applies onAny to the input regardless of its category.
func And[In, Out any](input rop.Result[In],
	onAny func(r rop.Result[In]) rop.Of[Out]) rop.Of[Out] {

	return onAny(input)
}

// AndOk applies onNotFailed unless the input is a failure, in which case the
// failure is carried over unchanged.
func AndOk[In, Out any](input rop.Result[In],
	onNotFailed func(r rop.Result[In]) rop.Of[Out]) rop.Of[Out] {

	if input.IsFailure() {
		return rop.Fail[Out](input.Err())
	}
	return onNotFailed(input)
}

// CoalesceError recovers a failure through onFailure; other inputs pass through.
func CoalesceError[T any](input rop.Result[T],
	onFailure func(err error) rop.Of[T]) rop.Of[T] {

	if input.IsFailure() {
		return onFailure(input.Err())
	}
	return input
}

// AndMaybe applies onPresent unless the input is empty, in which case the
// absence is carried over.
func AndMaybe[In, Out any](input rop.Result[In],
	onPresent func(r rop.Result[In]) rop.Of[Out]) rop.Of[Out] {

	if input.IsEmpty() {
		return rop.Empty[Out]()
	}
	return onPresent(input)
}

// CoalesceNullish replaces an empty input with the outcome of onEmpty.
func CoalesceNullish[T any](input rop.Result[T],
	onEmpty func() rop.Of[T]) rop.Of[T] {

	if input.IsEmpty() {
		return onEmpty()
	}
	return input
}

func Map[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out) rop.Of[Out] {

	if input.IsSuccess() {
		return rop.ValueOf(onSuccess(input.Result()))
	}
	return carry[In, Out](input)
}

func Try[In, Out any](input rop.Result[In],
	onTryExecute func(r In) (Out, error)) rop.Of[Out] {

	if input.IsSuccess() {
		return rop.FromTuple(onTryExecute(input.Result()))
	}
	return carry[In, Out](input)
}

func Tee[T any](input rop.Result[T],
	sideEffect func(r rop.Result[T])) rop.Of[T] {

	sideEffect(input)
	return input
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onFailure func(err error) Out,
	onEmpty func() Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	} else if input.IsFailure() {
		return onFailure(input.Err())
	} else {
		return onEmpty()
	}
}

// carry re-types a failure or an empty input.
func carry[In, Out any](input rop.Result[In]) rop.Result[Out] {
	if input.IsFailure() {
		return rop.Fail[Out](input.Err())
	}
	return rop.Empty[Out]()
}
