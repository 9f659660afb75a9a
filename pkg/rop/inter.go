package rop

// Of is the outcome of a transformation step: either a Result available now
// or a *Future that settles later. No other types implement it.
type Of[T any] interface {
	future() *Future[T]
}

// FutureOf lifts an outcome into a future. Results become already settled
// futures, a nil outcome becomes a settled empty result.
func FutureOf[T any](of Of[T]) *Future[T] {
	if IsNil(of) {
		return Resolved(Empty[T]())
	}
	return of.future()
}

// Settled reports whether the outcome is available without waiting.
func Settled[T any](of Of[T]) bool {
	f, ok := of.(*Future[T])
	if !ok || f == nil {
		return true
	}
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
