package rop

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
)

var errForwardCycle = errors.New("rop: future forwarded into a cycle")

// Future is a placeholder for a Result that becomes available later. A future
// settles exactly once, either resolved with a Result or rejected with an
// error, and may be awaited any number of times from any goroutine. It never
// resolves to another future.
type Future[T any] struct {
	id      uuid.UUID
	done    chan struct{}
	claimed atomic.Bool
	forward atomic.Pointer[Future[T]]
	result  Result[T]
	err     error
}

// Promise is the producer side of a Future.
type Promise[T any] struct {
	f *Future[T]
}

// NewPromise creates a Promise and the Future it settles.
func NewPromise[T any]() (Promise[T], *Future[T]) {
	f := &Future[T]{
		id:   uuid.New(),
		done: make(chan struct{}),
	}
	return Promise[T]{f: f}, f
}

// Resolved returns a future that is already resolved with r.
func Resolved[T any](r Result[T]) *Future[T] {
	p, f := NewPromise[T]()
	p.Fulfill(r)
	return f
}

// Rejected returns a future that is already rejected with err.
func Rejected[T any](err error) *Future[T] {
	p, f := NewPromise[T]()
	p.Reject(err)
	return f
}

// Async runs fn on a new goroutine. A future returned by fn is flattened, a
// panic in fn rejects the returned future with a *PanicError.
func Async[T any](fn func() Of[T]) *Future[T] {
	p, f := NewPromise[T]()
	go p.run(fn)
	return f
}

// Then schedules fn to run once f resolves and returns the future of its
// outcome. If f is rejected, fn is skipped and the rejection is propagated.
func Then[T, U any](f *Future[T], fn func(Result[T]) Of[U]) *Future[U] {
	if f == nil {
		f = Resolved(Empty[T]())
	}

	p, next := NewPromise[U]()
	go func() {
		<-f.done
		if f.err != nil {
			p.Reject(f.err)
			return
		}
		p.run(func() Of[U] {
			return fn(f.result)
		})
	}()
	return next
}

// Fulfill settles the future with the outcome of; a future outcome is
// followed until it settles. It returns false if the future was already
// settled or claimed by an earlier call.
func (p Promise[T]) Fulfill(of Of[T]) bool {
	if !p.f.claimed.CompareAndSwap(false, true) {
		return false
	}
	p.f.follow(of)
	return true
}

// Reject settles the future with a rejection. A nil err is replaced by
// ErrRejected.
func (p Promise[T]) Reject(err error) bool {
	if !p.f.claimed.CompareAndSwap(false, true) {
		return false
	}
	if err == nil {
		err = ErrRejected
	}
	p.f.complete(Result[T]{}, err)
	return true
}

func (p Promise[T]) run(fn func() Of[T]) {
	defer func() {
		if v := recover(); v != nil {
			err := newPanicError(v)
			log := Logger()
			log.Debug().
				Str("future_id", p.f.id.String()).
				Err(err).
				Msg("continuation panicked, rejecting future")
			p.Reject(err)
		}
	}()
	p.Fulfill(fn())
}

func (f *Future[T]) follow(of Of[T]) {
	switch v := of.(type) {
	case Result[T]:
		f.complete(v, nil)
		return
	case *Future[T]:
		if v == nil {
			break
		}
		select {
		case <-v.done:
			f.complete(v.result, v.err)
			return
		default:
		}
		if f.closesCycle(v) {
			f.complete(Result[T]{}, errForwardCycle)
			return
		}
		go func() {
			<-v.done
			f.complete(v.result, v.err)
		}()
		return
	}
	f.complete(Empty[T](), nil)
}

// closesCycle records that f waits for v and reports whether v, directly or
// through the futures it waits for, waits for f. Of two futures forwarded to
// each other concurrently at least one sees the other's record.
func (f *Future[T]) closesCycle(v *Future[T]) bool {
	f.forward.Store(v)
	seen := map[*Future[T]]struct{}{}
	for cur := v; cur != nil; cur = cur.forward.Load() {
		if cur == f {
			return true
		}
		if _, ok := seen[cur]; ok {
			return false
		}
		seen[cur] = struct{}{}
	}
	return false
}

func (f *Future[T]) complete(r Result[T], err error) {
	f.result, f.err = r, err
	close(f.done)
}

func (f *Future[T]) future() *Future[T] {
	return f
}

// ID identifies the future in log records.
func (f *Future[T]) ID() uuid.UUID {
	return f.id
}

// Done is closed once the future is settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx is done. The returned error is
// the rejection reason, or the context error if the wait was abandoned. An
// abandoned wait does not cancel the computation.
func (f *Future[T]) Await(ctx context.Context) (Result[T], error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		select {
		case <-f.done:
			return f.result, f.err
		default:
		}
		return Result[T]{}, ctx.Err()
	}
}

// Wait blocks until the future settles.
func (f *Future[T]) Wait() (Result[T], error) {
	<-f.done
	return f.result, f.err
}
