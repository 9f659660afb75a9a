package rop

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolved_AwaitTwice(t *testing.T) {
	t.Parallel()

	f := Resolved(Success(3))
	for i := 0; i < 2; i++ {
		r, err := f.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, r.Result())
	}
}

func TestRejected_NilBecomesErrRejected(t *testing.T) {
	t.Parallel()

	_, err := Rejected[int](nil).Wait()
	assert.ErrorIs(t, err, ErrRejected)
}

func TestPromise_FirstSettleWins(t *testing.T) {
	t.Parallel()

	p, f := NewPromise[int]()
	assert.True(t, p.Fulfill(Success(1)))
	assert.False(t, p.Fulfill(Success(2)))
	assert.False(t, p.Reject(errors.New("late")))

	r, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, 1, r.Result())
}

func TestPromise_FulfillWithFutureFlattens(t *testing.T) {
	t.Parallel()

	inner, innerF := NewPromise[int]()
	outer, outerF := NewPromise[int]()
	outer.Fulfill(innerF)

	select {
	case <-outerF.Done():
		t.Fatalf("outer future settled before the inner one")
	case <-time.After(10 * time.Millisecond):
	}

	inner.Fulfill(Success(42))
	r, err := outerF.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, r.Result())
}

func TestPromise_FulfillWithNilIsEmpty(t *testing.T) {
	t.Parallel()

	p, f := NewPromise[int]()
	p.Fulfill(nil)
	r, err := f.Wait()
	require.NoError(t, err)
	assert.True(t, r.IsEmpty())
}

func TestPromise_FulfillWithItselfRejects(t *testing.T) {
	t.Parallel()

	p, f := NewPromise[int]()
	p.Fulfill(f)
	_, err := f.Wait()
	assert.ErrorIs(t, err, errForwardCycle)
}

func TestPromise_ForwardingCycleRejects(t *testing.T) {
	t.Parallel()

	pa, fa := NewPromise[int]()
	pb, fb := NewPromise[int]()
	pc, fc := NewPromise[int]()
	pa.Fulfill(fb)
	pb.Fulfill(fc)
	pc.Fulfill(fa)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for _, f := range []*Future[int]{fa, fb, fc} {
		_, err := f.Await(ctx)
		assert.ErrorIs(t, err, errForwardCycle)
	}
}

func TestPromise_ConcurrentMutualForwardingSettles(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		pa, fa := NewPromise[int]()
		pb, fb := NewPromise[int]()
		wg := sync.WaitGroup{}
		wg.Add(2)
		go func() { defer wg.Done(); pa.Fulfill(fb) }()
		go func() { defer wg.Done(); pb.Fulfill(fa) }()
		wg.Wait()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		_, errA := fa.Await(ctx)
		_, errB := fb.Await(ctx)
		cancel()
		require.ErrorIs(t, errA, errForwardCycle)
		require.ErrorIs(t, errB, errForwardCycle)
	}
}

func TestPromise_ForwardingChainWithoutCycleResolves(t *testing.T) {
	t.Parallel()

	pa, fa := NewPromise[int]()
	pb, fb := NewPromise[int]()
	pc, fc := NewPromise[int]()
	pa.Fulfill(fb)
	pb.Fulfill(fc)
	pc.Fulfill(Success(9))

	r, err := fa.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, r.Result())
}

func TestAsync_PanicRejects(t *testing.T) {
	t.Parallel()

	f := Async(func() Of[int] {
		panic("boom")
	})
	r, err := f.Wait()
	require.Error(t, err)
	assert.True(t, IsPanic(err))
	v, ok := PanicValue(err)
	assert.True(t, ok)
	assert.Equal(t, "boom", v)
	assert.False(t, r.IsFailure(), "a rejection must not surface as a failure result")
}

func TestThen_RunsAfterResolution(t *testing.T) {
	t.Parallel()

	p, f := NewPromise[int]()
	next := Then(f, func(r Result[int]) Of[string] {
		return Success(r.String())
	})
	assert.False(t, Settled[string](next))

	p.Fulfill(Success(7))
	r, err := next.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Success(7)", r.Result())
}

func TestThen_FlattensNestedFutures(t *testing.T) {
	t.Parallel()

	f := Then(Resolved(Success(1)), func(r Result[int]) Of[int] {
		return Then(Resolved(r), func(r Result[int]) Of[int] {
			return Async(func() Of[int] {
				return Success(r.Result() + 1)
			})
		})
	})

	r, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, 2, r.Result())
}

func TestThen_PropagatesRejection(t *testing.T) {
	t.Parallel()

	reason := errors.New("rejected")
	called := false
	f := Then(Rejected[int](reason), func(r Result[int]) Of[int] {
		called = true
		return r
	})

	_, err := f.Wait()
	assert.ErrorIs(t, err, reason)
	assert.False(t, called)
}

func TestThen_NilFutureIsEmpty(t *testing.T) {
	t.Parallel()

	f := Then(nil, func(r Result[int]) Of[bool] {
		return Success(r.IsEmpty())
	})
	r, err := f.Wait()
	require.NoError(t, err)
	assert.True(t, r.Result())
}

func TestAwait_ContextDone(t *testing.T) {
	t.Parallel()

	_, f := NewPromise[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.True(t, IsCancellationError(err))
}

func TestFuture_ConcurrentAwaiters(t *testing.T) {
	t.Parallel()

	p, f := NewPromise[int]()
	wg := sync.WaitGroup{}
	results := make([]int, 16)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, _ := f.Wait()
			results[i] = r.Result()
		}()
	}

	p.Fulfill(Success(5))
	wg.Wait()
	for _, v := range results {
		assert.Equal(t, 5, v)
	}
}

func TestFutureOf_AndSettled(t *testing.T) {
	t.Parallel()

	r, err := FutureOf[int](Success(1)).Wait()
	require.NoError(t, err)
	assert.Equal(t, 1, r.Result())

	r, err = FutureOf[int](nil).Wait()
	require.NoError(t, err)
	assert.True(t, r.IsEmpty())

	assert.True(t, Settled[int](Success(1)))
	assert.True(t, Settled[int](Resolved(Success(1))))
	_, pending := NewPromise[int]()
	assert.False(t, Settled[int](pending))
	assert.NotEqual(t, pending.ID(), Resolved(Empty[int]()).ID())
}

func TestSetLogger_PanicIsLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(zerolog.New(buf).Level(zerolog.DebugLevel))
	defer SetLogger(zerolog.Nop())

	f := Async(func() Of[int] { panic("logged") })
	_, err := f.Wait()
	require.Error(t, err)

	assert.Contains(t, buf.String(), f.ID().String())
	assert.Contains(t, buf.String(), "continuation panicked")
}
