// Package pipe composes transformation steps over a single value.
//
// A pipe is either Immediate, holding a rop.Result, or Deferred, holding a
// *rop.Future. Steps return rop.Of, so each step decides whether it answers
// now or later; the first step that answers with a future promotes the chain
// to Deferred and it stays Deferred from then on. Deferred steps run in chain
// order, each after the previous one resolved, and a step that returns a
// future is awaited transparently.
//
// Operators:
// - And: apply a step to any value
// - AndOk/CoalesceError: skip failures, or recover them
// - AndMaybe/CoalesceNullish: skip empty values, or replace them
// - Map/Try: work on plain successful values
// - Tee: side effects
// - Finally: collapse to a plain value
//
// Failures are values. A panicking step is never turned into a failure: it
// panics out of the operator call on an Immediate pipe and rejects the future
// of a Deferred pipe. Use Try or rop.FromTuple to convert errors explicitly.
//
//	total := pipe.AndOk(pipe.Make(order), func(r rop.Result[Order]) rop.Of[Price] {
//	    return rop.Async(func() rop.Of[Price] { return rop.FromTuple(quote(r.Result())) })
//	}).CoalesceError(func(err error) rop.Of[Price] {
//	    return rop.Success(fallbackPrice)
//	})
//	price, err := total.Await(ctx)
package pipe
