// Package solo contains single-value, synchronous step kernels that operate
// on rop.Result. Each kernel makes the branch decision of one pipe operator;
// the immediate pipe calls it directly and the deferred pipe calls it inside
// a continuation, so both variants share the same short-circuit rules.
//
// Highlights:
// - And: apply a step to any input
// - AndOk/CoalesceError: skip or recover failures
// - AndMaybe/CoalesceNullish: skip or replace empty values
// - Map/Try: transform successful values, Try turns (Out, error) into a Result
// - Tee: side effect without changing the input
// - Finally: reduce to a concrete value via success/failure/empty handlers
//
// Kernels never recover panics raised by the supplied functions.
package solo
