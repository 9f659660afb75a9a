// Package rop defines the values that flow through a pipe: Result, a tagged
// success/failure/empty value, and Future, a Result that settles later.
//
// Both implement Of, the outcome of a transformation step. A step decides per
// call whether it answers now (a Result) or later (a *Future); package pipe
// classifies the outcome and promotes a chain to deferred evaluation when
// needed.
//
// Failures are ordinary values and travel inside Results. Rejections are the
// second error channel: a future is rejected when its producer rejects it or
// when a step panics while computing it (see PanicError). Rejections are
// never converted into failures.
package rop
