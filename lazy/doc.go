// Package lazy provides loop-fused elementwise expressions over indexable
// containers.
//
// Express-ive Go wraps any sized, random-access container so that
// arithmetic, bitwise, relational, and logical operators over whole
// containers compose without computing anything. Operators build small
// immutable nodes; the work happens in one pass when the expression is
// assigned into a destination.
//
// # Why lazy?
//
// Eager elementwise operators allocate a full intermediate container per
// operator application: a + b + c builds one temporary for a+b and another
// for the final sum. Here a.Add(b).Add(c) builds two nodes and zero
// containers; dst.Assign(...) then walks indices once, evaluating
// (a[i]+b[i])+c[i] straight into dst[i]. Chains of k operators over n
// elements cost exactly k*n element operations and no intermediate
// storage, whatever k is.
//
// # The two abstractions
//
// Container is the lazy wrapper: a non-owning view pairing an Indexable
// with the Ops table defining its element semantics. Node is one binary
// expression step. Both satisfy Expr, as do broadcast constants from Const
// and any caller-supplied implementation, so operands mix freely.
//
// Evaluation entries live on Container: Assign, the nine compound forms
// (AddAssign through ShrAssign), and package-level Materialize for
// expressions without a destination yet. Compound entries accept Const
// operands for scalar broadcast, and run the element type's in-place form
// through Ptr when the wrapped container is Addressable.
//
// # Element semantics are pluggable
//
// An Ops table is a plain struct of function fields; leave a field nil and
// the operator is unsupported for that element type, reported as
// ErrUnsupportedOp the moment a chain requests it. IntOps, FloatOps,
// StringOps, BoolOps, DecimalOps, and DateOps cover the usual element
// types; Lift2 and Lift3 escape the fixed operator set entirely by lifting
// pure functions into nodes.
//
// # Laziness has edges
//
// Expressions are views. Mutating an operand between builds and
// evaluations changes results, which is also what makes re-evaluating a
// standing expression over fresh data useful. A subexpression reached by
// several indices is re-evaluated per index, not cached, so keep element
// operations pure. Nothing here is safe for concurrent use with writers;
// build once and evaluate from many goroutines only over storage nothing
// mutates.
//
// Example:
//
//	prices := lazy.WrapFloats([]float64{9.5, 12.0, 7.25})
//	taxed := lazy.WrapFloats(make([]float64, 3))
//
//	if err := taxed.Assign(prices.Mul(lazy.Const(1.21))); err != nil {
//	    // defective or mis-sized expression; nothing was written
//	}
//	_ = taxed.AddAssign(prices.Div(lazy.Const(100.0))) // per-unit fee
package lazy
