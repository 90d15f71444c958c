package lazy

import (
	"golang.org/x/exp/constraints"
)

// Built-in element operation tables. Each constructor returns a fresh table
// the caller may still override before wrapping; Wrap normalizes a copy.
//
// Element semantics are Go's own: integer division by zero panics, float
// division yields an infinity, shifting by a negative count panics. The
// tables add nothing the element type does not do outside the library.

// IntOps is the full table for integer element types: the nine
// arithmetic/bitwise operators, all comparisons, and a nonzero Truthy.
func IntOps[E constraints.Integer]() *Ops[E] {
	return &Ops[E]{
		Add:    func(a, b E) E { return a + b },
		Sub:    func(a, b E) E { return a - b },
		Mul:    func(a, b E) E { return a * b },
		Div:    func(a, b E) E { return a / b },
		Or:     func(a, b E) E { return a | b },
		And:    func(a, b E) E { return a & b },
		Xor:    func(a, b E) E { return a ^ b },
		Shl:    func(a, b E) E { return a << b },
		Shr:    func(a, b E) E { return a >> b },
		Eq:     func(a, b E) bool { return a == b },
		Lt:     func(a, b E) bool { return a < b },
		Le:     func(a, b E) bool { return a <= b },
		Gt:     func(a, b E) bool { return a > b },
		Ge:     func(a, b E) bool { return a >= b },
		Truthy: func(v E) bool { return v != 0 },
	}
}

// FloatOps is the table for float element types: add/sub/mul/div,
// comparisons, and a nonzero Truthy. Bitwise tags stay unsupported.
// Comparisons keep IEEE semantics; with a NaN operand, Eq and the order
// predicates are false and the derived Ne is true.
func FloatOps[E constraints.Float]() *Ops[E] {
	return &Ops[E]{
		Add:    func(a, b E) E { return a + b },
		Sub:    func(a, b E) E { return a - b },
		Mul:    func(a, b E) E { return a * b },
		Div:    func(a, b E) E { return a / b },
		Eq:     func(a, b E) bool { return a == b },
		Lt:     func(a, b E) bool { return a < b },
		Le:     func(a, b E) bool { return a <= b },
		Gt:     func(a, b E) bool { return a > b },
		Ge:     func(a, b E) bool { return a >= b },
		Truthy: func(v E) bool { return v != 0 },
	}
}

// StringOps is the table for string element types: Add is concatenation,
// with a compound form appending onto the destination, plus lexicographic
// comparisons. Strings have no truth value, so the logical tags stay
// unsupported, as does everything arithmetic beyond Add.
func StringOps[E ~string]() *Ops[E] {
	return &Ops[E]{
		Add:       func(a, b E) E { return a + b },
		AddAssign: func(dst *E, v E) { *dst += v },
		Eq:        func(a, b E) bool { return a == b },
		Lt:        func(a, b E) bool { return a < b },
		Le:        func(a, b E) bool { return a <= b },
		Gt:        func(a, b E) bool { return a > b },
		Ge:        func(a, b E) bool { return a >= b },
	}
}

// BoolOps is the table for bool elements: Or, And, Xor (inequality), Eq,
// and an identity Truthy. Comparison nodes attach this table to their
// results, so predicate output composes into logical chains and assigns
// into bool containers without further wiring.
func BoolOps() *Ops[bool] {
	return &Ops[bool]{
		Or:     func(a, b bool) bool { return a || b },
		And:    func(a, b bool) bool { return a && b },
		Xor:    func(a, b bool) bool { return a != b },
		Eq:     func(a, b bool) bool { return a == b },
		Truthy: func(v bool) bool { return v },
	}
}

// boolTable backs every predicate node. Shared and immutable after init.
var boolTable = BoolOps().normalized()
