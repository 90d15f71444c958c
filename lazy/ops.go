package lazy

// Op identifies the element-level operator an expression node applies.
//
// The first nine tags are compound-capable: they have an in-place form and
// back the container compound-assignment entries. The remaining tags are
// predicates whose nodes produce bool elements.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpOr
	OpAnd
	OpXor
	OpShl
	OpShr
	OpLogicalAnd
	OpLogicalOr
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

// opLifted marks nodes built by the Lift family rather than an operator tag.
const opLifted Op = 0xFF

var opSymbols = map[Op]string{
	OpAdd:        "+",
	OpSub:        "-",
	OpMul:        "*",
	OpDiv:        "/",
	OpOr:         "|",
	OpAnd:        "&",
	OpXor:        "^",
	OpShl:        "<<",
	OpShr:        ">>",
	OpLogicalAnd: "&&",
	OpLogicalOr:  "||",
	OpEq:         "==",
	OpNe:         "!=",
	OpLt:         "<",
	OpLe:         "<=",
	OpGt:         ">",
	OpGe:         ">=",
	opLifted:     "lift",
}

// String returns the operator's symbol, e.g. "+" or "<<".
func (op Op) String() string {
	if s, ok := opSymbols[op]; ok {
		return s
	}
	return "op(?)"
}

// Ops defines how expressions operate on elements of type E. Every field is
// optional; an absent operator simply makes the corresponding tags
// unsupported for E, which surfaces as ErrUnsupportedOp when used.
//
// Two forms exist per arithmetic/bitwise operator. The out-of-place form
// builds a fresh element from two operands. The compound form mutates an
// element the evaluator already owns, which is what container compound
// assignment and temporary reuse inside fused loops run on. Tables normally
// provide one of the two; wrapping derives the missing form from the other.
//
// Derivation rules:
//   - compound from out-of-place: *dst = fn(*dst, v), and the reverse
//   - Ne from Eq (never Eq from Ne)
//   - nothing else: order predicates are independent, so IEEE NaN semantics
//     survive (!Lt(b, a) is not Le(a, b) for floats)
//
// Truthy is the element's bool conversion. It backs LogicalAnd/LogicalOr;
// element types without a meaningful truth value leave it nil and the
// logical tags stay unsupported.
type Ops[E any] struct {
	Add func(a, b E) E
	Sub func(a, b E) E
	Mul func(a, b E) E
	Div func(a, b E) E
	Or  func(a, b E) E
	And func(a, b E) E
	Xor func(a, b E) E
	Shl func(a, b E) E
	Shr func(a, b E) E

	AddAssign func(dst *E, v E)
	SubAssign func(dst *E, v E)
	MulAssign func(dst *E, v E)
	DivAssign func(dst *E, v E)
	OrAssign  func(dst *E, v E)
	AndAssign func(dst *E, v E)
	XorAssign func(dst *E, v E)
	ShlAssign func(dst *E, v E)
	ShrAssign func(dst *E, v E)

	Eq func(a, b E) bool
	Ne func(a, b E) bool
	Lt func(a, b E) bool
	Le func(a, b E) bool
	Gt func(a, b E) bool
	Ge func(a, b E) bool

	Truthy func(v E) bool
}

// normalized returns a filled-in copy of the table. The original is never
// mutated; containers keep the copy so later edits to the caller's table do
// not change expressions already built.
func (t *Ops[E]) normalized() *Ops[E] {
	cp := *t
	cp.fill()
	return &cp
}

func (t *Ops[E]) fill() {
	derive(&t.Add, &t.AddAssign)
	derive(&t.Sub, &t.SubAssign)
	derive(&t.Mul, &t.MulAssign)
	derive(&t.Div, &t.DivAssign)
	derive(&t.Or, &t.OrAssign)
	derive(&t.And, &t.AndAssign)
	derive(&t.Xor, &t.XorAssign)
	derive(&t.Shl, &t.ShlAssign)
	derive(&t.Shr, &t.ShrAssign)

	if t.Ne == nil && t.Eq != nil {
		eq := t.Eq
		t.Ne = func(a, b E) bool { return !eq(a, b) }
	}
}

// derive completes an out-of-place/compound operator pair from whichever
// form is present. After fill, each pair is either fully present or fully
// absent.
func derive[E any](out *func(a, b E) E, comp *func(dst *E, v E)) {
	switch {
	case *out != nil && *comp == nil:
		fn := *out
		*comp = func(dst *E, v E) { *dst = fn(*dst, v) }
	case *out == nil && *comp != nil:
		fn := *comp
		*out = func(a, b E) E {
			fn(&a, b)
			return a
		}
	}
}

func (t *Ops[E]) binaryFor(op Op) func(a, b E) E {
	if t == nil {
		return nil
	}
	switch op {
	case OpAdd:
		return t.Add
	case OpSub:
		return t.Sub
	case OpMul:
		return t.Mul
	case OpDiv:
		return t.Div
	case OpOr:
		return t.Or
	case OpAnd:
		return t.And
	case OpXor:
		return t.Xor
	case OpShl:
		return t.Shl
	case OpShr:
		return t.Shr
	}
	return nil
}

func (t *Ops[E]) compoundFor(op Op) func(dst *E, v E) {
	if t == nil {
		return nil
	}
	switch op {
	case OpAdd:
		return t.AddAssign
	case OpSub:
		return t.SubAssign
	case OpMul:
		return t.MulAssign
	case OpDiv:
		return t.DivAssign
	case OpOr:
		return t.OrAssign
	case OpAnd:
		return t.AndAssign
	case OpXor:
		return t.XorAssign
	case OpShl:
		return t.ShlAssign
	case OpShr:
		return t.ShrAssign
	}
	return nil
}

func (t *Ops[E]) predicateFor(op Op) func(a, b E) bool {
	if t == nil {
		return nil
	}
	switch op {
	case OpEq:
		return t.Eq
	case OpNe:
		return t.Ne
	case OpLt:
		return t.Lt
	case OpLe:
		return t.Le
	case OpGt:
		return t.Gt
	case OpGe:
		return t.Ge
	}
	return nil
}
