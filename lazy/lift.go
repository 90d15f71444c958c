package lazy

// Lift2 turns a pure two-argument function into an expression node over its
// operands: At(i) is fn(a(i), b(i)), built lazily like any operator node.
// Operand element types are free, so lifted nodes cover elementwise
// combination beyond the fixed operator set, heterogeneous inputs
// included.
//
// The optional table gives the result type its own operators for further
// chaining; without one, only predicates and assignment entries apply to
// the lifted node. Panics if fn is nil or more than one table is passed.
func Lift2[A, B, R any](fn func(A, B) R, a Expr[A], b Expr[B], table ...*Ops[R]) *Node[R] {
	if fn == nil {
		panic("lazy: Lift2 requires a function")
	}
	t := normalizeTable(table)
	if err := operandErr(a); err != nil {
		return &Node[R]{op: opLifted, table: t, err: err}
	}
	if err := operandErr(b); err != nil {
		return &Node[R]{op: opLifted, table: t, err: err}
	}
	return &Node[R]{
		op:    opLifted,
		table: t,
		eval: func(i int) R {
			return fn(a.At(i), b.At(i))
		},
		span:  spanOf2(a, b),
		check: mergeCheck(a, b),
	}
}

// Lift3 is Lift2 for three operands: At(i) is fn(a(i), b(i), c(i)).
func Lift3[A, B, C, R any](fn func(A, B, C) R, a Expr[A], b Expr[B], c Expr[C], table ...*Ops[R]) *Node[R] {
	if fn == nil {
		panic("lazy: Lift3 requires a function")
	}
	t := normalizeTable(table)
	if err := operandErr(a); err != nil {
		return &Node[R]{op: opLifted, table: t, err: err}
	}
	if err := operandErr(b); err != nil {
		return &Node[R]{op: opLifted, table: t, err: err}
	}
	if err := operandErr(c); err != nil {
		return &Node[R]{op: opLifted, table: t, err: err}
	}
	span := spanOf2(a, b)
	if span < 0 {
		span = c.Len()
	}
	return &Node[R]{
		op:    opLifted,
		table: t,
		eval: func(i int) R {
			return fn(a.At(i), b.At(i), c.At(i))
		},
		span: span,
		check: func(want int) error {
			if err := checkOperand(a, want); err != nil {
				return err
			}
			if err := checkOperand(b, want); err != nil {
				return err
			}
			return checkOperand(c, want)
		},
	}
}

// normalizeTable flattens the optional trailing table into one value and
// normalizes it. Accepts either 0 or 1 tables. Panics if more are passed.
func normalizeTable[R any](table []*Ops[R]) *Ops[R] {
	switch len(table) {
	case 1:
		if table[0] == nil {
			return nil
		}
		return table[0].normalized()
	case 0:
		return nil
	default:
		panic("normalizeTable: only one or zero tables allowed")
	}
}
