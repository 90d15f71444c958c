package lazy

import (
	"github.com/cockroachdb/errors"
)

// Evaluation entries. Each is a single pass over the target's index range:
// the expression root is evaluated once per index, straight into the target
// slot, with no intermediate container between operators.
//
// Every entry validates before the loop, in order: sticky composition
// defects on the operand, operator support for the entry itself, operand
// sizes (unless the container was wrapped with UncheckedSizes). A failed
// validation returns with zero slots mutated.
//
// A target that also appears as an operand of the expression is fine: each
// index is fully read before its single write, so a.Assign(a.Add(a)) and
// a.AddAssign(a) behave like the equivalent handwritten loop.

// Assign evaluates e into the container: slot[i] = e(i) for every index.
// An unbounded e (only broadcast constants) fills every slot.
func (c *Container[E]) Assign(e Expr[E]) error {
	if err := operandErr(e); err != nil {
		return c.rejected("=", err)
	}
	if !c.unchecked {
		if err := checkOperand(e, c.col.Len()); err != nil {
			return c.rejected("=", err)
		}
	}
	n := c.col.Len()
	for i := 0; i < n; i++ {
		c.col.SetAt(i, e.At(i))
	}
	return nil
}

// AddAssign evaluates e and combines it into the container elementwise:
// slot[i] += e(i). With e a Const this is the scalar broadcast form.
func (c *Container[E]) AddAssign(e Expr[E]) error { return c.compoundAssign(OpAdd, e) }

// SubAssign combines with slot[i] -= e(i).
func (c *Container[E]) SubAssign(e Expr[E]) error { return c.compoundAssign(OpSub, e) }

// MulAssign combines with slot[i] *= e(i).
func (c *Container[E]) MulAssign(e Expr[E]) error { return c.compoundAssign(OpMul, e) }

// DivAssign combines with slot[i] /= e(i).
func (c *Container[E]) DivAssign(e Expr[E]) error { return c.compoundAssign(OpDiv, e) }

// OrAssign combines with slot[i] |= e(i).
func (c *Container[E]) OrAssign(e Expr[E]) error { return c.compoundAssign(OpOr, e) }

// AndAssign combines with slot[i] &= e(i).
func (c *Container[E]) AndAssign(e Expr[E]) error { return c.compoundAssign(OpAnd, e) }

// XorAssign combines with slot[i] ^= e(i).
func (c *Container[E]) XorAssign(e Expr[E]) error { return c.compoundAssign(OpXor, e) }

// ShlAssign combines with slot[i] <<= e(i).
func (c *Container[E]) ShlAssign(e Expr[E]) error { return c.compoundAssign(OpShl, e) }

// ShrAssign combines with slot[i] >>= e(i).
func (c *Container[E]) ShrAssign(e Expr[E]) error { return c.compoundAssign(OpShr, e) }

func (c *Container[E]) compoundAssign(op Op, e Expr[E]) error {
	entry := op.String() + "="
	if err := operandErr(e); err != nil {
		return c.rejected(entry, err)
	}
	comp := c.ops.compoundFor(op)
	if comp == nil {
		return c.rejected(entry, unsupportedOpErr[E](op))
	}
	if !c.unchecked {
		if err := checkOperand(e, c.col.Len()); err != nil {
			return c.rejected(entry, err)
		}
	}
	n := c.col.Len()
	if addr, ok := c.col.(Addressable[E]); ok {
		for i := 0; i < n; i++ {
			comp(addr.Ptr(i), e.At(i))
		}
		return nil
	}
	for i := 0; i < n; i++ {
		v := c.col.At(i)
		comp(&v, e.At(i))
		c.col.SetAt(i, v)
	}
	return nil
}

// Materialize evaluates e into a freshly allocated slice, one pass over
// e's own span. It is the entry for expression results that have no
// destination container yet. Operand sizes are always validated here;
// there is no target config to opt out through.
func Materialize[R any](e Expr[R]) ([]R, error) {
	if err := operandErr(e); err != nil {
		return nil, err
	}
	n := e.Len()
	if n < 0 {
		return nil, errors.Wrap(ErrUnboundedExpr, "no bounded operand to take a length from")
	}
	if err := checkOperand(e, n); err != nil {
		return nil, err
	}
	out := make([]R, n)
	for i := range out {
		out[i] = e.At(i)
	}
	return out, nil
}
