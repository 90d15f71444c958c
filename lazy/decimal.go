package lazy

import (
	"github.com/govalues/decimal"
)

// DecimalOps is the table for exact-decimal elements. Add/Sub/Mul/Quo map
// to the four supported arithmetic tags; comparisons go through Cmp and
// Truthy is nonzero. Bitwise tags stay unsupported.
//
// decimal arithmetic reports range overflow as an error; here that panics,
// the same contract as decimal.MustNew. Elements produced by ordinary
// arithmetic on in-range inputs never hit it.
func DecimalOps() *Ops[decimal.Decimal] {
	mustDec := func(d decimal.Decimal, err error) decimal.Decimal {
		if err != nil {
			panic(err)
		}
		return d
	}
	return &Ops[decimal.Decimal]{
		Add:    func(a, b decimal.Decimal) decimal.Decimal { return mustDec(a.Add(b)) },
		Sub:    func(a, b decimal.Decimal) decimal.Decimal { return mustDec(a.Sub(b)) },
		Mul:    func(a, b decimal.Decimal) decimal.Decimal { return mustDec(a.Mul(b)) },
		Div:    func(a, b decimal.Decimal) decimal.Decimal { return mustDec(a.Quo(b)) },
		Eq:     func(a, b decimal.Decimal) bool { return a.Cmp(b) == 0 },
		Lt:     func(a, b decimal.Decimal) bool { return a.Cmp(b) < 0 },
		Le:     func(a, b decimal.Decimal) bool { return a.Cmp(b) <= 0 },
		Gt:     func(a, b decimal.Decimal) bool { return a.Cmp(b) > 0 },
		Ge:     func(a, b decimal.Decimal) bool { return a.Cmp(b) >= 0 },
		Truthy: func(v decimal.Decimal) bool { return !v.IsZero() },
	}
}
