package lazy

import (
	"github.com/rickb777/date/v2"
)

// DateOps is the table for calendar-date elements: comparisons only.
// A Date is a day count, so element comparison is integer comparison.
//
// No arithmetic tag is populated; summing two calendar dates means
// nothing, and date±duration is a different shape than the elementwise
// operators carry. Arithmetic on a date expression therefore surfaces
// ErrUnsupportedOp, which makes this the usual example of a deliberately
// partial table.
func DateOps() *Ops[date.Date] {
	return &Ops[date.Date]{
		Eq: func(a, b date.Date) bool { return a == b },
		Lt: func(a, b date.Date) bool { return a < b },
		Le: func(a, b date.Date) bool { return a <= b },
		Gt: func(a, b date.Date) bool { return a > b },
		Ge: func(a, b date.Date) bool { return a >= b },
	}
}
