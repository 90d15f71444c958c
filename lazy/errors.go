package lazy

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

var (
	// ErrSizeMismatch is returned when a bounded operand of an expression
	// does not span the evaluation target's index range.
	ErrSizeMismatch = errors.New("lazy: operand size mismatch")

	// ErrUnsupportedOp is returned when an expression uses an operator the
	// element operation table does not provide.
	ErrUnsupportedOp = errors.New("lazy: unsupported element operation")

	// ErrEmptyExpr is returned when a nil or zero-value expression reaches
	// an evaluation entry point.
	ErrEmptyExpr = errors.New("lazy: empty expression")

	// ErrUnboundedExpr is returned by Materialize when no operand of the
	// expression has a length, so there is no range to evaluate over.
	ErrUnboundedExpr = errors.New("lazy: unbounded expression")
)

func sizeMismatchErr(name string, got, want int) error {
	if name == "" {
		return errors.Wrapf(ErrSizeMismatch, "len %d, want %d", got, want)
	}
	return errors.Wrapf(ErrSizeMismatch, "container %q: len %d, want %d", name, got, want)
}

func unsupportedOpErr[E any](op Op) error {
	return errors.Wrapf(ErrUnsupportedOp, "%s on %s", op, elemTypeName[E]())
}

func elemTypeName[E any]() string {
	return reflect.TypeOf((*E)(nil)).Elem().String()
}
