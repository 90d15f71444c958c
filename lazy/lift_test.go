package lazy_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/express_ive_go/lazy"
	"github.com/stretchr/testify/assert"
)

func TestLift2_HeterogeneousOperands(t *testing.T) {
	names := lazy.WrapStrings([]string{"bolt", "nut"})
	counts := lazy.WrapInts([]int{12, 40})

	lines, err := lazy.Materialize(lazy.Lift2(
		func(name string, n int) string { return fmt.Sprintf("%dx %s", n, name) },
		names, counts,
	))
	assert.NoError(t, err)
	assert.Equal(t, []string{"12x bolt", "40x nut"}, lines)
}

func TestLift2_ChainsWithTable(t *testing.T) {
	base := lazy.WrapFloats([]float64{1, 2, 3})
	scale := lazy.WrapFloats([]float64{10, 10, 10})

	// the trailing table gives the lifted node operators of its own
	fused := lazy.Lift2(
		func(a, b float64) float64 { return a * b },
		base, scale,
		lazy.FloatOps[float64](),
	).Add(lazy.Const(0.5))

	out, err := lazy.Materialize(fused)
	assert.NoError(t, err)
	assert.Equal(t, []float64{10.5, 20.5, 30.5}, out)
}

func TestLift2_NoTableMeansNoOperators(t *testing.T) {
	a := lazy.WrapInts([]int{1})
	n := lazy.Lift2(func(x, y int) int { return x + y }, a, a)

	assert.NoError(t, n.Err())
	assert.ErrorIs(t, n.Add(a).Err(), lazy.ErrUnsupportedOp)
}

func TestLift3_CombinesThreeOperands(t *testing.T) {
	lo := lazy.WrapFloats([]float64{0, 0, 10})
	hi := lazy.WrapFloats([]float64{5, 1, 20})
	vals := lazy.WrapFloats([]float64{7, 0.5, 15})

	clamp := func(low, high, v float64) float64 {
		if v < low {
			return low
		}
		if v > high {
			return high
		}
		return v
	}
	out, err := lazy.Materialize(lazy.Lift3(clamp, lo, hi, vals))
	assert.NoError(t, err)
	assert.Equal(t, []float64{5, 0.5, 15}, out)
}

func TestLift_SizeMismatch(t *testing.T) {
	a := lazy.WrapInts([]int{1, 2, 3})
	short := lazy.WrapInts([]int{1})

	_, err := lazy.Materialize(lazy.Lift2(func(x, y int) int { return x + y }, a, short))
	assert.ErrorIs(t, err, lazy.ErrSizeMismatch)
}

func TestLift_PropagatesOperandDefects(t *testing.T) {
	s := lazy.WrapStrings([]string{"x"})
	bad := s.Mul(s) // strings have no *

	n := lazy.Lift2(func(a string, b string) int { return len(a) + len(b) }, s, bad)
	assert.ErrorIs(t, n.Err(), lazy.ErrUnsupportedOp)
}

func TestLift_PanicsOnNilFn(t *testing.T) {
	a := lazy.WrapInts([]int{1})
	assert.Panics(t, func() {
		lazy.Lift2[int, int, int](nil, a, a)
	})
}
