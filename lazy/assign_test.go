package lazy_test

import (
	"testing"

	"github.com/on-the-ground/express_ive_go/lazy"
	"github.com/stretchr/testify/assert"
)

func TestCompoundAssign_StringChain(t *testing.T) {
	adds, appends := 0, 0
	table := lazy.StringOps[string]()
	baseAdd := table.Add
	table.Add = func(a, b string) string {
		adds++
		return baseAdd(a, b)
	}
	baseAppend := table.AddAssign
	table.AddAssign = func(dst *string, v string) {
		appends++
		baseAppend(dst, v)
	}

	a := lazy.WrapSlice([]string{"x"}, table)
	b := lazy.WrapSlice([]string{"y"}, table)
	c := lazy.WrapSlice([]string{"z"}, table)
	d := lazy.WrapSlice([]string{"w"}, table)

	assert.NoError(t, d.AddAssign(a.Add(b).Add(c)))
	assert.Equal(t, "wxyz", d.At(0))

	// a+b builds one fresh value; chaining and the entry itself run the
	// in-place form on values already owned
	assert.Equal(t, 1, adds)
	assert.Equal(t, 2, appends)
}

func TestCompoundAssign_ScalarBroadcast(t *testing.T) {
	vals := []int{1, 2, 3, 4}
	c := lazy.WrapInts(vals)

	assert.NoError(t, c.AddAssign(lazy.Const(10)))
	assert.Equal(t, []int{11, 12, 13, 14}, vals)

	assert.NoError(t, c.ShlAssign(lazy.Const(1)))
	assert.Equal(t, []int{22, 24, 26, 28}, vals)
}

func TestCompoundAssign_AllEntries(t *testing.T) {
	cases := []struct {
		name  string
		apply func(c *lazy.Container[int], e lazy.Expr[int]) error
		elem  func(x, y int) int
	}{
		{"+=", (*lazy.Container[int]).AddAssign, func(x, y int) int { return x + y }},
		{"-=", (*lazy.Container[int]).SubAssign, func(x, y int) int { return x - y }},
		{"*=", (*lazy.Container[int]).MulAssign, func(x, y int) int { return x * y }},
		{"/=", (*lazy.Container[int]).DivAssign, func(x, y int) int { return x / y }},
		{"|=", (*lazy.Container[int]).OrAssign, func(x, y int) int { return x | y }},
		{"&=", (*lazy.Container[int]).AndAssign, func(x, y int) int { return x & y }},
		{"^=", (*lazy.Container[int]).XorAssign, func(x, y int) int { return x ^ y }},
		{"<<=", (*lazy.Container[int]).ShlAssign, func(x, y int) int { return x << y }},
		{">>=", (*lazy.Container[int]).ShrAssign, func(x, y int) int { return x >> y }},
	}

	src := []int{3, 2, 1}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vals := []int{96, 41, 7}
			want := make([]int, len(vals))
			for i := range vals {
				want[i] = tc.elem(vals[i], src[i])
			}

			c := lazy.WrapInts(vals)
			assert.NoError(t, tc.apply(c, lazy.WrapInts(src)))
			assert.Equal(t, want, vals)
		})
	}
}

func TestBinaryOps_MatchNaive(t *testing.T) {
	cases := []struct {
		name string
		expr func(a *lazy.Container[uint8], b lazy.Expr[uint8]) *lazy.Node[uint8]
		elem func(x, y uint8) uint8
	}{
		{"add", (*lazy.Container[uint8]).Add, func(x, y uint8) uint8 { return x + y }},
		{"sub", (*lazy.Container[uint8]).Sub, func(x, y uint8) uint8 { return x - y }},
		{"mul", (*lazy.Container[uint8]).Mul, func(x, y uint8) uint8 { return x * y }},
		{"div", (*lazy.Container[uint8]).Div, func(x, y uint8) uint8 { return x / y }},
		{"or", (*lazy.Container[uint8]).Or, func(x, y uint8) uint8 { return x | y }},
		{"and", (*lazy.Container[uint8]).And, func(x, y uint8) uint8 { return x & y }},
		{"xor", (*lazy.Container[uint8]).Xor, func(x, y uint8) uint8 { return x ^ y }},
		{"shl", (*lazy.Container[uint8]).Shl, func(x, y uint8) uint8 { return x << y }},
		{"shr", (*lazy.Container[uint8]).Shr, func(x, y uint8) uint8 { return x >> y }},
	}

	as := []uint8{0x0F, 0xF0, 9, 200}
	bs := []uint8{0x33, 0x0C, 2, 3}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := lazy.WrapInts(as)
			b := lazy.WrapInts(bs)
			dst := lazy.WrapInts(make([]uint8, len(as)))

			assert.NoError(t, dst.Assign(tc.expr(a, b)))
			for i := range as {
				assert.Equal(t, tc.elem(as[i], bs[i]), dst.At(i))
			}
		})
	}
}

func TestAssign_SizeMismatch_NothingWritten(t *testing.T) {
	a4 := lazy.WrapFloats([]float64{1, 2, 3, 4}, lazy.Config{Name: "a4"})
	b3 := lazy.WrapFloats([]float64{1, 2, 3}, lazy.Config{Name: "b3"})

	vals := []float64{-1, -1, -1, -1}
	dst := lazy.WrapFloats(vals)

	// mismatched operand buried one level down
	err := dst.Assign(a4.Add(a4).Add(b3))
	assert.ErrorIs(t, err, lazy.ErrSizeMismatch)
	assert.Contains(t, err.Error(), "b3")
	assert.Equal(t, []float64{-1, -1, -1, -1}, vals)

	err = dst.MulAssign(b3)
	assert.ErrorIs(t, err, lazy.ErrSizeMismatch)
	assert.Equal(t, []float64{-1, -1, -1, -1}, vals)
}

func TestAssign_UncheckedSizes(t *testing.T) {
	src := lazy.WrapFloats([]float64{1, 2, 3, 4, 5})

	checked := lazy.WrapFloats(make([]float64, 3))
	assert.ErrorIs(t, checked.Assign(src.Mul(lazy.Const(2.0))), lazy.ErrSizeMismatch)

	// opted out: the caller vouches that operands cover the target range
	loose := lazy.WrapFloats(make([]float64, 3), lazy.Config{UncheckedSizes: true})
	assert.NoError(t, loose.Assign(src.Mul(lazy.Const(2.0))))
	assert.Equal(t, []float64{2, 4, 6}, []float64{loose.At(0), loose.At(1), loose.At(2)})
}

func TestUnsupportedOp_StickyAndRejected(t *testing.T) {
	a := lazy.WrapStrings([]string{"x"})
	b := lazy.WrapStrings([]string{"y"})

	bad := a.Sub(b)
	assert.ErrorIs(t, bad.Err(), lazy.ErrUnsupportedOp)

	// the defect rides every later composition
	worse := bad.Add(a)
	assert.ErrorIs(t, worse.Err(), lazy.ErrUnsupportedOp)

	vals := []string{"keep"}
	dst := lazy.WrapSlice(vals, lazy.StringOps[string]())
	assert.ErrorIs(t, dst.Assign(worse), lazy.ErrUnsupportedOp)
	assert.Equal(t, "keep", vals[0])

	// entry-level support check, no node involved
	assert.ErrorIs(t, dst.XorAssign(a), lazy.ErrUnsupportedOp)
	assert.Equal(t, "keep", vals[0])
}

func TestMaterialize(t *testing.T) {
	a := lazy.WrapInts([]int{1, 2, 3})
	b := lazy.WrapInts([]int{4, 5, 6})

	out, err := lazy.Materialize(a.Mul(b))
	assert.NoError(t, err)
	assert.Equal(t, []int{4, 10, 18}, out)

	// a container is an expression too
	copied, err := lazy.Materialize[int](a)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, copied)

	_, err = lazy.Materialize(lazy.Const(42))
	assert.ErrorIs(t, err, lazy.ErrUnboundedExpr)

	_, err = lazy.Materialize(lazy.Lift2(func(x, y int) int { return x + y }, lazy.Const(1), lazy.Const(2)))
	assert.ErrorIs(t, err, lazy.ErrUnboundedExpr)
}

// boxedInts is Indexable but not Addressable, forcing compound entries
// through the read-modify-write path.
type boxedInts struct {
	vals []int
}

func (bx boxedInts) Len() int { return len(bx.vals) }

func (bx boxedInts) At(i int) int { return bx.vals[i] }

func (bx boxedInts) SetAt(i, v int) { bx.vals[i] = v }

func TestCompoundAssign_WithoutAddressability(t *testing.T) {
	raw := []int{1, 2, 3}
	c := lazy.Wrap(boxedInts{vals: raw}, lazy.IntOps[int]())

	assert.NoError(t, c.AddAssign(lazy.Const(10)))
	assert.Equal(t, []int{11, 12, 13}, raw)

	assert.NoError(t, c.MulAssign(c.Sub(lazy.Const(10))))
	assert.Equal(t, []int{11, 24, 39}, raw)
}
