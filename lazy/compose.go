package lazy

// Operator methods. Each builds one immutable node and returns immediately;
// no element is touched until the expression reaches an assignment entry or
// Materialize. Chains associate left: a.Add(b).Add(c) is (a+b)+c, and index
// i evaluates as (a[i]+b[i])+c[i] in that order.
//
// Arithmetic and bitwise methods yield nodes of the same element type.
// Comparisons and logical methods yield bool nodes carrying the BoolOps
// table, so their results chain further or assign into bool containers.
// Using an operator the element table does not support records a sticky
// defect on the node instead of computing; see Node.Err.

// Add builds the elementwise a + b expression.
func (c *Container[E]) Add(rhs Expr[E]) *Node[E] {
	return buildBinary(c.origin(), c.ops, OpAdd, c, rhs, false)
}

// Sub builds the elementwise a - b expression.
func (c *Container[E]) Sub(rhs Expr[E]) *Node[E] {
	return buildBinary(c.origin(), c.ops, OpSub, c, rhs, false)
}

// Mul builds the elementwise a * b expression.
func (c *Container[E]) Mul(rhs Expr[E]) *Node[E] {
	return buildBinary(c.origin(), c.ops, OpMul, c, rhs, false)
}

// Div builds the elementwise a / b expression.
func (c *Container[E]) Div(rhs Expr[E]) *Node[E] {
	return buildBinary(c.origin(), c.ops, OpDiv, c, rhs, false)
}

// Or builds the elementwise a | b expression.
func (c *Container[E]) Or(rhs Expr[E]) *Node[E] {
	return buildBinary(c.origin(), c.ops, OpOr, c, rhs, false)
}

// And builds the elementwise a & b expression.
func (c *Container[E]) And(rhs Expr[E]) *Node[E] {
	return buildBinary(c.origin(), c.ops, OpAnd, c, rhs, false)
}

// Xor builds the elementwise a ^ b expression.
func (c *Container[E]) Xor(rhs Expr[E]) *Node[E] {
	return buildBinary(c.origin(), c.ops, OpXor, c, rhs, false)
}

// Shl builds the elementwise a << b expression.
func (c *Container[E]) Shl(rhs Expr[E]) *Node[E] {
	return buildBinary(c.origin(), c.ops, OpShl, c, rhs, false)
}

// Shr builds the elementwise a >> b expression.
func (c *Container[E]) Shr(rhs Expr[E]) *Node[E] {
	return buildBinary(c.origin(), c.ops, OpShr, c, rhs, false)
}

// Eq builds the elementwise a == b predicate.
func (c *Container[E]) Eq(rhs Expr[E]) *Node[bool] {
	return buildPredicate(c.origin(), c.ops, OpEq, c, rhs)
}

// Ne builds the elementwise a != b predicate.
func (c *Container[E]) Ne(rhs Expr[E]) *Node[bool] {
	return buildPredicate(c.origin(), c.ops, OpNe, c, rhs)
}

// Lt builds the elementwise a < b predicate.
func (c *Container[E]) Lt(rhs Expr[E]) *Node[bool] {
	return buildPredicate(c.origin(), c.ops, OpLt, c, rhs)
}

// Le builds the elementwise a <= b predicate.
func (c *Container[E]) Le(rhs Expr[E]) *Node[bool] {
	return buildPredicate(c.origin(), c.ops, OpLe, c, rhs)
}

// Gt builds the elementwise a > b predicate.
func (c *Container[E]) Gt(rhs Expr[E]) *Node[bool] {
	return buildPredicate(c.origin(), c.ops, OpGt, c, rhs)
}

// Ge builds the elementwise a >= b predicate.
func (c *Container[E]) Ge(rhs Expr[E]) *Node[bool] {
	return buildPredicate(c.origin(), c.ops, OpGe, c, rhs)
}

// LogicalAnd builds the elementwise a && b predicate over the element
// table's Truthy. Both operands are evaluated at every index.
func (c *Container[E]) LogicalAnd(rhs Expr[E]) *Node[bool] {
	return buildLogical(c.origin(), c.ops, OpLogicalAnd, c, rhs)
}

// LogicalOr builds the elementwise a || b predicate over the element
// table's Truthy. Both operands are evaluated at every index.
func (c *Container[E]) LogicalOr(rhs Expr[E]) *Node[bool] {
	return buildLogical(c.origin(), c.ops, OpLogicalOr, c, rhs)
}

// Node methods mirror the Container ones so chains keep flowing. The left
// operand here is a node, whose At results are owned temporaries, so these
// run the compound element form in place of building a third value.

// Add builds the elementwise n + rhs expression.
func (n *Node[R]) Add(rhs Expr[R]) *Node[R] {
	return buildBinary(n.src, n.table, OpAdd, n, rhs, true)
}

// Sub builds the elementwise n - rhs expression.
func (n *Node[R]) Sub(rhs Expr[R]) *Node[R] {
	return buildBinary(n.src, n.table, OpSub, n, rhs, true)
}

// Mul builds the elementwise n * rhs expression.
func (n *Node[R]) Mul(rhs Expr[R]) *Node[R] {
	return buildBinary(n.src, n.table, OpMul, n, rhs, true)
}

// Div builds the elementwise n / rhs expression.
func (n *Node[R]) Div(rhs Expr[R]) *Node[R] {
	return buildBinary(n.src, n.table, OpDiv, n, rhs, true)
}

// Or builds the elementwise n | rhs expression.
func (n *Node[R]) Or(rhs Expr[R]) *Node[R] {
	return buildBinary(n.src, n.table, OpOr, n, rhs, true)
}

// And builds the elementwise n & rhs expression.
func (n *Node[R]) And(rhs Expr[R]) *Node[R] {
	return buildBinary(n.src, n.table, OpAnd, n, rhs, true)
}

// Xor builds the elementwise n ^ rhs expression.
func (n *Node[R]) Xor(rhs Expr[R]) *Node[R] {
	return buildBinary(n.src, n.table, OpXor, n, rhs, true)
}

// Shl builds the elementwise n << rhs expression.
func (n *Node[R]) Shl(rhs Expr[R]) *Node[R] {
	return buildBinary(n.src, n.table, OpShl, n, rhs, true)
}

// Shr builds the elementwise n >> rhs expression.
func (n *Node[R]) Shr(rhs Expr[R]) *Node[R] {
	return buildBinary(n.src, n.table, OpShr, n, rhs, true)
}

// Eq builds the elementwise n == rhs predicate.
func (n *Node[R]) Eq(rhs Expr[R]) *Node[bool] {
	return buildPredicate(n.src, n.table, OpEq, n, rhs)
}

// Ne builds the elementwise n != rhs predicate.
func (n *Node[R]) Ne(rhs Expr[R]) *Node[bool] {
	return buildPredicate(n.src, n.table, OpNe, n, rhs)
}

// Lt builds the elementwise n < rhs predicate.
func (n *Node[R]) Lt(rhs Expr[R]) *Node[bool] {
	return buildPredicate(n.src, n.table, OpLt, n, rhs)
}

// Le builds the elementwise n <= rhs predicate.
func (n *Node[R]) Le(rhs Expr[R]) *Node[bool] {
	return buildPredicate(n.src, n.table, OpLe, n, rhs)
}

// Gt builds the elementwise n > rhs predicate.
func (n *Node[R]) Gt(rhs Expr[R]) *Node[bool] {
	return buildPredicate(n.src, n.table, OpGt, n, rhs)
}

// Ge builds the elementwise n >= rhs predicate.
func (n *Node[R]) Ge(rhs Expr[R]) *Node[bool] {
	return buildPredicate(n.src, n.table, OpGe, n, rhs)
}

// LogicalAnd builds the elementwise n && rhs predicate. Both operands are
// evaluated at every index.
func (n *Node[R]) LogicalAnd(rhs Expr[R]) *Node[bool] {
	return buildLogical(n.src, n.table, OpLogicalAnd, n, rhs)
}

// LogicalOr builds the elementwise n || rhs predicate. Both operands are
// evaluated at every index.
func (n *Node[R]) LogicalOr(rhs Expr[R]) *Node[bool] {
	return buildLogical(n.src, n.table, OpLogicalOr, n, rhs)
}
