package lazy

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Unbounded is the length reported by expressions that have no inherent
// index range, such as broadcast constants. They span whatever range the
// evaluation target defines.
const Unbounded = -1

// Expr is the read side of every expression value: containers, operator
// nodes, and constants all satisfy it, and caller-defined implementations
// (generators, ramps) compose exactly like built-in operands.
//
// At must be a pure read. Evaluation calls it once per target index per
// pass; results are never cached, so repeated evaluation observes current
// operand state.
type Expr[R any] interface {
	Len() int
	At(i int) R
}

// errCarrier lets evaluation entries see defects recorded on operands at
// composition time.
type errCarrier interface {
	Err() error
}

// spanChecker is the internal hook for deep size validation. Operator nodes
// and containers implement it; foreign Expr values fall back to a plain Len
// comparison.
type spanChecker interface {
	checkSpan(want int) error
}

// origin identifies the wrapper an expression chain started from, so defect
// warnings correlate with the wrap event in logs.
type origin struct {
	logger *zap.Logger
	id     string
	name   string
}

func (o origin) warnDefect(op Op, err error) {
	if o.logger == nil {
		return
	}
	o.logger.Warn("expression composition defect",
		zap.String("op", op.String()),
		zap.String("containerId", o.id),
		zap.String("container", o.name),
		zap.Error(err),
	)
}

// Node is one immutable expression node: an element operation over operand
// expressions. Operator methods and the Lift family build nodes; nothing
// evaluates until the node reaches a container assignment entry or
// Materialize. Evaluating index i walks the subtree at i and nothing else:
// no intermediate container, no caching.
//
// Nodes are shared by pointer and never mutated after construction, so a
// subtree may appear in several expressions at once. The zero Node is not a
// valid expression; evaluation entries reject it via Err.
type Node[R any] struct {
	op    Op
	table *Ops[R]
	eval  func(i int) R
	span  int
	check func(want int) error
	err   error
	src   origin
}

// Len reports the node's span: the length of its first bounded operand, or
// Unbounded when every operand underneath is a broadcast constant.
func (n *Node[R]) Len() int {
	if n.eval == nil {
		return Unbounded
	}
	return n.span
}

// At evaluates the node at index i by evaluating both operands at i and
// applying the element operation. Panics if the node is defective; use Err
// or an evaluation entry to get defects as errors.
func (n *Node[R]) At(i int) R {
	if n.eval == nil {
		panic("lazy: At on invalid expression: " + n.Err().Error())
	}
	return n.eval(i)
}

// Err reports the defect recorded on this node at composition time, if any.
// Defects are sticky: every node composed on top of a defective one carries
// the same error, and evaluation entries surface it before touching any
// slot.
func (n *Node[R]) Err() error {
	if n == nil {
		return errors.Wrap(ErrEmptyExpr, "nil node")
	}
	if n.err != nil {
		return n.err
	}
	if n.eval == nil {
		return errors.Wrap(ErrEmptyExpr, "zero-value node")
	}
	return nil
}

func (n *Node[R]) checkSpan(want int) error {
	if n.check == nil {
		return nil
	}
	return n.check(want)
}

type constExpr[E any] struct {
	v E
}

// Const lifts a scalar into a broadcast operand: At yields the same value
// at every index and Len reports Unbounded. It is how scalars take part in
// composition and in compound assignment.
func Const[E any](v E) Expr[E] {
	return constExpr[E]{v: v}
}

func (c constExpr[E]) Len() int { return Unbounded }

func (c constExpr[E]) At(int) E { return c.v }

// operandErr reports why e cannot be an operand: nil, or carrying a sticky
// composition defect.
func operandErr[T any](e Expr[T]) error {
	if e == nil {
		return errors.Wrap(ErrEmptyExpr, "nil operand")
	}
	if ec, ok := e.(errCarrier); ok {
		return ec.Err()
	}
	return nil
}

func spanOf2[L, R any](l Expr[L], r Expr[R]) int {
	if n := l.Len(); n >= 0 {
		return n
	}
	return r.Len()
}

// checkOperand validates that e spans exactly want indices. Own types
// recurse through checkSpan so a mismatched leaf deep inside a tree is
// found; foreign operands are leaves by definition and their Len decides.
func checkOperand[T any](e Expr[T], want int) error {
	if sc, ok := e.(spanChecker); ok {
		return sc.checkSpan(want)
	}
	if n := e.Len(); n >= 0 && n != want {
		return sizeMismatchErr("", n, want)
	}
	return nil
}

func mergeCheck[L, R any](l Expr[L], r Expr[R]) func(want int) error {
	return func(want int) error {
		if err := checkOperand(l, want); err != nil {
			return err
		}
		return checkOperand(r, want)
	}
}

// buildBinary assembles an arithmetic/bitwise node. leftOwned marks a left
// operand whose At results are values the evaluator owns (operator nodes
// produce fresh values); those run the compound element form on the left
// value instead of building a third one, which is the fused-loop payoff for
// element types with cheap in-place updates. Wrapped containers and
// constants are never mutated, so only node left operands set it.
func buildBinary[E any](src origin, table *Ops[E], op Op, left, right Expr[E], leftOwned bool) *Node[E] {
	if err := operandErr(left); err != nil {
		return &Node[E]{op: op, table: table, err: err, src: src}
	}
	if err := operandErr(right); err != nil {
		return &Node[E]{op: op, table: table, err: err, src: src}
	}
	fn := table.binaryFor(op)
	if fn == nil {
		err := unsupportedOpErr[E](op)
		src.warnDefect(op, err)
		return &Node[E]{op: op, table: table, err: err, src: src}
	}
	var eval func(i int) E
	if leftOwned {
		comp := table.compoundFor(op)
		eval = func(i int) E {
			v := left.At(i)
			comp(&v, right.At(i))
			return v
		}
	} else {
		eval = func(i int) E {
			return fn(left.At(i), right.At(i))
		}
	}
	return &Node[E]{
		op:    op,
		table: table,
		eval:  eval,
		span:  spanOf2(left, right),
		check: mergeCheck(left, right),
		src:   src,
	}
}

// buildPredicate assembles a comparison node. The result element type is
// bool regardless of E, and the node carries the bool table so predicate
// results compose further (into logical chains or bool containers).
func buildPredicate[E any](src origin, table *Ops[E], op Op, left, right Expr[E]) *Node[bool] {
	if err := operandErr(left); err != nil {
		return &Node[bool]{op: op, table: boolTable, err: err, src: src}
	}
	if err := operandErr(right); err != nil {
		return &Node[bool]{op: op, table: boolTable, err: err, src: src}
	}
	pred := table.predicateFor(op)
	if pred == nil {
		err := unsupportedOpErr[E](op)
		src.warnDefect(op, err)
		return &Node[bool]{op: op, table: boolTable, err: err, src: src}
	}
	return &Node[bool]{
		op:    op,
		table: boolTable,
		eval: func(i int) bool {
			return pred(left.At(i), right.At(i))
		},
		span:  spanOf2(left, right),
		check: mergeCheck(left, right),
		src:   src,
	}
}

// buildLogical assembles a && / || node over the element type's Truthy.
// Both operands are always evaluated at each index; there is no
// short-circuit, because operands are whole expressions, not branches.
func buildLogical[E any](src origin, table *Ops[E], op Op, left, right Expr[E]) *Node[bool] {
	if err := operandErr(left); err != nil {
		return &Node[bool]{op: op, table: boolTable, err: err, src: src}
	}
	if err := operandErr(right); err != nil {
		return &Node[bool]{op: op, table: boolTable, err: err, src: src}
	}
	var truthy func(E) bool
	if table != nil {
		truthy = table.Truthy
	}
	if truthy == nil {
		err := unsupportedOpErr[E](op)
		src.warnDefect(op, err)
		return &Node[bool]{op: op, table: boolTable, err: err, src: src}
	}
	conj := op == OpLogicalAnd
	return &Node[bool]{
		op:    op,
		table: boolTable,
		eval: func(i int) bool {
			a := truthy(left.At(i))
			b := truthy(right.At(i))
			if conj {
				return a && b
			}
			return a || b
		},
		span:  spanOf2(left, right),
		check: mergeCheck(left, right),
		src:   src,
	}
}
