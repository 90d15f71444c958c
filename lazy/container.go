package lazy

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Config tunes a wrapped container. All fields are optional.
type Config struct {
	// Name labels the wrapper in log events and size-mismatch errors.
	Name string

	// Logger receives the wrap event, composition-defect warnings, and
	// evaluation rejections. Defaults to zap's production logger.
	Logger *zap.Logger

	// UncheckedSizes disables operand size validation on this container's
	// evaluation entries. The caller then guarantees every bounded operand
	// spans the target range, as with direct index access; a wrong operand
	// reads out of the operand's range.
	UncheckedSizes bool
}

// Container is the lazy wrapper: a non-owning view over an Indexable plus
// the element operation table its expressions resolve against. It forwards
// size and element access, participates in expressions as an operand, and
// is the target of the assignment entries in assign.go.
//
// A Container never copies or resizes what it wraps. Mutations made to the
// underlying container stay visible to later evaluations through the
// wrapper, and writes through the wrapper land in the underlying container.
//
// Containers and the expressions built from them are intentionally NOT
// safe for concurrent use with writers. Evaluation only reads and nodes
// are immutable, so building once and evaluating from several goroutines
// over unchanging storage is fine; evaluating while another goroutine
// mutates the wrapped storage is a data race, exactly as raw index access
// would be.
type Container[E any] struct {
	col       Indexable[E]
	ops       *Ops[E]
	id        string
	name      string
	logger    *zap.Logger
	unchecked bool
}

// Wrap binds a container to an element operation table. The table is
// normalized (missing derivable forms filled in) and copied, so the
// caller's table stays untouched.
//
// Panics if col or table is nil, or if more than one Config is passed.
func Wrap[E any](col Indexable[E], table *Ops[E], config ...Config) *Container[E] {
	if col == nil {
		panic("lazy: Wrap requires a non-nil container")
	}
	if table == nil {
		panic("lazy: Wrap requires an element operation table")
	}
	cfg := normalizeConfig(config)
	logger := cfg.Logger
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	c := &Container[E]{
		col:       col,
		ops:       table.normalized(),
		id:        uuid.New().String(),
		name:      cfg.Name,
		logger:    logger,
		unchecked: cfg.UncheckedSizes,
	}
	logger.Debug("wrapped container",
		zap.String("containerId", c.id),
		zap.String("container", c.name),
		zap.String("elem", elemTypeName[E]()),
		zap.Int("len", col.Len()),
	)
	return c
}

// WrapSlice wraps a plain Go slice. The slice is shared, not copied.
func WrapSlice[E any](s []E, table *Ops[E], config ...Config) *Container[E] {
	return Wrap[E](Slice[E](s), table, config...)
}

// WrapInts wraps an integer slice with the full IntOps table.
func WrapInts[E constraints.Integer](s []E, config ...Config) *Container[E] {
	return WrapSlice(s, IntOps[E](), config...)
}

// WrapFloats wraps a float slice with the FloatOps table.
func WrapFloats[E constraints.Float](s []E, config ...Config) *Container[E] {
	return WrapSlice(s, FloatOps[E](), config...)
}

// WrapStrings wraps a string slice with the StringOps table.
func WrapStrings[E ~string](s []E, config ...Config) *Container[E] {
	return WrapSlice(s, StringOps[E](), config...)
}

// WrapBools wraps a bool slice with the BoolOps table, the usual target for
// comparison pipelines.
func WrapBools(s []bool, config ...Config) *Container[bool] {
	return WrapSlice(s, BoolOps(), config...)
}

// Len reports the length of the wrapped container.
func (c *Container[E]) Len() int { return c.col.Len() }

// At reads the element at index i from the wrapped container.
func (c *Container[E]) At(i int) E { return c.col.At(i) }

// SetAt writes the element at index i into the wrapped container.
func (c *Container[E]) SetAt(i int, v E) { c.col.SetAt(i, v) }

// Err reports nil: containers never carry composition defects. It exists so
// a nil *Container operand is rejected as an error instead of panicking
// mid-composition.
func (c *Container[E]) Err() error {
	if c == nil {
		return errors.Wrap(ErrEmptyExpr, "nil container")
	}
	return nil
}

func (c *Container[E]) checkSpan(want int) error {
	if n := c.col.Len(); n != want {
		return sizeMismatchErr(c.name, n, want)
	}
	return nil
}

func (c *Container[E]) origin() origin {
	return origin{logger: c.logger, id: c.id, name: c.name}
}

func (c *Container[E]) rejected(entry string, err error) error {
	c.logger.Error("expression evaluation rejected",
		zap.String("entry", entry),
		zap.String("containerId", c.id),
		zap.String("container", c.name),
		zap.Error(err),
	)
	return err
}

// normalizeConfig flattens the optional trailing Config into one value.
//
// Accepts either 0 or 1 configs. Panics if more than one is passed.
func normalizeConfig(config []Config) Config {
	switch len(config) {
	case 1:
		return config[0]
	case 0:
		return Config{}
	default:
		panic("normalizeConfig: only one or zero configs allowed")
	}
}
