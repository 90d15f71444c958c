package lazy

// Indexable is the capability a container needs to be wrapped: a size query,
// random-access reads, and random-access writes. Anything satisfying it can
// sit on either side of an expression and be the target of an assignment.
//
// Index bounds are the container's own contract. The library asks only for
// indices in [0, Len()) during evaluation.
type Indexable[E any] interface {
	Len() int
	At(i int) E
	SetAt(i int, v E)
}

// Addressable is an optional capability upgrade over Indexable. Containers
// whose slots have stable addresses can expose them, letting compound
// assignment mutate elements in place instead of going through an
// At/SetAt round trip. Compound assignment detects it; nothing requires it.
type Addressable[E any] interface {
	Indexable[E]
	Ptr(i int) *E
}

// Slice adapts an ordinary Go slice to Indexable and Addressable.
// It is a view: the backing array is shared, so writes through SetAt are
// visible to every holder of the slice and vice versa.
type Slice[E any] []E

func (s Slice[E]) Len() int { return len(s) }

func (s Slice[E]) At(i int) E { return s[i] }

func (s Slice[E]) SetAt(i int, v E) { s[i] = v }

func (s Slice[E]) Ptr(i int) *E { return &s[i] }
