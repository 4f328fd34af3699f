package pmap

import (
	"iter"

	"github.com/arborist-labs/persist/internal/contract"
)

// iterFrame is one entry of the persistent traversal stack: a node still
// to be visited plus the rest of the stack below it. Go's garbage
// collector reclaims frames once no iterator references them, so unlike
// the original's use of a weak_ptr into the owning map (needed only to
// stop a shared_ptr cycle keeping the whole trie alive past its last
// strong reference), a plain pointer here is both sufficient and simpler.
type iterFrame[K, V any] struct {
	node hamtNode[K, V]
	next *iterFrame[K, V]
}

// Iterator is a forward iterator over a Map's entries in an unspecified,
// depth-first order. The end sentinel is the zero Iterator, whose stack
// is nil.
type Iterator[K, V any] struct {
	stack *iterFrame[K, V]
}

// Begin returns an iterator positioned at the map's first entry.
func (m Map[K, V]) Begin() Iterator[K, V] {
	it := Iterator[K, V]{}
	if m.root != nil {
		it.stack = &iterFrame[K, V]{node: m.root}
	}
	return it.settle()
}

// End returns the past-the-end iterator.
func (m Map[K, V]) End() Iterator[K, V] { return Iterator[K, V]{} }

// Done reports whether the iterator has run off the end.
func (it Iterator[K, V]) Done() bool { return it.stack == nil }

// KeyValue returns the entry the iterator currently points at.
// Precondition: !Done().
func (it Iterator[K, V]) KeyValue() (K, V) {
	contract.Expect(!it.Done(), "!done()")
	leaf := it.stack.node.(*valueNode[K, V])
	return leaf.key, leaf.value
}

// Next advances the iterator to the next entry.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	contract.Expect(!it.Done(), "!done()")
	return it.advance().settle()
}

// Equal reports whether two iterators reference the same traversal
// position; in particular every Done iterator compares equal.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.stack == other.stack
}

// settle pops frames until the top of the stack is a value leaf (or the
// stack is empty), expanding bitmap/collision frames into their children
// along the way.
func (it Iterator[K, V]) settle() Iterator[K, V] {
	for it.stack != nil {
		if _, ok := it.stack.node.(*valueNode[K, V]); ok {
			return it
		}
		it = it.advance()
	}
	return it
}

func (it Iterator[K, V]) advance() Iterator[K, V] {
	top := it.stack
	rest := top.next
	switch t := top.node.(type) {
	case *valueNode[K, V]:
		// leaf, nothing to expand
	case *bitmapNode[K, V]:
		for i := len(t.children) - 1; i >= 0; i-- {
			rest = &iterFrame[K, V]{node: t.children[i], next: rest}
		}
	case *collisionNode[K, V]:
		for i := len(t.children) - 1; i >= 0; i-- {
			rest = &iterFrame[K, V]{node: t.children[i], next: rest}
		}
	}
	return Iterator[K, V]{stack: rest}
}

// All returns a range-over-func iterator visiting every key/value pair.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.Begin(); !it.Done(); it = it.Next() {
			k, v := it.KeyValue()
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns a range-over-func iterator visiting every key.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := m.Begin(); !it.Done(); it = it.Next() {
			k, _ := it.KeyValue()
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns a range-over-func iterator visiting every value.
func (m Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := m.Begin(); !it.Done(); it = it.Next() {
			_, v := it.KeyValue()
			if !yield(v) {
				return
			}
		}
	}
}
