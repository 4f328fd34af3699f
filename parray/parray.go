// Package parray implements a fully persistent indexed sequence using
// Baker's re-rooting trick over a modification tree: one mutable backing
// vector (the Root) plus a chain of change-sets recording single-index
// edits, re-rooted on access so that sequential access stays amortized
// O(1).
//
// Grounded on original_source/src/Collections/PersistentArray.h. Per the
// design notes (spec.md §9) the node hierarchy is collapsed from a
// virtual NodeImplBase/RootNodeImpl/ChangeSetNodeImpl trio into a single
// tagged struct with a root flag, matching how the teacher
// (BarrensZeppelin/pmmap) favors concrete struct variants distinguished
// by a type switch over interface-heavy designs.
package parray

import (
	"iter"

	"github.com/arborist-labs/persist/history"
	"github.com/arborist-labs/persist/internal/contract"
)

// node is one cell of the modification tree. When root is true it owns
// the backing storage for the whole tree and has no parent; otherwise it
// is a change-set recording a single (index, value) edit relative to its
// parent.
//
// Baker re-rooting works by literally exchanging the root/storage and
// index/value fields between two adjacent nodes (see siftUpRoot) — the
// same two memory cells trade roles instead of allocating anything new.
type node[T any] struct {
	parent  *node[T]
	root    bool
	storage []T
	index   int
	value   T
}

func newRoot[T any](storage []T) *node[T] {
	return &node[T]{root: true, storage: storage}
}

func newChangeSet[T any](parent *node[T], index int, value T) *node[T] {
	return &node[T]{parent: parent, index: index, value: value}
}

func (n *node[T]) contains(index int) bool {
	if n.root {
		return index < len(n.storage)
	}
	return n.index == index
}

func (n *node[T]) valuePtr(index int) *T {
	if n.root {
		return &n.storage[index]
	}
	contract.Expect(n.contains(index), "contains(index)")
	return &n.value
}

// siftUpRoot makes other the new root, trading the single changed value
// at other's modification index with the root's storage slot, then
// swapping every field between the two nodes so the roles (and the
// backing storage) physically change hands.
func (n *node[T]) siftUpRoot(other *node[T]) {
	contract.Expect(n.root && !other.root, "isRoot() && !other.isRoot()")

	a := n.valuePtr(other.index)
	b := other.valuePtr(other.index)
	*a, *b = *b, *a

	n.root, other.root = other.root, n.root
	n.storage, other.storage = other.storage, n.storage
	n.index, other.index = other.index, n.index
	n.value, other.value = other.value, n.value
}

// Array is a persistent, indexable sequence. The zero value is a valid
// empty array.
type Array[T any] struct {
	size int
	node *node[T]
	hist history.Manager[Array[T]]
}

// New returns an empty array.
func New[T any]() Array[T] { return Array[T]{} }

// From builds an array containing a copy of values, in order.
func From[T any](values []T) Array[T] {
	storage := make([]T, len(values))
	copy(storage, values)
	return Array[T]{size: len(storage), node: newRoot(storage)}
}

// WithCount builds an array of count copies of value.
func WithCount[T any](count int, value T) Array[T] {
	storage := make([]T, count)
	for i := range storage {
		storage[i] = value
	}
	return Array[T]{size: count, node: newRoot(storage)}
}

// Size returns the number of elements in the array.
func (a Array[T]) Size() int { return a.size }

// Empty reports whether the array has no elements.
func (a Array[T]) Empty() bool { return a.size == 0 }

// HasUndo reports whether Undo can be called.
func (a Array[T]) HasUndo() bool { return a.hist.HasUndo() }

// HasRedo reports whether Redo can be called.
func (a Array[T]) HasRedo() bool { return a.hist.HasRedo() }

// Front returns the first element. Precondition: !Empty().
func (a Array[T]) Front() T {
	contract.Expect(!a.Empty(), "!empty()")
	return a.Value(0)
}

// Back returns the last element. Precondition: !Empty().
func (a Array[T]) Back() T {
	contract.Expect(!a.Empty(), "!empty()")
	return a.Value(a.size - 1)
}

// Value returns the element at index, re-rooting the modification tree
// onto this array's node if needed. Amortized O(1) under sequential
// access to a single lineage. Precondition: index < Size().
func (a Array[T]) Value(index int) T {
	contract.Expect(index < a.size, "index < size")
	if !a.node.contains(index) {
		a.reRoot()
	}
	return *a.node.valuePtr(index)
}

// Set returns a new array with index replaced by value. Precondition:
// index < Size().
func (a Array[T]) Set(index int, value T) Array[T] {
	contract.Expect(index < a.size, "index < size")
	return a.modify(newChangeSet(a.node, index, value), a.size)
}

// PushBack returns a new array with value appended.
func (a Array[T]) PushBack(value T) Array[T] {
	root := a.findOrCreateRoot()
	origin := a.node
	if origin == nil {
		origin = root
	}

	if root.contains(a.size) {
		origin = newChangeSet(origin, a.size, value)
	} else {
		root.storage = append(root.storage, value)
	}
	return a.modify(origin, a.size+1)
}

// PopBack returns a new array without its last element. The backing
// storage is left untouched, since sibling versions may still read it.
// Precondition: !Empty().
func (a Array[T]) PopBack() Array[T] {
	contract.Expect(!a.Empty(), "!empty()")
	return a.modify(a.node, a.size-1)
}

// Undo reverts the most recent mutating operation. Precondition: HasUndo().
func (a Array[T]) Undo() Array[T] {
	contract.Expect(a.HasUndo(), "hasUndo()")
	return a.hist.Undo()
}

// Redo re-applies the most recently undone operation. Precondition: HasRedo().
func (a Array[T]) Redo() Array[T] {
	contract.Expect(a.HasRedo(), "hasRedo()")
	return a.hist.Redo()
}

// EqualFunc reports whether a and b have the same size and are
// element-wise equal under eq. Re-rooting (triggered by the Value calls
// this performs) never changes the result.
func (a Array[T]) EqualFunc(b Array[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.Value(i), b.Value(i)) {
			return false
		}
	}
	return true
}

// Equal reports whether two arrays of comparable elements hold the same
// sequence of values.
func Equal[T comparable](a, b Array[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// All returns an iterator over the array's elements in order.
func (a Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.Value(i)) {
				return
			}
		}
	}
}

func (a Array[T]) findOrCreateRoot() *node[T] {
	if a.node == nil {
		return newRoot[T](nil)
	}
	found := a.node
	for !found.root {
		found = found.parent
	}
	return found
}

func (a Array[T]) modify(newNode *node[T], newSize int) Array[T] {
	oldSize, oldNode := a.size, a.node
	undo := func(m history.Manager[Array[T]]) Array[T] {
		return Array[T]{size: oldSize, node: oldNode, hist: m}
	}
	redo := func(m history.Manager[Array[T]]) Array[T] {
		return Array[T]{size: newSize, node: newNode, hist: m}
	}
	return redo(a.hist.Push(history.NewAction(undo, redo)))
}

// reRoot walks from a.node to the tree's root, then sifts the root down
// that same path so a.node becomes the new root. Linear in path length,
// amortized O(1) per access under sequential lineage use.
func (a Array[T]) reRoot() {
	var path []*node[T]
	root := a.node
	for !root.root {
		path = append(path, root)
		parent := root.parent
		root.parent = nil
		root = parent
	}

	for i := len(path) - 1; i >= 0; i-- {
		child := path[i]
		root.siftUpRoot(child)
		root.parent = child
		root = child
	}
}
