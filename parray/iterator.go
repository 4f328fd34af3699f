package parray

import "github.com/arborist-labs/persist/internal/contract"

// Iterator is a random-access iterator over an Array snapshot, matching
// the iterator_traits contract in spec.md §6: Array's iterator is
// random-access. Two iterators compare only if they were derived (via
// Begin/End/Next/Prev) from the same originating snapshot. Compatibility
// is checked against the snapshot's modification-tree node, which stays
// the same pointer across re-rootings of that snapshot, rather than
// against a fresh per-call allocation.
type Iterator[T any] struct {
	array Array[T]
	index int
}

// Begin returns an iterator to the array's first element.
func (a Array[T]) Begin() Iterator[T] {
	return Iterator[T]{array: a, index: 0}
}

// End returns an iterator one past the array's last element.
func (a Array[T]) End() Iterator[T] {
	return Iterator[T]{array: a, index: a.size}
}

// Index returns the iterator's current position.
func (it Iterator[T]) Index() int { return it.index }

// Value dereferences the iterator.
func (it Iterator[T]) Value() T { return it.array.Value(it.index) }

// Next returns an iterator advanced by one position.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns an iterator moved back by one position.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns an iterator offset by delta positions, matching
// operator+=/operator+ on a random-access iterator.
func (it Iterator[T]) Add(delta int) Iterator[T] {
	contract.Expect(it.verifyOffset(delta), "verifyOffset(delta)")
	return Iterator[T]{array: it.array, index: it.index + delta}
}

// Diff returns the distance from other to it, like operator- between two
// random-access iterators.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	contract.Expect(it.compatibleWith(other), "same origin array")
	return it.index - other.index
}

// Equal reports whether two iterators reference the same position.
// Precondition: same origin array.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	contract.Expect(it.compatibleWith(other), "same origin array")
	return it.index == other.index
}

// Less reports whether it precedes other. Precondition: same origin array.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	contract.Expect(it.compatibleWith(other), "same origin array")
	return it.index < other.index
}

func (it Iterator[T]) verifyOffset(delta int) bool {
	if delta > 0 {
		return delta <= it.array.size-it.index
	}
	return -delta <= it.index
}

func (it Iterator[T]) compatibleWith(other Iterator[T]) bool {
	return it.array.node == other.array.node
}
