package plist

// Iterator is a forward iterator over one version of a List.
//
// The original's ListReverseIterator postfix operators
// (operator++(int)/operator--(int) in PersistentList.h) mutate the
// iterator and then return *this rather than a pre-mutation snapshot —
// backwards from what postfix means, and inconsistent with ListIterator's
// own (correct) postfix pair right above it. That distinction doesn't
// exist here: Next and Prev are value receivers that return a new
// Iterator and leave the original untouched, so there is no separate
// prefix/postfix form to get wrong.
type Iterator[T any] struct {
	version int
	node    *listNode[T]
}

// Begin returns an iterator to the list's first element.
func (l List[T]) Begin() Iterator[T] {
	return Iterator[T]{version: l.version, node: l.head.getNext(l.version)}
}

// End returns an iterator one past the list's last element.
func (l List[T]) End() Iterator[T] {
	return Iterator[T]{version: l.version, node: l.tail}
}

// Value dereferences the iterator.
func (it Iterator[T]) Value() T { return it.node.find(it.version) }

// Next returns an iterator advanced by one position.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{version: it.version, node: it.node.getNext(it.version)}
}

// Prev returns an iterator moved back by one position.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{version: it.version, node: it.node.getLast(it.version)}
}

// Equal reports whether two iterators reference the same node.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.node == other.node }

// ReverseIterator is a reverse iterator over one version of a List.
type ReverseIterator[T any] struct {
	version int
	node    *listNode[T]
}

// RBegin returns a reverse iterator to the list's last element.
func (l List[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{version: l.version, node: l.tail.getLast(l.version)}
}

// REnd returns a reverse iterator one before the list's first element.
func (l List[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{version: l.version, node: l.head}
}

// Value dereferences the iterator.
func (it ReverseIterator[T]) Value() T { return it.node.find(it.version) }

// Next returns a reverse iterator advanced by one position (towards the
// front of the list).
func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{version: it.version, node: it.node.getLast(it.version)}
}

// Prev returns a reverse iterator moved back by one position (towards
// the back of the list).
func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{version: it.version, node: it.node.getNext(it.version)}
}

// Equal reports whether two reverse iterators reference the same node.
func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool { return it.node == other.node }
