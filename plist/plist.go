// Package plist implements a fully persistent doubly linked list. Every
// physical node is "fat": it stores one value/next/previous triple per
// version that has ever touched it (up to maxSizeFatNode), so a version
// can be recovered without copying the whole list, at the cost of an
// O(log fat-node-size) hop per traversal step.
//
// Grounded on original_source/src/Collections/PersistentList.h.
package plist

import (
	"iter"

	"github.com/arborist-labs/persist/history"
	"github.com/arborist-labs/persist/internal/contract"
)

// List is a persistent doubly linked sequence. The zero value is not
// usable; construct one with New or From.
type List[T any] struct {
	version int
	order   *versionOrder
	head    *listNode[T]
	tail    *listNode[T]
	size    int
	hist    history.Manager[List[T]]
}

// New returns an empty list.
func New[T any]() List[T] {
	order := newVersionOrder()
	order.add(0)
	head := newSentinelNode[T](order, 1, nil, nil)
	tail := newSentinelNode[T](order, 1, head, nil)
	head.setNext(1, tail)
	return List[T]{version: 1, order: order, head: head, tail: tail}
}

// From builds a list containing values, in order.
func From[T any](values []T) List[T] {
	order := newVersionOrder()
	order.add(0)
	head := newSentinelNode[T](order, 1, nil, nil)
	ptr := head
	for _, v := range values {
		node := newFatNode[T](order, 1, v, ptr, nil)
		ptr.setNext(1, node)
		node.setLast(1, ptr)
		ptr = node
	}
	tail := newSentinelNode[T](order, 1, ptr, nil)
	ptr.setNext(1, tail)
	return List[T]{version: 1, order: order, head: head, tail: tail, size: len(values)}
}

// Size returns the number of elements in the list.
func (l List[T]) Size() int { return l.size }

// Empty reports whether the list has no elements.
func (l List[T]) Empty() bool { return l.size == 0 }

// HasUndo reports whether Undo can be called.
func (l List[T]) HasUndo() bool { return l.hist.HasUndo() }

// HasRedo reports whether Redo can be called.
func (l List[T]) HasRedo() bool { return l.hist.HasRedo() }

func (l List[T]) findNodeByIndexAt(version, index int) *listNode[T] {
	contract.Expect(index < l.size, "index < size")
	ptr := l.head
	for i := 0; i <= index; i++ {
		contract.Expect(ptr != nil, "node exists for index")
		ptr = ptr.getNext(version)
	}
	contract.Expect(ptr != nil, "node exists for index")
	return ptr
}

func (l List[T]) findNodeByIndex(index int) *listNode[T] {
	return l.findNodeByIndexAt(l.version, index)
}

// Find returns the element at index. Precondition: index < Size().
func (l List[T]) Find(index int) T {
	return l.findNodeByIndex(index).find(l.version)
}

// makeNewNode splices a freshly built node holding value between last and
// next under version, cascading a node split down either side when a fat
// node it needs to touch is already full.
func (l List[T]) makeNewNode(version int, value T, last, next *listNode[T]) {
	newNode := newFatNode[T](l.order, version, value, nil, nil)

	curLast, curNext := last, newNode
	for !curLast.canSetNext() {
		split := newFatNode[T](l.order, version, curLast.find(version), curLast.getLast(version), curNext)
		split.copyNextAfter(curLast, version)
		curLast.getLast(version).setNext(version, split)
		curNext.setLast(version, split)
		curNext = split
		curLast = curLast.getLast(version)
	}
	curLast.setNext(version, curNext)
	curNext.setLast(version, curLast)

	curNext, curLast = next, newNode
	for !curNext.canSetLast() {
		split := newFatNode[T](l.order, version, curNext.find(version), curLast, curNext.getNext(version))
		split.copyLastAfter(curNext, version)
		curNext.getNext(version).setLast(version, split)
		curLast.setNext(version, split)
		curLast = split
		curNext = curNext.getNext(version)
	}
	curLast.setNext(version, curNext)
	curNext.setLast(version, curLast)
}

// dropNode splices newNode out of version's list, cascading a node split
// down either side the same way makeNewNode does.
func (l List[T]) dropNode(version, oldVersion int, newNode *listNode[T]) {
	curLast := newNode.getLast(oldVersion)
	curNext := newNode.getNext(oldVersion)
	for !curLast.canSetNext() {
		split := newFatNode[T](l.order, version, curLast.find(oldVersion), curLast.getLast(oldVersion), curNext)
		split.copyNextAfter(curLast, version)
		curLast.getLast(oldVersion).setNext(version, split)
		curNext.setLast(version, split)
		curNext = split
		curLast = curLast.getLast(oldVersion)
	}
	curLast.setNext(version, curNext)
	curNext.setLast(version, curLast)

	curLast = newNode.getLast(oldVersion)
	curNext = newNode.getNext(oldVersion)
	for !curNext.canSetLast() {
		split := newFatNode[T](l.order, version, curNext.find(oldVersion), curLast, curNext.getNext(oldVersion))
		split.copyLastAfter(curNext, version)
		curNext.getNext(oldVersion).setLast(version, split)
		curLast.setNext(version, split)
		curLast = split
		curNext = curNext.getNext(oldVersion)
	}
	curLast.setNext(version, curNext)
	curNext.setLast(version, curLast)
}

// Set returns a new list with index replaced by value. Precondition:
// index < Size().
func (l List[T]) Set(index int, value T) List[T] {
	ptr := l.findNodeByIndex(index)
	newVersion := l.order.add(l.version)
	if !ptr.add(newVersion, value) {
		l.makeNewNode(newVersion, value, ptr.getLast(l.version), ptr.getNext(l.version))
	}
	if !ptr.add(-newVersion, ptr.find(l.version)) {
		l.makeNewNode(-newVersion, ptr.find(l.version), ptr.getLast(l.version), ptr.getNext(l.version))
	}
	return l.getChildren(newVersion, l.size)
}

// Erase returns a new list with the element at index removed.
// Precondition: index < Size().
func (l List[T]) Erase(index int) List[T] {
	ptr := l.findNodeByIndex(index)
	last := ptr.getLast(l.version)
	next := ptr.getNext(l.version)
	newVersion := l.order.add(l.version)
	l.dropNode(newVersion, l.version, ptr)
	ptr1 := l.findNodeByIndexAt(l.version, index)
	l.makeNewNode(-newVersion, ptr1.find(l.version), last, next)
	return l.getChildren(newVersion, l.size-1)
}

// Insert returns a new list with value inserted before index.
// Precondition: index < Size(); use PushBack to append at the end.
func (l List[T]) Insert(index int, value T) List[T] {
	newVersion := l.order.add(l.version)
	ptr := l.findNodeByIndex(index)
	last := ptr.getLast(l.version)
	l.makeNewNode(newVersion, value, last, ptr)
	ptr1 := l.findNodeByIndexAt(newVersion, index)
	l.dropNode(-newVersion, newVersion, ptr1)
	return l.getChildren(newVersion, l.size+1)
}

// PushFront returns a new list with value prepended.
func (l List[T]) PushFront(value T) List[T] {
	if l.size == 0 {
		return l.PushBack(value)
	}
	return l.Insert(0, value)
}

// PushBack returns a new list with value appended.
func (l List[T]) PushBack(value T) List[T] {
	newVersion := l.order.add(l.version)
	last := l.tail.getLast(l.version)
	l.makeNewNode(newVersion, value, last, l.tail)
	ptr1 := l.tail.getLast(newVersion)
	l.dropNode(-newVersion, newVersion, ptr1)
	return l.getChildren(newVersion, l.size+1)
}

// PopFront returns a new list without its first element.
// Precondition: !Empty().
func (l List[T]) PopFront() List[T] {
	contract.Expect(!l.Empty(), "!empty()")
	return l.Erase(0)
}

// PopBack returns a new list without its last element.
// Precondition: !Empty().
func (l List[T]) PopBack() List[T] {
	contract.Expect(!l.Empty(), "!empty()")
	return l.Erase(l.size - 1)
}

// Undo reverts the most recent mutating operation. Precondition: HasUndo().
func (l List[T]) Undo() List[T] {
	contract.Expect(l.HasUndo(), "hasUndo()")
	return l.hist.Undo()
}

// Redo re-applies the most recently undone operation. Precondition: HasRedo().
func (l List[T]) Redo() List[T] {
	contract.Expect(l.HasRedo(), "hasRedo()")
	return l.hist.Redo()
}

func (l List[T]) getChildren(newVersion, newSize int) List[T] {
	oldVersion, oldSize := l.version, l.size
	order, head, tail := l.order, l.head, l.tail
	undo := func(h history.Manager[List[T]]) List[T] {
		return List[T]{version: oldVersion, order: order, head: head, tail: tail, size: oldSize, hist: h}
	}
	redo := func(h history.Manager[List[T]]) List[T] {
		return List[T]{version: newVersion, order: order, head: head, tail: tail, size: newSize, hist: h}
	}
	return redo(l.hist.Push(history.NewAction(undo, redo)))
}

// All returns a forward iterator over the list's elements.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		end := l.End()
		for it := l.Begin(); !it.Equal(end); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Reversed returns a reverse iterator over the list's elements.
func (l List[T]) Reversed() iter.Seq[T] {
	return func(yield func(T) bool) {
		rend := l.REnd()
		for it := l.RBegin(); !it.Equal(rend); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold the same sequence of comparable
// values.
func Equal[T comparable](a, b List[T]) bool {
	if a.size != b.size {
		return false
	}
	ae, be := a.End(), b.End()
	ai, bi := a.Begin(), b.Begin()
	for !ai.Equal(ae) {
		if bi.Equal(be) || ai.Value() != bi.Value() {
			return false
		}
		ai, bi = ai.Next(), bi.Next()
	}
	return bi.Equal(be)
}
