// Package history implements the undo/redo engine shared by every
// persistent collection in this module. A Manager is itself a persistent
// value: pushing an action returns a new Manager, sharing the old one's
// stack tails, so every historical Manager a collection ever carried
// remains valid.
//
// Grounded on original_source/src/Undo/UndoRedoManager.h. The two stacks
// are persistent singly-linked cell chains, matching UndoRedoStack.
package history

import "github.com/arborist-labs/persist/internal/contract"

// Action is a pair of thunks describing how to undo and redo one
// operation on a Collection. Each thunk takes the Manager that should be
// installed on the resulting collection (with this action already moved
// to the opposite stack) and returns the full collection value for that
// side of the edit. A thunk captures its pre- or post-state by value; it
// never looks at its own Manager argument for anything but handing it to
// the collection constructor.
type Action[Collection any] struct {
	undo func(Manager[Collection]) Collection
	redo func(Manager[Collection]) Collection
}

// NewAction builds an Action from explicit undo/redo thunks.
func NewAction[Collection any](
	undo func(Manager[Collection]) Collection,
	redo func(Manager[Collection]) Collection,
) Action[Collection] {
	contract.Expect(undo != nil, "undo != nil")
	contract.Expect(redo != nil, "redo != nil")
	return Action[Collection]{undo: undo, redo: redo}
}

type stackCell[T any] struct {
	value T
	next  *stackCell[T]
}

// stack is a persistent singly-linked stack. All operations are O(1) and
// share tails with whatever stack they were derived from.
type stack[T any] struct {
	top *stackCell[T]
}

func (s stack[T]) empty() bool { return s.top == nil }

func (s stack[T]) push(v T) stack[T] {
	return stack[T]{top: &stackCell[T]{value: v, next: s.top}}
}

func (s stack[T]) pop() stack[T] {
	contract.Expect(!s.empty(), "!empty()")
	return stack[T]{top: s.top.next}
}

func (s stack[T]) peek() T {
	contract.Expect(!s.empty(), "!empty()")
	return s.top.value
}

// Manager holds the undo and redo stacks for one collection lineage. The
// zero Manager is a valid, empty history.
type Manager[Collection any] struct {
	undoStack stack[Action[Collection]]
	redoStack stack[Action[Collection]]
}

// New returns an empty Manager. Equivalent to the zero value; provided
// for symmetry with the other constructors in this module.
func New[Collection any]() Manager[Collection] {
	return Manager[Collection]{}
}

// Push records a new action, returning a Manager whose undo stack has it
// on top and whose redo stack is empty (§4.1: pushing clears redo).
func (m Manager[Collection]) Push(action Action[Collection]) Manager[Collection] {
	contract.Expect(action.undo != nil && action.redo != nil, "action present")
	return Manager[Collection]{undoStack: m.undoStack.push(action)}
}

// HasUndo reports whether Undo can be called.
func (m Manager[Collection]) HasUndo() bool { return !m.undoStack.empty() }

// HasRedo reports whether Redo can be called.
func (m Manager[Collection]) HasRedo() bool { return !m.redoStack.empty() }

// Undo pops the most recent action, moves it to the redo stack, and
// applies its undo thunk to the resulting Manager.
func (m Manager[Collection]) Undo() Collection {
	contract.Expect(m.HasUndo(), "hasUndo()")
	action := m.undoStack.peek()
	next := Manager[Collection]{
		undoStack: m.undoStack.pop(),
		redoStack: m.redoStack.push(action),
	}
	return action.undo(next)
}

// Redo pops the most recent undone action, moves it back to the undo
// stack, and applies its redo thunk to the resulting Manager.
func (m Manager[Collection]) Redo() Collection {
	contract.Expect(m.HasRedo(), "hasRedo()")
	action := m.redoStack.peek()
	next := Manager[Collection]{
		undoStack: m.undoStack.push(action),
		redoStack: m.redoStack.pop(),
	}
	return action.redo(next)
}
