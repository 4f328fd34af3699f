package plist

// maxSizeFatNode bounds how many versions a single node can absorb
// before a new physical node must be split off, carried over from
// ListNode::MAX_SIZE_FAT_NODE.
const maxSizeFatNode = 10

// listNode is a fat node: one physical link that carries a distinct
// value/next/previous triple per version that has touched it, up to
// maxSizeFatNode entries. head and tail sentinels never populate value.
//
// Grounded on ListNode in original_source/src/Collections/PersistentList.h.
type listNode[T any] struct {
	next  *versionMap[*listNode[T]]
	last  *versionMap[*listNode[T]]
	value *versionMap[T]
}

func newFatNode[T any](order *versionOrder, version int, value T, last, next *listNode[T]) *listNode[T] {
	n := &listNode[T]{
		next:  newVersionMap[*listNode[T]](order),
		last:  newVersionMap[*listNode[T]](order),
		value: newVersionMap[T](order),
	}
	n.next.set(version, next)
	n.last.set(version, last)
	n.value.set(version, value)
	return n
}

// newSentinelNode builds a head or tail node, which never holds a value.
func newSentinelNode[T any](order *versionOrder, version int, last, next *listNode[T]) *listNode[T] {
	n := &listNode[T]{
		next:  newVersionMap[*listNode[T]](order),
		last:  newVersionMap[*listNode[T]](order),
		value: newVersionMap[T](order),
	}
	n.next.set(version, next)
	n.last.set(version, last)
	return n
}

func (n *listNode[T]) add(version int, value T) bool {
	if n.value.size() >= maxSizeFatNode {
		return false
	}
	n.value.set(version, value)
	return true
}

func (n *listNode[T]) canSetNext() bool {
	return n.value.size() == 0 || n.next.size() < maxSizeFatNode
}

func (n *listNode[T]) canSetLast() bool {
	return n.value.size() == 0 || n.last.size() < maxSizeFatNode
}

func (n *listNode[T]) setNext(version int, next *listNode[T]) bool {
	if !n.canSetNext() {
		if _, ok := n.next.getExact(version); !ok {
			return false
		}
	}
	n.next.set(version, next)
	return true
}

func (n *listNode[T]) setLast(version int, last *listNode[T]) bool {
	if !n.canSetLast() {
		if _, ok := n.last.getExact(version); !ok {
			return false
		}
	}
	n.last.set(version, last)
	return true
}

func (n *listNode[T]) copyNextAfter(src *listNode[T], version int) {
	n.next.copyFrom(src.next, version)
}

func (n *listNode[T]) copyLastAfter(src *listNode[T], version int) {
	n.last.copyFrom(src.last, version)
}

func (n *listNode[T]) find(version int) T             { return n.value.find(version) }
func (n *listNode[T]) getNext(version int) *listNode[T] { return n.next.find(version) }
func (n *listNode[T]) getLast(version int) *listNode[T] { return n.last.find(version) }
