package plist

import (
	"container/list"

	"github.com/arborist-labs/persist/internal/contract"
)

// weightBorder bounds the real-valued labels assigned to versions, carried
// over from original_source/src/Collections/PersistentList.h's
// ListOrder::weight_border.
const weightBorder = 2000000000000

// versionOrder assigns every list version, and its "reverse" companion
// (see add), a real-valued weight so that any two versions can be
// compared in O(1) regardless of how many versions exist between them.
// New versions slot in at one third and two thirds of the gap to their
// neighbor; when a gap closes to zero, every weight is relabeled evenly
// across the full range. This is the order/list-labeling structure a
// fully persistent list needs to support insertion anywhere in temporal
// order, not just at the end.
//
// Grounded on the ListOrder struct in the same header. container/list
// stands in for std::list<int>: nothing in the retrieval pack offers a
// third-party doubly linked list, and this is exactly the shape the
// stdlib type is for.
type versionOrder struct {
	seq           *list.List
	handles       []*list.Element
	weightTrue    []float64
	weightReverse []float64
}

func newVersionOrder() *versionOrder {
	return &versionOrder{seq: list.New()}
}

// add registers a new version as an immediate temporal successor of
// parent (ignored on the very first call) and returns its id. Every
// version v also gets an implicit "reverse" label at id -v, used to
// record a node's pre-edit state at the same list position as its
// post-edit state.
func (o *versionOrder) add(parent int) int {
	if o.seq.Len() == 0 {
		e := o.seq.PushBack(1)
		o.handles = append(o.handles, e, e)
		o.seq.PushBack(-1)
		o.weightTrue = append(o.weightTrue, -weightBorder, -weightBorder)
		o.weightReverse = append(o.weightReverse, weightBorder, weightBorder)
		return 1
	}

	contract.Expect(parent < len(o.handles), "parent version exists")
	nextParentHandle := o.handles[parent].Next()
	parentValue := o.weightTrue[parent]
	nextParent := nextParentHandle.Value.(int)
	var nextParentValue float64
	if nextParent > 0 {
		nextParentValue = o.weightTrue[nextParent]
	} else {
		nextParentValue = o.weightReverse[-nextParent]
	}

	newVersion := len(o.handles)
	versionElem := o.seq.InsertBefore(newVersion, nextParentHandle)
	o.handles = append(o.handles, versionElem)
	o.seq.InsertAfter(-newVersion, versionElem)

	trueWeight := parentValue + (nextParentValue-parentValue)/3
	trueReverse := parentValue + 2*(nextParentValue-parentValue)/3
	o.weightTrue = append(o.weightTrue, trueWeight)
	o.weightReverse = append(o.weightReverse, trueReverse)
	if trueWeight == parentValue || trueWeight == trueReverse || trueReverse == nextParentValue {
		o.relabel()
	}
	return newVersion
}

// relabel spreads every version's weight evenly across the full range.
// Runs only when two neighboring weights have collided to the same
// float64 value, which is rare enough that an O(n) full pass is cheap
// relative to how long it takes to trigger.
func (o *versionOrder) relabel() {
	step := weightBorder / float64(len(o.weightTrue))
	cur := -float64(weightBorder)
	for e := o.seq.Front(); e != nil; e = e.Next() {
		v := e.Value.(int)
		if v < 0 {
			o.weightReverse[-v] = cur
		} else {
			o.weightTrue[v] = cur
		}
		cur += step
	}
}

func (o *versionOrder) weight(v int) float64 {
	if v < 0 {
		return o.weightReverse[-v]
	}
	return o.weightTrue[v]
}

// less reports whether version l precedes version r in temporal order.
func (o *versionOrder) less(l, r int) bool {
	return o.weight(l) < o.weight(r)
}
