package pmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// badHasher collides every key into a handful of buckets, forcing the
// trie to build deep chains and Collision nodes so those code paths get
// exercised deterministically instead of relying on luck with real hash
// distributions.
type badHasher struct{}

func (badHasher) Equal(a, b int) bool { return a == b }
func (badHasher) Hash(a int) uint64   { return uint64(a % 4) }

func toMap[K comparable, V any](m Map[K, V]) map[K]V {
	out := make(map[K]V, m.Size())
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

func TestEmptyMap(t *testing.T) {
	m := New[string, int](StringHasher{})
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Size())
	_, ok := m.Find("missing")
	assert.False(t, ok)
	assert.False(t, m.HasUndo())
}

// Map scenario from spec.md §8: {x:1, y:2, z:3, x:4} constructed with
// first-wins semantics, then explicit replace=false/true insert checks
// and an erase-of-missing-key no-op.
func TestScenarioConstructionAndInsertSemantics(t *testing.T) {
	m := FromPairs[string, int](StringHasher{}, []Pair[string, int]{
		{"x", 1}, {"y", 2}, {"z", 3}, {"x", 4},
	})

	require.Equal(t, 3, m.Size())
	assert.False(t, m.HasUndo(), "FromPairs resets history")

	v, ok := m.Find("x")
	require.True(t, ok)
	assert.Equal(t, 1, v, "first occurrence of a duplicate key wins")

	noReplace := m.Insert("x", 99, false)
	v, _ = noReplace.Find("x")
	assert.Equal(t, 1, v)
	assert.Equal(t, 3, noReplace.Size())

	replaced := m.Insert("x", 99, true)
	v, _ = replaced.Find("x")
	assert.Equal(t, 99, v)
	assert.Equal(t, 3, replaced.Size())

	withNew := m.Insert("w", 7, false)
	assert.Equal(t, 4, withNew.Size())

	missing := m.Erase("does-not-exist")
	assert.Equal(t, 3, missing.Size())
	assert.True(t, m.Equal(missing, func(a, b int) bool { return a == b }))
}

func TestInsertUndoRedo(t *testing.T) {
	m0 := New[string, int](StringHasher{})
	m1 := m0.Insert("a", 1, false)
	m2 := m1.Insert("b", 2, false)

	require.Equal(t, 2, m2.Size())
	back := m2.Undo()
	assert.Equal(t, 1, back.Size())
	_, ok := back.Find("b")
	assert.False(t, ok)

	fwd := back.Redo()
	assert.Equal(t, 2, fwd.Size())
	v, ok := fwd.Find("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestErasePersistenceAcrossSiblings(t *testing.T) {
	m0 := FromPairs[string, int](StringHasher{}, []Pair[string, int]{
		{"a", 1}, {"b", 2}, {"c", 3},
	})
	m1 := m0.Erase("b")

	assert.Equal(t, 3, m0.Size())
	assert.Equal(t, 2, m1.Size())
	assert.True(t, m0.Contains("b"))
	assert.False(t, m1.Contains("b"))
}

func TestCollisionInsertFindErase(t *testing.T) {
	m := New[int, string](badHasher{})
	values := map[int]string{0: "a", 4: "b", 8: "c", 12: "d"}
	for k, v := range values {
		m = m.Insert(k, v, false)
	}
	require.Equal(t, len(values), m.Size())
	for k, v := range values {
		got, ok := m.Find(k)
		require.True(t, ok)
		assert.Equal(t, v, got)
	}

	m2 := m.Insert(4, "B", true)
	v, _ := m2.Find(4)
	assert.Equal(t, "B", v)
	assert.Equal(t, len(values), m2.Size())

	m3 := m.Erase(8)
	assert.Equal(t, len(values)-1, m3.Size())
	assert.False(t, m3.Contains(8))
	got, ok := m3.Find(4)
	require.True(t, ok)
	assert.Equal(t, "b", got)
}

func TestEraseCollapsesCollisionToSingleLeaf(t *testing.T) {
	m := New[int, string](badHasher{}).
		Insert(0, "a", false).
		Insert(4, "b", false)
	require.Equal(t, 2, m.Size())

	m2 := m.Erase(0)
	assert.Equal(t, 1, m2.Size())
	got, ok := m2.Find(4)
	require.True(t, ok)
	assert.Equal(t, "b", got)
	assert.False(t, m2.Contains(0))
}

func TestEraseBothMembersOfCollidingPair(t *testing.T) {
	m := New[int, string](badHasher{}).
		Insert(0, "a", false).
		Insert(4, "b", false)
	require.Equal(t, 2, m.Size())

	m1 := m.Erase(0)
	require.Equal(t, 1, m1.Size())

	m2 := m1.Erase(4)
	assert.True(t, m2.Empty())
	assert.False(t, m2.Contains(4))
}

func TestMergeDropsKeyWhenCombinerRejects(t *testing.T) {
	a := FromPairs[string, int](StringHasher{}, []Pair[string, int]{{"x", 1}, {"y", 2}})
	b := FromPairs[string, int](StringHasher{}, []Pair[string, int]{{"y", 20}, {"z", 3}})

	// symmetric difference: drop any key present in both.
	diff := func(x, y int) (int, bool) { return 0, false }
	merged := a.Merge(b, diff)

	require.Equal(t, 2, merged.Size())
	assert.False(t, merged.Contains("y"), "colliding key must be dropped when f returns false")
	v, ok := merged.Find("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = merged.Find("z")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMergeDropOnlyCollidingKeyLeavesEmptyMap(t *testing.T) {
	a := New[int, string](badHasher{}).Insert(0, "a", false)
	b := New[int, string](badHasher{}).Insert(0, "b", false)

	drop := func(x, y string) (string, bool) { return "", false }
	merged := a.Merge(b, drop)
	assert.True(t, merged.Empty())
}

func TestEqual(t *testing.T) {
	a := FromPairs[string, int](StringHasher{}, []Pair[string, int]{{"x", 1}, {"y", 2}})
	b := FromPairs[string, int](StringHasher{}, []Pair[string, int]{{"y", 2}, {"x", 1}})
	c := FromPairs[string, int](StringHasher{}, []Pair[string, int]{{"x", 1}, {"y", 3}})

	eq := func(x, y int) bool { return x == y }
	assert.True(t, a.Equal(b, eq), "insertion order must not affect equality")
	assert.False(t, a.Equal(c, eq))
}

func TestMerge(t *testing.T) {
	a := FromPairs[string, int](StringHasher{}, []Pair[string, int]{{"x", 1}, {"y", 2}})
	b := FromPairs[string, int](StringHasher{}, []Pair[string, int]{{"y", 20}, {"z", 3}})

	sum := func(x, y int) (int, bool) { return x + y, true }
	merged := a.Merge(b, sum)

	assert.Equal(t, 3, merged.Size())
	v, _ := merged.Find("x")
	assert.Equal(t, 1, v)
	v, _ = merged.Find("y")
	assert.Equal(t, 22, v)
	v, _ = merged.Find("z")
	assert.Equal(t, 3, v)
}

func TestMergeSharesUnaffectedSubtrees(t *testing.T) {
	base := New[int, string](badHasher{}).Insert(0, "a", false).Insert(4, "b", false)
	other := New[int, string](badHasher{})

	merged := base.Merge(other, func(a, b string) (string, bool) { return a, true })
	assert.True(t, base.Equal(merged, func(a, b string) bool { return a == b }))
}

func TestAllVisitsEveryEntry(t *testing.T) {
	m := New[int, string](badHasher{})
	for i := 0; i < 40; i++ {
		m = m.Insert(i, "v", false)
	}
	seen := toMap(m)
	assert.Len(t, seen, 40)
	assert.Equal(t, m.Size(), len(seen))
}

func TestDeepCollisionExceedsMaxDepth(t *testing.T) {
	m := New[int, int](badHasher{})
	for i := 0; i < 20; i++ {
		m = m.Insert(i*4, i, false)
	}
	require.Equal(t, 20, m.Size())
	for i := 0; i < 20; i++ {
		v, ok := m.Find(i * 4)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}
