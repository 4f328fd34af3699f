package plist

import "sort"

type versionEntry[V any] struct {
	version int
	value   V
}

// versionMap is a small association from version id to V, kept sorted by
// versionOrder's temporal weight rather than by the raw int id. It plays
// the role of the original's std::map<int, V, CmpByListVersion>: fat
// nodes never hold more than maxSizeFatNode entries, so a sorted slice
// with a binary-searched insertion point is simpler than a balanced tree
// and just as fast at this size.
type versionMap[V any] struct {
	order   *versionOrder
	entries []versionEntry[V]
}

func newVersionMap[V any](order *versionOrder) *versionMap[V] {
	return &versionMap[V]{order: order}
}

func (m *versionMap[V]) size() int { return len(m.entries) }

// lowerBound returns the index of the first entry whose version is not
// temporally before version (i.e. >= version).
func (m *versionMap[V]) lowerBound(version int) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return !m.order.less(m.entries[i].version, version)
	})
}

// upperBound returns the index of the first entry strictly after version.
func (m *versionMap[V]) upperBound(version int) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return m.order.less(version, m.entries[i].version)
	})
}

// set inserts or overwrites the entry for version.
func (m *versionMap[V]) set(version int, value V) {
	idx := m.lowerBound(version)
	if idx < len(m.entries) && m.entries[idx].version == version {
		m.entries[idx].value = value
		return
	}
	m.entries = append(m.entries, versionEntry[V]{})
	copy(m.entries[idx+1:], m.entries[idx:])
	m.entries[idx] = versionEntry[V]{version: version, value: value}
}

// getExact reports the value stored for exactly version, without falling
// back to a predecessor.
func (m *versionMap[V]) getExact(version int) (V, bool) {
	idx := m.lowerBound(version)
	if idx < len(m.entries) && m.entries[idx].version == version {
		return m.entries[idx].value, true
	}
	var zero V
	return zero, false
}

// find returns the value visible as of version: the entry for the latest
// version not temporally after it. Precondition: such an entry exists.
func (m *versionMap[V]) find(version int) V {
	idx := m.upperBound(version)
	if idx == 0 {
		var zero V
		return zero
	}
	return m.entries[idx-1].value
}

// copyFrom copies every entry of src whose version is not temporally
// before from into m.
func (m *versionMap[V]) copyFrom(src *versionMap[V], from int) {
	idx := src.lowerBound(from)
	for _, e := range src.entries[idx:] {
		m.set(e.version, e.value)
	}
}
