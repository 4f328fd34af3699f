// Package vecutil provides copy-on-write slice helpers used by the HAMT
// bitmap/collision nodes to splice children without mutating a shared
// slice. Grounded on original_source/src/Common/VectorUtils.h; the
// copy-then-splice shape also mirrors how the teacher's br/join helpers
// in tree.go build new nodes instead of mutating existing ones.
package vecutil

// Inserted returns a new slice with value inserted at position pos,
// leaving source unmodified.
func Inserted[T any](source []T, pos int, value T) []T {
	dst := make([]T, 0, len(source)+1)
	dst = append(dst, source[:pos]...)
	dst = append(dst, value)
	dst = append(dst, source[pos:]...)
	return dst
}

// Replaced returns a new slice with the element at pos replaced by value,
// leaving source unmodified.
func Replaced[T any](source []T, pos int, value T) []T {
	dst := make([]T, len(source))
	copy(dst, source)
	dst[pos] = value
	return dst
}

// Erased returns a new slice with the element at pos removed, leaving
// source unmodified.
func Erased[T any](source []T, pos int) []T {
	dst := make([]T, 0, len(source)-1)
	dst = append(dst, source[:pos]...)
	dst = append(dst, source[pos+1:]...)
	return dst
}
