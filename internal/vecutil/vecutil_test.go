package vecutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInserted(t *testing.T) {
	src := []int{1, 2, 4}
	got := Inserted(src, 2, 3)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Equal(t, []int{1, 2, 4}, src, "source must be untouched")
}

func TestReplaced(t *testing.T) {
	src := []int{1, 2, 9}
	got := Replaced(src, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, []int{1, 2, 9}, src)
}

func TestErased(t *testing.T) {
	src := []int{1, 99, 2}
	got := Erased(src, 1)
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{1, 99, 2}, src)
}

func TestInsertedAtEnds(t *testing.T) {
	src := []int{2, 3}
	assert.Equal(t, []int{1, 2, 3}, Inserted(src, 0, 1))
	assert.Equal(t, []int{2, 3, 4}, Inserted(src, len(src), 4))
}
