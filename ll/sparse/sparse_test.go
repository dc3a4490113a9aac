package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndValue(t *testing.T) {
	M := NewIntMatrix(4, 6, -1)
	assert.Equal(t, int32(-1), M.Value(0, 0))
	M.Set(2, 3, 17).Set(0, 5, 4).Set(2, 1, 9)
	assert.Equal(t, int32(17), M.Value(2, 3))
	assert.Equal(t, int32(9), M.Value(2, 1))
	assert.Equal(t, 3, M.ValueCount())
	M.Set(2, 3, 18)
	assert.Equal(t, int32(18), M.Value(2, 3))
	assert.Equal(t, 3, M.ValueCount())
	assert.Panics(t, func() { M.Set(4, 0, 1) })
}

func TestEachInRowOrder(t *testing.T) {
	M := NewIntMatrix(3, 3, DefaultNullValue)
	M.Set(2, 0, 3).Set(0, 2, 1).Set(1, 1, DefaultNullValue).Set(0, 0, 0)
	var visited []int32
	M.Each(func(i, j int, v int32) bool {
		visited = append(visited, v)
		return true
	})
	assert.Equal(t, []int32{0, 1, 3}, visited)
	n := 0
	M.Each(func(i, j int, v int32) bool {
		n++
		return false
	})
	assert.Equal(t, 1, n)
}
