/*
Package sparse implements a simple type for sparse integer matrices.
It is used for prediction tables, where most cells are empty and every
occupied cell holds a single rule number.

Cells are stored as a sorted list of (row, column, value) triplets
(coordinate list format).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is an m x n matrix of int32 which stores only the cells that have
// been set. Unset cells read as the matrix' null-value:
//
//     M := NewIntMatrix(4, 6, -1)
//     M.Set(2, 3, 17)
//     M.Value(2, 3)    // 17
//     M.Value(0, 0)    // -1
//     M.ValueCount()   // 1
//
// Cells cannot be removed. Setting a cell to the null-value hides it from
// Each, but it still counts for ValueCount.
type IntMatrix struct {
	cells   []triplet // sorted by (row, col)
	rows    int
	cols    int
	nullval int32
}

type triplet struct {
	row, col int
	value    int32
}

// NewIntMatrix creates an empty matrix with m rows and n columns. Cells not
// set read as nullValue. Clients without a specific null-value may use
// DefaultNullValue.
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{rows: m, cols: n, nullval: nullValue}
}

// DefaultNullValue is the smallest int32.
const DefaultNullValue = -2147483648

// M is the number of rows.
func (m *IntMatrix) M() int {
	return m.rows
}

// N is the number of columns.
func (m *IntMatrix) N() int {
	return m.cols
}

// NullValue is the value of unset cells.
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount is the number of cells set.
func (m *IntMatrix) ValueCount() int {
	return len(m.cells)
}

// Value returns cell (i,j).
func (m *IntMatrix) Value(i, j int) int32 {
	if k, ok := m.find(i, j); ok {
		return m.cells[k].value
	}
	return m.nullval
}

// Set stores value at cell (i,j), replacing a previous value. It panics for
// positions outside the matrix.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("sparse: position (%d,%d) outside of %dx%d matrix", i, j, m.rows, m.cols))
	}
	k, ok := m.find(i, j)
	if ok {
		m.cells[k].value = value
		return m
	}
	m.cells = append(m.cells, triplet{})
	copy(m.cells[k+1:], m.cells[k:])
	m.cells[k] = triplet{row: i, col: j, value: value}
	return m
}

// Each calls f for the cells holding a non-null value, row by row. It stops
// as soon as f returns false.
func (m *IntMatrix) Each(f func(i, j int, value int32) bool) {
	for _, c := range m.cells {
		if c.value == m.nullval {
			continue
		}
		if !f(c.row, c.col, c.value) {
			return
		}
	}
}

// find returns the index of cell (i,j), or the index to insert it at.
func (m *IntMatrix) find(i, j int) (int, bool) {
	k := sort.Search(len(m.cells), func(k int) bool {
		c := m.cells[k]
		return c.row > i || c.row == i && c.col >= j
	})
	return k, k < len(m.cells) && m.cells[k].row == i && m.cells[k].col == j
}

func (t triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%d", t.row, t.col, t.value)
}
