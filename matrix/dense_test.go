// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/colscore/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0) // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSquare(-1) // negative order
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSquare(math.MaxInt / 2) // r*c overflows int
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(math.MaxInt, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0) // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2) // column out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23) // row out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56) // negative column
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf checks the finite-only numeric policy of Set and SetSym.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 1, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.SetSym(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetSym checks that SetSym writes both mirrored cells and refuses non-square shapes.
func TestSetSym(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)

	require.NoError(t, m.SetSym(0, 2, 5))

	a, _ := m.At(0, 2)
	b, _ := m.At(2, 0)
	require.Equal(t, 5.0, a)
	require.Equal(t, 5.0, b)

	err = m.SetSym(3, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, rect.SetSym(0, 1, 1), matrix.ErrDimensionMismatch)
}

// TestUpperRow covers the strict upper part of each row including the empty last row.
func TestUpperRow(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)
	require.NoError(t, m.SetSym(0, 1, 1))
	require.NoError(t, m.SetSym(0, 2, 2))
	require.NoError(t, m.SetSym(1, 2, 3))

	row, err := m.UpperRow(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, row)

	row, err = m.UpperRow(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3}, row)

	row, err = m.UpperRow(2)
	require.NoError(t, err)
	require.NotNil(t, row)
	require.Empty(t, row)

	_, err = m.UpperRow(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0) // modify the clone only

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4.5)

	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
