package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/colscore/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustSquare allocates an n×n *Dense filled from rows, failing the test on error.
func mustSquare(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquare(len(rows))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

func TestValidateNotNil(t *testing.T) {
	var d *matrix.Dense
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix, "typed nil must be rejected")
	assert.NoError(t, matrix.ValidateNotNil(mustSquare(t, [][]float64{{0}})))
}

func TestValidateSquare(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateSquare(mustSquare(t, [][]float64{{0, 1}, {1, 0}})))
}

func TestValidateZeroDiagonal(t *testing.T) {
	ok := mustSquare(t, [][]float64{{0, 4}, {4, 0}})
	assert.NoError(t, matrix.ValidateZeroDiagonal(ok, 0))

	bad := mustSquare(t, [][]float64{{0, 4}, {4, 1e-3}})
	assert.ErrorIs(t, matrix.ValidateZeroDiagonal(bad, 1e-9), matrix.ErrNonZeroDiagonal)
	assert.NoError(t, matrix.ValidateZeroDiagonal(bad, 1e-2), "within tolerance")
	assert.ErrorIs(t, matrix.ValidateZeroDiagonal(ok, math.NaN()), matrix.ErrNaNInf)
}

func TestValidateSymmetric(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		tol  float64
		want error
	}{
		{"single", [][]float64{{0}}, 0, nil},
		{"symmetric", [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}}, 0, nil},
		{"asymmetric", [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 4, 0}}, 0, matrix.ErrAsymmetry},
		{"negative tol flips", [][]float64{{0, 1}, {1.5, 0}}, -1, nil},
		{"inf tol", [][]float64{{0, 1}, {1, 0}}, math.Inf(1), matrix.ErrNaNInf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := matrix.ValidateSymmetric(mustSquare(t, tt.rows), tt.tol)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// raw is a Matrix without the finite-only policy of *Dense, used to feed
// non-finite values into validators.
type raw [][]float64

func (r raw) Rows() int                     { return len(r) }
func (r raw) Cols() int                     { return len(r[0]) }
func (r raw) At(i, j int) (float64, error)  { return r[i][j], nil }
func (r raw) Set(i, j int, v float64) error { r[i][j] = v; return nil }

func TestValidateFinite(t *testing.T) {
	assert.NoError(t, matrix.ValidateFinite(raw{{0, 1}, {1, 0}}))
	assert.ErrorIs(t, matrix.ValidateFinite(raw{{0, math.NaN()}, {1, 0}}), matrix.ErrNaNInf)
	assert.ErrorIs(t, matrix.ValidateFinite(raw{{0, 1}, {math.Inf(1), 0}}), matrix.ErrNaNInf)
}
