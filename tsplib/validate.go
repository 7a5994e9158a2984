package tsplib

import (
	"fmt"

	"github.com/katalvlaran/colscore/matrix"
)

// symTol is the structural tolerance for symmetry and diagonal checks.
// Column distances are sums of integer differences, so it only absorbs
// float noise from non-L1 metrics.
const symTol = 1e-9

// Validate performs full distance-matrix validation:
//   - non-nil, square, n>=1,
//   - every entry finite,
//   - diagonal ≈ 0 (|a_ii| ≤ symTol),
//   - no negative off-diagonal distances,
//   - |a_ij − a_ji| ≤ symTol.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func Validate(dist matrix.Matrix) (int, error) {
	// Stage 1: shape checks.
	if matrix.ValidateNotNil(dist) != nil {
		return 0, ErrNilInstance
	}
	if matrix.ValidateSquare(dist) != nil || dist.Rows() <= 0 {
		return 0, fmt.Errorf("%dx%d: %w", dist.Rows(), dist.Cols(), ErrNonSquare)
	}
	n := dist.Rows()

	// Stage 2: finiteness via the matrix validator, then negativity.
	if err := matrix.ValidateFinite(dist); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNonFinite, err)
	}
	var (
		i, j int
		aij  float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aij, _ = dist.At(i, j) // in range after Stage 1
			if i != j && aij < 0 {
				return 0, fmt.Errorf("d(%d,%d)=%g: %w", i, j, aij, ErrNegativeWeight)
			}
		}
	}

	// Stage 3: diagonal and symmetry via the matrix validators.
	if err := matrix.ValidateZeroDiagonal(dist, symTol); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNonZeroDiagonal, err)
	}
	if err := matrix.ValidateSymmetric(dist, symTol); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrAsymmetry, err)
	}

	return n, nil
}
