package distance

import (
	"fmt"

	"github.com/katalvlaran/colscore/imageio"
	"github.com/katalvlaran/colscore/matrix"
	"gonum.org/v1/gonum/floats"
)

// Between returns the distance between a and b under metric m.
//
// Errors:
//   - ErrEmptyInput if either vector is empty.
//   - ErrRaggedInput if lengths differ.
//   - ErrUnknownMetric for an unsupported m.
func Between(a, b []float64, m Metric) (float64, error) {
	L, err := m.norm()
	if err != nil {
		return 0, err
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyInput
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrRaggedInput, len(a), len(b))
	}

	return floats.Distance(a, b, L), nil
}

// Pairwise builds the n×n distance matrix of vectors under metric m.
// Only the strict upper triangle is computed; each value is mirrored so the
// result is symmetric with a zero diagonal. A single vector yields a 1×1
// zero matrix.
//
// Errors: ErrEmptyInput, ErrRaggedInput, ErrUnknownMetric.
//
// Complexity: O(n²·d) time for d-dimensional vectors, O(n²) memory.
func Pairwise(vectors [][]float64, m Metric) (*matrix.Dense, error) {
	L, err := m.norm()
	if err != nil {
		return nil, err
	}
	n := len(vectors)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	d := len(vectors[0])
	if d == 0 {
		return nil, ErrEmptyInput
	}
	for i, v := range vectors {
		if len(v) != d {
			return nil, fmt.Errorf("%w: vector %d has %d components, want %d", ErrRaggedInput, i, len(v), d)
		}
	}

	out, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = out.SetSym(i, j, floats.Distance(vectors[i], vectors[j], L)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Columns computes the width×width distance matrix between the columns of img.
func Columns(img *imageio.Image, m Metric) (*matrix.Dense, error) {
	if img == nil {
		return nil, ErrEmptyInput
	}

	return Pairwise(img.Columns(), m)
}
