package tsplib

import "errors"

var (
	// ErrNilInstance indicates a nil *Instance or a nil weight matrix.
	ErrNilInstance = errors.New("tsplib: nil instance")

	// ErrNonSquare indicates a weight matrix that is not square or is empty.
	ErrNonSquare = errors.New("tsplib: distance matrix is not square")

	// ErrNonFinite indicates a NaN or ±Inf weight.
	ErrNonFinite = errors.New("tsplib: distance is NaN or Inf")

	// ErrNegativeWeight indicates a negative off-diagonal weight.
	ErrNegativeWeight = errors.New("tsplib: negative distance")

	// ErrNonZeroDiagonal indicates a node at non-zero distance from itself.
	ErrNonZeroDiagonal = errors.New("tsplib: diagonal is not zero")

	// ErrAsymmetry indicates d(i,j) != d(j,i).
	ErrAsymmetry = errors.New("tsplib: distance matrix is not symmetric")

	// ErrMalformed indicates input that does not follow the TSPLIB grammar.
	ErrMalformed = errors.New("tsplib: malformed instance")

	// ErrUnsupportedFormat indicates a well-formed instance using a type or
	// edge-weight layout other than TSP / EXPLICIT / UPPER_ROW.
	ErrUnsupportedFormat = errors.New("tsplib: unsupported instance format")
)
