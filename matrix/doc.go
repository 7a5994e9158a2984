// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 matrix used to hold
// column-distance tables, together with the structural validators the
// TSPLIB layer relies on.
//
// What & Why:
//
//	A column-similarity instance is a symmetric n×n table of non-negative
//	distances with a zero diagonal. Dense keeps it in one flat slice
//	(offset = i*cols + j) so the distance kernel can fill the strict upper
//	triangle and mirror it in a single pass, and the serializer can stream
//	each row's upper part without extra allocations.
//
// Safety:
//
//   - At/Set never panic on user input; they return ErrOutOfRange or ErrNaNInf.
//   - NaN/±Inf are rejected by Set (finite-only numeric policy).
//   - Validators return wrapped sentinels; match them with errors.Is.
//
// Complexity:
//
//   - NewDense O(r*c) zero-init; At/Set O(1); Clone O(r*c).
//   - ValidateSymmetric / ValidateZeroDiagonal O(n²) / O(n).
package matrix
