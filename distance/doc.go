// Package distance computes pairwise dissimilarities between image column
// vectors.
//
// Each column of an H×W RGB image is flattened into a vector of H*3
// components (see imageio.Image.Column); Pairwise then fills a W×W
// symmetric matrix with zero diagonal. Manhattan (L1, "cityblock") is the
// default metric; Euclidean (L2) and Chebyshev (L∞) are available for
// experimentation. Per-pair work is delegated to gonum's floats.Distance.
//
// Complexity: O(W²·H) time, O(W²) memory for the result.
package distance
