// Package tsplib builds, writes and reads symmetric TSPLIB instances with
// explicit UPPER_ROW edge weights.
//
// 🚀 What is produced?
//
//	A column-similarity instance has one synthetic depot (node 0, distance
//	0 to everybody) followed by one city per image column:
//
//	NAME : column similarity for scan.png
//	TYPE : TSP
//	DIMENSION : 4
//	EDGE_WEIGHT_TYPE : EXPLICIT
//	EDGE_WEIGHT_FORMAT : UPPER_ROW
//	NODE_COORD_TYPE : NO_COORDS
//	DISPLAY_DATA_TYPE : NO_DISPLAY
//
//	EDGE_WEIGHT_SECTION :
//	0 0 0
//	60 61
//	1
//
// ✨ Rules that are easy to get wrong:
//   - weights are truncated toward zero, never rounded;
//   - row i carries Dimension-1-i values; the last node emits no line;
//   - there is no trailing EOF marker (Parse tolerates one).
//
// ⚙️ Usage:
//
//	dist, _ := distance.Columns(img, distance.Manhattan)
//	inst, err := tsplib.NewColumnInstance("column similarity for scan.png", dist)
//	if err != nil { … }
//	err = tsplib.Write(os.Stdout, inst)
//
// Validation mirrors what a TSP solver expects of a distance matrix: square,
// finite, non-negative, zero diagonal and symmetric.
package tsplib
