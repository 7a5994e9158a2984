package tsplib

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/colscore/matrix"
)

// Header keywords and the only values this package emits.
const (
	KeyName             = "NAME"
	KeyType             = "TYPE"
	KeyDimension        = "DIMENSION"
	KeyEdgeWeightType   = "EDGE_WEIGHT_TYPE"
	KeyEdgeWeightFormat = "EDGE_WEIGHT_FORMAT"
	KeyNodeCoordType    = "NODE_COORD_TYPE"
	KeyDisplayDataType  = "DISPLAY_DATA_TYPE"
	KeyEdgeWeightSec    = "EDGE_WEIGHT_SECTION"
	KeyEOF              = "EOF"

	TypeTSP           = "TSP"
	WeightExplicit    = "EXPLICIT"
	FormatUpperRow    = "UPPER_ROW"
	CoordNone         = "NO_COORDS"
	DisplayNone       = "NO_DISPLAY"
	ColumnNamePrefix  = "column similarity for"
	depotNode         = 0
	headerSeparator   = " : "
	sectionTerminator = " :"
)

// Instance is a symmetric TSP with explicit weights over Dimension nodes.
// Only the strict upper triangle of the weights is serialized.
type Instance struct {
	// Name is written verbatim to the NAME header.
	Name string

	// Weights holds d(i,j) for every node pair, or for the cities only when
	// Depot is set. It is validated by the constructors and must not be
	// mutated afterwards.
	Weights *matrix.Dense

	// Depot adds an implicit node 0 at distance 0 from every other node;
	// Weights row k is then node k+1.
	Depot bool
}

// New validates weights and wraps them in an Instance.
func New(name string, weights *matrix.Dense) (*Instance, error) {
	if weights == nil {
		return nil, ErrNilInstance
	}
	if _, err := Validate(weights); err != nil {
		return nil, err
	}

	return &Instance{Name: name, Weights: weights}, nil
}

// NewColumnInstance validates the width×width column distance matrix dist
// and returns the instance with a depot prepended: node 0 is the depot at
// distance 0 from every city and node c+1 is column c. dist is kept as is,
// not copied.
//
// Complexity: O(width²) for validation, no extra storage.
func NewColumnInstance(name string, dist *matrix.Dense) (*Instance, error) {
	if dist == nil {
		return nil, ErrNilInstance
	}
	if _, err := Validate(dist); err != nil {
		return nil, err
	}

	return &Instance{Name: name, Weights: dist, Depot: true}, nil
}

// ColumnName builds the NAME header for an image path, e.g.
// ColumnName(ColumnNamePrefix, "scan.png"). An empty prefix yields the bare path.
func ColumnName(prefix, imagePath string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return imagePath
	}

	return prefix + " " + imagePath
}

// Dimension returns the number of nodes, depot included.
func (inst *Instance) Dimension() int {
	if inst == nil || inst.Weights == nil {
		return 0
	}
	if inst.Depot {
		return inst.Weights.Rows() + 1
	}

	return inst.Weights.Rows()
}

// Weight returns d(i,j) over all Dimension nodes.
func (inst *Instance) Weight(i, j int) (float64, error) {
	if inst == nil || inst.Weights == nil {
		return 0, ErrNilInstance
	}
	if !inst.Depot {
		return inst.Weights.At(i, j)
	}
	n := inst.Dimension()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("Weight(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	if i == depotNode || j == depotNode {
		return 0, nil
	}

	return inst.Weights.At(i-1, j-1)
}

// upperRow returns d(i, i+1) … d(i, Dimension-1).
func (inst *Instance) upperRow(i int) ([]float64, error) {
	if !inst.Depot {
		return inst.Weights.UpperRow(i)
	}
	if i == depotNode {
		return make([]float64, inst.Weights.Rows()), nil
	}

	return inst.Weights.UpperRow(i - 1)
}

// DropDepot returns a fresh (Dimension-1)×(Dimension-1) matrix between the
// real cities, i.e. the column distance matrix of a column instance. For an
// instance without Depot, node 0 is taken as the depot.
func (inst *Instance) DropDepot() (*matrix.Dense, error) {
	n := inst.Dimension()
	if n < 2 {
		return nil, fmt.Errorf("DropDepot: dimension %d: %w", n, ErrNonSquare)
	}
	if inst.Depot {
		return inst.Weights.Clone(), nil
	}
	out, err := matrix.NewSquare(n - 1)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = depotNode + 1; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v, _ = inst.Weights.At(i, j)
			if err = out.SetSym(i-1, j-1, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
