package distance

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrUnknownMetric is returned for a Metric value or name outside the supported set.
	ErrUnknownMetric = errors.New("distance: unknown metric")

	// ErrEmptyInput indicates no vectors, or vectors of length zero.
	ErrEmptyInput = errors.New("distance: empty input")

	// ErrRaggedInput indicates vectors of differing lengths.
	ErrRaggedInput = errors.New("distance: vectors differ in length")
)

// Metric selects the norm used to compare two column vectors.
type Metric int

const (
	// Manhattan is the L1 (cityblock) distance: Σ|a[k]-b[k]|.
	Manhattan Metric = iota
	// Euclidean is the L2 distance: sqrt(Σ(a[k]-b[k])²).
	Euclidean
	// Chebyshev is the L∞ distance: max|a[k]-b[k]|.
	Chebyshev
)

// DefaultMetric is used when nothing else is configured.
const DefaultMetric = Manhattan

func (m Metric) String() string {
	switch m {
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	case Chebyshev:
		return "chebyshev"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// norm returns the L parameter for gonum's floats.Distance.
func (m Metric) norm() (float64, error) {
	switch m {
	case Manhattan:
		return 1, nil
	case Euclidean:
		return 2, nil
	case Chebyshev:
		return math.Inf(1), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownMetric, m)
	}
}

// ParseMetric maps a user-facing name to a Metric. Matching is
// case-insensitive; "cityblock"/"l1", "l2" and "linf" are accepted aliases.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manhattan", "cityblock", "l1":
		return Manhattan, nil
	case "euclidean", "l2":
		return Euclidean, nil
	case "chebyshev", "linf":
		return Chebyshev, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// UnmarshalText lets a Metric be decoded straight from YAML or flag text.
func (m *Metric) UnmarshalText(text []byte) error {
	v, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// MarshalText renders the canonical metric name.
func (m Metric) MarshalText() ([]byte, error) {
	if _, err := m.norm(); err != nil {
		return nil, err
	}

	return []byte(m.String()), nil
}
