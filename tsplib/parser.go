package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/colscore/matrix"
)

// maxToken bounds a single whitespace-separated token in the weight section.
const maxToken = 1 << 16

// header collects the keyword lines that precede the weight section.
type header struct {
	name      string
	dimension int
	typ       string
	weightTyp string
	format    string
}

// Parse reads a TSPLIB instance with EXPLICIT / UPPER_ROW weights and
// rebuilds the full symmetric weight matrix. Header keys other than the
// ones this package writes (e.g. COMMENT) are ignored; a trailing EOF
// line is optional. The matrix is allocated only once the section holds
// exactly DIMENSION·(DIMENSION-1)/2 weights, so memory follows the input
// rather than the declared DIMENSION.
//
// Errors:
//   - ErrMalformed for grammar violations, bad numbers, a DIMENSION whose
//     matrix cannot be addressed, or a weight count different from
//     DIMENSION·(DIMENSION-1)/2.
//   - ErrUnsupportedFormat for TYPE other than TSP or another weight layout.
//   - validation sentinels (ErrNegativeWeight, …) from Validate.
func Parse(r io.Reader) (*Instance, error) {
	br := bufio.NewReader(r)

	h, err := parseHeader(br)
	if err != nil {
		return nil, err
	}

	values, err := parseUpperRow(br, h.dimension)
	if err != nil {
		return nil, err
	}
	weights, err := fillUpper(h.dimension, values)
	if err != nil {
		return nil, err
	}

	return New(h.name, weights)
}

// parseHeader consumes "KEY : VALUE" lines up to EDGE_WEIGHT_SECTION.
func parseHeader(br *bufio.Reader) (header, error) {
	var (
		h       header
		line    string
		lineNo  int
		err     error
		section bool
	)
	for !section {
		line, err = br.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			if err == io.EOF {
				return h, fmt.Errorf("%w: missing %s", ErrMalformed, KeyEdgeWeightSec)
			}
			return h, err
		}
		lineNo++
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == KeyEdgeWeightSec {
			section = true
			continue
		}
		if !found {
			return h, fmt.Errorf("%w: line %d: %q", ErrMalformed, lineNo, line)
		}

		switch key {
		case KeyName:
			h.name = value
		case KeyType:
			h.typ = value
		case KeyDimension:
			h.dimension, err = strconv.Atoi(value)
			if err != nil || h.dimension <= 0 {
				return h, fmt.Errorf("%w: line %d: bad %s %q", ErrMalformed, lineNo, KeyDimension, value)
			}
			// n² cells must be addressable.
			if h.dimension > math.MaxInt/h.dimension {
				return h, fmt.Errorf("%w: line %d: %s %d too large", ErrMalformed, lineNo, KeyDimension, h.dimension)
			}
		case KeyEdgeWeightType:
			h.weightTyp = value
		case KeyEdgeWeightFormat:
			h.format = value
		}
	}

	if h.dimension == 0 {
		return h, fmt.Errorf("%w: missing %s", ErrMalformed, KeyDimension)
	}
	if h.typ != TypeTSP {
		return h, fmt.Errorf("%w: %s %q", ErrUnsupportedFormat, KeyType, h.typ)
	}
	if h.weightTyp != WeightExplicit {
		return h, fmt.Errorf("%w: %s %q", ErrUnsupportedFormat, KeyEdgeWeightType, h.weightTyp)
	}
	if h.format != FormatUpperRow {
		return h, fmt.Errorf("%w: %s %q", ErrUnsupportedFormat, KeyEdgeWeightFormat, h.format)
	}

	return h, nil
}

// parseUpperRow reads the n·(n-1)/2 weights of the section in row order.
func parseUpperRow(br *bufio.Reader, n int) ([]float64, error) {
	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 0, 4096), maxToken)
	sc.Split(bufio.ScanWords)

	var (
		want   = n * (n - 1) / 2 // n² fits an int, checked by parseHeader
		values []float64
		v      float64
		err    error
		tok    string
	)
	for sc.Scan() {
		tok = sc.Text()
		if tok == KeyEOF {
			break // anything after EOF is ignored, as TSPLIB readers do
		}
		if len(values) == want {
			return nil, fmt.Errorf("%w: more than %d weights", ErrMalformed, want)
		}
		if v, err = strconv.ParseFloat(tok, 64); err != nil {
			return nil, fmt.Errorf("%w: weight %d: %q", ErrMalformed, len(values), tok)
		}
		values = append(values, v)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(values) != want {
		return nil, fmt.Errorf("%w: got %d weights, want %d", ErrMalformed, len(values), want)
	}

	return values, nil
}

// fillUpper lays values out over the strict upper triangle of an n×n
// matrix in row order and mirrors them.
func fillUpper(n int, values []float64) (*matrix.Dense, error) {
	weights, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = weights.SetSym(i, j, values[k]); err != nil {
				return nil, fmt.Errorf("%w: weight %d: %w", ErrMalformed, k, err)
			}
			k++
		}
	}

	return weights, nil
}
