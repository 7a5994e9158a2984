package tsplib

import (
	"bufio"
	"io"
	"math"
	"strconv"
)

// Truncate converts a weight to the integer written to the file: the
// fractional part is discarded toward zero (3.9 → 3, never 4).
func Truncate(w float64) int64 {
	return int64(math.Trunc(w))
}

// Write serializes inst as an EXPLICIT / UPPER_ROW TSPLIB instance.
//
// Row i of EDGE_WEIGHT_SECTION holds d(i, i+1) … d(i, n-1), truncated and
// separated by single spaces; the last node produces no line. For a column
// instance row 0 is the depot row of Dimension-1 zeros, produced without
// storing the depot in Weights.
//
// Complexity: O(n²) time, O(n) scratch.
func Write(w io.Writer, inst *Instance) error {
	if inst == nil || inst.Weights == nil {
		return ErrNilInstance
	}
	n := inst.Dimension()

	bw := bufio.NewWriter(w)
	writeHeader(bw, KeyName, inst.Name)
	writeHeader(bw, KeyType, TypeTSP)
	writeHeader(bw, KeyDimension, strconv.Itoa(n))
	writeHeader(bw, KeyEdgeWeightType, WeightExplicit)
	writeHeader(bw, KeyEdgeWeightFormat, FormatUpperRow)
	writeHeader(bw, KeyNodeCoordType, CoordNone)
	writeHeader(bw, KeyDisplayDataType, DisplayNone)
	bw.WriteByte('\n')
	bw.WriteString(KeyEdgeWeightSec + sectionTerminator + "\n")

	var (
		buf []byte
		row []float64
		err error
		i   int
	)
	for i = 0; i < n-1; i++ {
		if row, err = inst.upperRow(i); err != nil {
			return err
		}
		buf = appendRow(buf[:0], row)
		if _, err = bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// writeHeader emits "KEY : value\n". Write errors are sticky in bufio and
// surface on Flush.
func writeHeader(bw *bufio.Writer, key, value string) {
	bw.WriteString(key)
	bw.WriteString(headerSeparator)
	bw.WriteString(value)
	bw.WriteByte('\n')
}

// appendRow renders one space-separated row of truncated weights plus '\n'.
func appendRow(dst []byte, row []float64) []byte {
	for k, v := range row {
		if k > 0 {
			dst = append(dst, ' ')
		}
		dst = strconv.AppendInt(dst, Truncate(v), 10)
	}

	return append(dst, '\n')
}
