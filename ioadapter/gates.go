package ioadapter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// gateHeader is the required column order for a gate file (spec.md
// §6: "Header chip,x,y").
var gateHeader = []string{"chip", "x", "y"}

// ReadGates parses a gate CSV stream into (x,y) coordinate pairs in
// row order; the i-th row becomes gate id i+1 once passed to
// gate.NewSet. The chip column is required but its value is ignored.
func ReadGates(r io.Reader) ([][2]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingHeader, err)
	}
	if !sameHeader(header, gateHeader) {
		return nil, fmt.Errorf("%w: got %v, want %v", ErrMissingHeader, header, gateHeader)
	}

	var coords [][2]int
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: expected 3 columns, got %d", ErrMalformedRow, len(row))
		}
		x, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: x=%q: %v", ErrMalformedRow, row[1], err)
		}
		y, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: y=%q: %v", ErrMalformedRow, row[2], err)
		}
		coords = append(coords, [2]int{x, y})
	}
	return coords, nil
}

// ReadGatesFile opens path and delegates to ReadGates.
func ReadGatesFile(path string) ([][2]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGates(f)
}

func sameHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
