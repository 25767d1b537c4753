package ioadapter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// netlistHeader is the required column order for a netlist file
// (spec.md §6: "Header chip_a,chip_b").
var netlistHeader = []string{"chip_a", "chip_b"}

// ReadNetlist parses a netlist CSV stream into (a,b) gate-id pairs in
// row order, the canonical order netlist.New expects.
func ReadNetlist(r io.Reader) ([][2]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingHeader, err)
	}
	if !sameHeader(header, netlistHeader) {
		return nil, fmt.Errorf("%w: got %v, want %v", ErrMissingHeader, header, netlistHeader)
	}

	var pairs [][2]int
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: expected 2 columns, got %d", ErrMalformedRow, len(row))
		}
		a, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: chip_a=%q: %v", ErrMalformedRow, row[0], err)
		}
		b, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: chip_b=%q: %v", ErrMalformedRow, row[1], err)
		}
		pairs = append(pairs, [2]int{a, b})
	}
	return pairs, nil
}

// ReadNetlistFile opens path and delegates to ReadNetlist.
func ReadNetlistFile(path string) ([][2]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadNetlist(f)
}
