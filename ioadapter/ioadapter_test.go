package ioadapter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrutjes/gridrouter/ioadapter"
	"github.com/mrutjes/gridrouter/report"
)

func TestReadGates_Valid(t *testing.T) {
	csvData := "chip,x,y\nA,0,0\nA,2,0\nA,1,1\n"
	coords, err := ioadapter.ReadGates(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 0}, {2, 0}, {1, 1}}, coords)
}

func TestReadGates_BadHeader(t *testing.T) {
	_, err := ioadapter.ReadGates(strings.NewReader("a,b,c\n1,2,3\n"))
	assert.ErrorIs(t, err, ioadapter.ErrMissingHeader)
}

func TestReadGates_MalformedCoordinate(t *testing.T) {
	_, err := ioadapter.ReadGates(strings.NewReader("chip,x,y\nA,oops,0\n"))
	assert.ErrorIs(t, err, ioadapter.ErrMalformedRow)
}

func TestReadNetlist_Valid(t *testing.T) {
	csvData := "chip_a,chip_b\n1,2\n2,3\n"
	pairs, err := ioadapter.ReadNetlist(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}, {2, 3}}, pairs)
}

func TestWriteRunReport_WritesNetAndSummaryRows(t *testing.T) {
	s := report.Summary{
		Attempted: 3,
		Succeeded: 2,
		BestCost:  42,
		Nets: []report.NetOutcome{
			{GateA: 1, GateB: 2, Segments: 4},
		},
	}
	var buf strings.Builder
	require.NoError(t, ioadapter.WriteRunReport(&buf, s))

	out := buf.String()
	assert.Contains(t, out, "gate_a,gate_b,segments")
	assert.Contains(t, out, "1,2,4")
	assert.Contains(t, out, "best_cost,42")
}
