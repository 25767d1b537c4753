package ioadapter

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/mrutjes/gridrouter/report"
)

// WriteRunReport writes one row per net in s.Nets, followed by a
// trailing summary row, matching SPEC_FULL.md §9.4's CSV run-report
// export (promoted here from a one-off script habit into a reusable
// writer).
func WriteRunReport(w io.Writer, s report.Summary) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"gate_a", "gate_b", "segments"}); err != nil {
		return err
	}
	for _, n := range s.Nets {
		row := []string{
			strconv.Itoa(n.GateA),
			strconv.Itoa(n.GateB),
			strconv.Itoa(n.Segments),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"attempted", strconv.Itoa(s.Attempted), ""}); err != nil {
		return err
	}
	if err := cw.Write([]string{"succeeded", strconv.Itoa(s.Succeeded), ""}); err != nil {
		return err
	}
	if err := cw.Write([]string{"best_cost", strconv.Itoa(s.BestCost), ""}); err != nil {
		return err
	}
	return cw.Error()
}

// WriteRunReportFile creates (or truncates) path and writes s's run
// report to it.
func WriteRunReportFile(path string, s report.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteRunReport(f, s)
}
