// Package report formats the records of a benchmark sweep for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/weiihann/kadanebench/metrics"
)

// Generate writes a markdown table with one line per record, in sweep
// order.
func Generate(w io.Writer, records []metrics.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to report")
	}

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Size | Comparisons | Swaps | Accesses "+
		"| Allocations | Elapsed |")
	fmt.Fprintln(w, "|------|-------------|-------|----------"+
		"|-------------|---------|")

	for _, r := range records {
		fmt.Fprintf(w, "| %d | %d | %d | %d | %d | %s |\n",
			r.Size,
			r.Comparisons,
			r.Swaps,
			r.Accesses,
			r.Allocations,
			formatNs(r.ElapsedNs),
		)
	}

	return nil
}

// GenerateJSON writes records as JSON to w.
func GenerateJSON(w io.Writer, records []metrics.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(records)
}

func formatNs(ns int64) string {
	d := time.Duration(ns)

	switch {
	case ns <= 0:
		return "-"
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", ns)
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fµs", float64(ns)/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(ns)/1e6)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
