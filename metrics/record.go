package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
)

// Header lists the CSV columns of a benchmark log, in row order.
var Header = []string{
	"size",
	"comparisons",
	"swaps",
	"arrayAccesses",
	"memoryAllocations",
	"executionTimeNs",
}

// Record is one row of the benchmark log.
type Record struct {
	Size        int64 `json:"size"`
	Comparisons int64 `json:"comparisons"`
	Swaps       int64 `json:"swaps"`
	Accesses    int64 `json:"array_accesses"`
	Allocations int64 `json:"memory_allocations"`
	ElapsedNs   int64 `json:"execution_time_ns"`
}

func (r Record) fields() []string {
	return []string{
		strconv.FormatInt(r.Size, 10),
		strconv.FormatInt(r.Comparisons, 10),
		strconv.FormatInt(r.Swaps, 10),
		strconv.FormatInt(r.Accesses, 10),
		strconv.FormatInt(r.Allocations, 10),
		strconv.FormatInt(r.ElapsedNs, 10),
	}
}

// Export appends the current metrics for an input of the given size to the
// CSV log at path. The header row is written first only if the file did not
// exist when Export was called. A returned error leaves m untouched.
func (m *Metrics) Export(path string, size int) error {
	return AppendFile(path, m.Snapshot(size))
}

// AppendFile appends rec to the CSV log at path, creating it with a header
// row if it does not exist yet.
func AppendFile(path string, rec Record) error {
	_, err := os.Stat(path)
	isNew := errors.Is(err, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log %s: %w", path, err)
	}

	if err := AppendRecord(f, rec, isNew); err != nil {
		f.Close()

		return fmt.Errorf("write log %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close log %s: %w", path, err)
	}

	return nil
}

// AppendRecord writes rec as one CSV line to w, preceded by the header line
// when header is true.
func AppendRecord(w io.Writer, rec Record, header bool) error {
	cw := csv.NewWriter(w)

	if header {
		if err := cw.Write(Header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	if err := cw.Write(rec.fields()); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	cw.Flush()

	return cw.Error()
}
