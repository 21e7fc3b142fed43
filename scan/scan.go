// Package scan finds the maximum-sum contiguous subarray of an integer
// sequence in one linear pass, reporting every element read and comparison
// to a Recorder.
package scan

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned for a nil or empty sequence.
var ErrInvalidInput = errors.New("input sequence is nil or empty")

// Recorder receives instrumentation events from a Scanner.
// *metrics.Metrics implements it.
type Recorder interface {
	Start()
	Stop()
	RecordComparison()
	RecordAccess()
	RecordMemoryAllocation()
}

// Result is the best segment found: seq[Start..End] inclusive sums to
// MaxSum.
type Result struct {
	MaxSum int `json:"max_sum"`
	Start  int `json:"start"`
	End    int `json:"end"`
}

// Scanner runs instrumented scans against the Recorder it was built with.
type Scanner struct {
	rec Recorder
}

// New returns a Scanner that reports to rec.
func New(rec Recorder) *Scanner {
	return &Scanner{rec: rec}
}

// MaxSubarray returns the maximum-sum contiguous segment of seq.
//
// The recorder is restarted on every call, so its counters describe only
// the latest scan. When several segments share the maximum sum, the first
// one found is kept. A rejected call does not touch the recorder.
func (s *Scanner) MaxSubarray(seq []int) (Result, error) {
	if len(seq) == 0 {
		return Result{}, fmt.Errorf("max subarray: %w", ErrInvalidInput)
	}

	s.rec.Start()

	s.rec.RecordAccess()
	best, cur := seq[0], seq[0]
	start, end, candidate := 0, 0, 0

	for i := 1; i < len(seq); i++ {
		s.rec.RecordAccess()
		s.rec.RecordComparison()

		if seq[i] > cur+seq[i] {
			cur = seq[i]
			candidate = i
		} else {
			cur += seq[i]
		}

		s.rec.RecordAccess()
		s.rec.RecordComparison()

		if cur > best {
			best = cur
			start = candidate
			end = i
		}
	}

	s.rec.Stop()
	s.rec.RecordMemoryAllocation()

	return Result{MaxSum: best, Start: start, End: end}, nil
}
