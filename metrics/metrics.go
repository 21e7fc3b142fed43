// Package metrics accumulates operation counters and wall-clock timing for
// a single instrumented algorithm run and exports them as CSV rows.
package metrics

import "time"

// Metrics is a resettable set of counters for one run. It is not safe for
// concurrent use; each run owns its own instance.
type Metrics struct {
	comparisons int64
	swaps       int64
	accesses    int64
	allocations int64
	start       time.Time
	end         time.Time

	now func() time.Time
}

// New returns zeroed Metrics.
func New() *Metrics {
	return &Metrics{now: time.Now}
}

// Reset zeroes every counter and both timestamps.
func (m *Metrics) Reset() {
	m.comparisons = 0
	m.swaps = 0
	m.accesses = 0
	m.allocations = 0
	m.start = time.Time{}
	m.end = time.Time{}
}

// Start resets the metrics and captures the begin timestamp.
func (m *Metrics) Start() {
	m.Reset()
	m.start = m.clock()
}

// Stop captures the end timestamp.
func (m *Metrics) Stop() {
	m.end = m.clock()
}

// RecordComparison counts one comparison between values.
func (m *Metrics) RecordComparison() { m.comparisons++ }

// RecordSwap counts one exchange of two elements.
func (m *Metrics) RecordSwap() { m.swaps++ }

// RecordAccess counts one read of an input element.
func (m *Metrics) RecordAccess() { m.accesses++ }

// RecordMemoryAllocation counts one allocated value.
func (m *Metrics) RecordMemoryAllocation() { m.allocations++ }

// Comparisons returns the number of recorded comparisons.
func (m *Metrics) Comparisons() int64 { return m.comparisons }

// Swaps returns the number of recorded swaps.
func (m *Metrics) Swaps() int64 { return m.swaps }

// Accesses returns the number of recorded element reads.
func (m *Metrics) Accesses() int64 { return m.accesses }

// Allocations returns the number of recorded allocations.
func (m *Metrics) Allocations() int64 { return m.allocations }

// Elapsed returns the time between Start and Stop. It is zero until both
// have been called.
func (m *Metrics) Elapsed() time.Duration {
	if m.start.IsZero() || m.end.IsZero() {
		return 0
	}

	return m.end.Sub(m.start)
}

// Snapshot returns the current counters as a log row for an input of the
// given size.
func (m *Metrics) Snapshot(size int) Record {
	return Record{
		Size:        int64(size),
		Comparisons: m.comparisons,
		Swaps:       m.swaps,
		Accesses:    m.accesses,
		Allocations: m.allocations,
		ElapsedNs:   m.Elapsed().Nanoseconds(),
	}
}

func (m *Metrics) clock() time.Time {
	if m.now == nil {
		return time.Now()
	}

	return m.now()
}
