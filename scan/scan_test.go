package scan

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiihann/kadanebench/metrics"
)

// countingRecorder tracks every call so rejected scans can be checked for
// side effects, including Start and Stop.
type countingRecorder struct {
	starts, stops, comparisons, accesses, allocations int
}

func (r *countingRecorder) Start()                  { r.starts++ }
func (r *countingRecorder) Stop()                   { r.stops++ }
func (r *countingRecorder) RecordComparison()       { r.comparisons++ }
func (r *countingRecorder) RecordAccess()           { r.accesses++ }
func (r *countingRecorder) RecordMemoryAllocation() { r.allocations++ }

func TestMaxSubarray(t *testing.T) {
	tests := []struct {
		name string
		seq  []int
		want Result
	}{
		{
			name: "single element",
			seq:  []int{5},
			want: Result{MaxSum: 5, Start: 0, End: 0},
		},
		{
			name: "all equal keeps full span",
			seq:  []int{5, 5, 5, 5, 5, 5, 5},
			want: Result{MaxSum: 35, Start: 0, End: 6},
		},
		{
			name: "all negative",
			seq:  []int{-2, -5, -10, -9, -1, -2, -7, -11},
			want: Result{MaxSum: -1, Start: 4, End: 4},
		},
		{
			name: "mixed",
			seq:  []int{-8, 7, 11, 4, 0, -17, 41, -50, 30, 21, 5},
			want: Result{MaxSum: 56, Start: 8, End: 10},
		},
		{
			name: "earlier tie wins",
			seq:  []int{3, -5, 3},
			want: Result{MaxSum: 3, Start: 0, End: 0},
		},
		{
			name: "zeros",
			seq:  []int{0, 0, 0},
			want: Result{MaxSum: 0, Start: 0, End: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(metrics.New()).MaxSubarray(tt.seq)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MaxSubarray(%v) mismatch (-want +got):\n%s", tt.seq, diff)
			}
		})
	}
}

func TestMaxSubarrayInvalidInput(t *testing.T) {
	for name, seq := range map[string][]int{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			rec := &countingRecorder{}

			_, err := New(rec).MaxSubarray(seq)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Equal(t, countingRecorder{}, *rec, "recorder must be untouched")
		})
	}
}

func TestMaxSubarrayRejectedKeepsPriorMetrics(t *testing.T) {
	m := metrics.New()
	s := New(m)

	_, err := s.MaxSubarray([]int{1, 2, 3})
	require.NoError(t, err)

	before := m.Snapshot(3)

	_, err = s.MaxSubarray(nil)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, before, m.Snapshot(3))
}

func TestMaxSubarraySingleElementCounts(t *testing.T) {
	m := metrics.New()

	_, err := New(m).MaxSubarray([]int{5})
	require.NoError(t, err)

	assert.Zero(t, m.Comparisons())
	assert.Equal(t, int64(1), m.Accesses())
	assert.Equal(t, int64(1), m.Allocations())
	assert.Zero(t, m.Swaps())
}

func TestMaxSubarrayCounts(t *testing.T) {
	for _, n := range []int{2, 7, 100} {
		seq := make([]int, n)
		for i := range seq {
			seq[i] = i%7 - 3
		}

		rec := &countingRecorder{}

		_, err := New(rec).MaxSubarray(seq)
		require.NoError(t, err)

		assert.Equal(t, 1, rec.starts)
		assert.Equal(t, 1, rec.stops)
		assert.Equal(t, 2*(n-1), rec.comparisons, "n=%d", n)
		assert.Equal(t, 2*n-1, rec.accesses, "n=%d", n)
		assert.Equal(t, 1, rec.allocations)
	}
}

func TestMaxSubarrayDoesNotAccumulate(t *testing.T) {
	m := metrics.New()
	s := New(m)

	for i := 0; i < 3; i++ {
		_, err := s.MaxSubarray([]int{1, -2, 3, 4})
		require.NoError(t, err)

		assert.Equal(t, int64(6), m.Comparisons())
		assert.Equal(t, int64(7), m.Accesses())
		assert.Equal(t, int64(1), m.Allocations())
	}
}

func TestMaxSubarrayMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 500; iter++ {
		seq := make([]int, 1+rng.Intn(40))
		for i := range seq {
			seq[i] = rng.Intn(21) - 10
		}

		got, err := New(metrics.New()).MaxSubarray(seq)
		require.NoError(t, err)

		require.True(t, 0 <= got.Start && got.Start <= got.End && got.End < len(seq),
			"indices out of range: %+v for %v", got, seq)
		assert.Equal(t, sum(seq[got.Start:got.End+1]), got.MaxSum, "seq=%v", seq)
		assert.Equal(t, bruteForceMax(seq), got.MaxSum, "seq=%v", seq)
	}
}

func sum(seq []int) int {
	total := 0
	for _, v := range seq {
		total += v
	}

	return total
}

func bruteForceMax(seq []int) int {
	best := seq[0]
	for i := range seq {
		total := 0
		for j := i; j < len(seq); j++ {
			total += seq[j]
			best = max(best, total)
		}
	}

	return best
}
