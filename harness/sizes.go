// Package harness drives benchmark sweeps: for every requested input size it
// generates a sequence, runs an instrumented scan and appends the metrics
// to the benchmark log.
package harness

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidSizes is returned when a requested size set cannot be used.
var ErrInvalidSizes = errors.New("invalid size set")

// MaxSize is the largest accepted input size.
const MaxSize = math.MaxInt32

// DefaultSizes returns the sizes swept when no valid set is requested.
func DefaultSizes() []int {
	return []int{100, 1000, 10000, 100000}
}

// ValidateSizes rejects an empty set or one containing a size outside
// [1, MaxSize].
func ValidateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidSizes)
	}

	for _, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("%w: size %d is not positive", ErrInvalidSizes, size)
		}

		if size > MaxSize {
			return fmt.Errorf("%w: size %d exceeds %d", ErrInvalidSizes, size, MaxSize)
		}
	}

	return nil
}

// ParseSizes converts textual sizes into integers. The set is accepted
// only as a whole: a single empty, non-numeric, out-of-range or
// non-positive entry rejects it.
func ParseSizes(args []string) ([]int, error) {
	sizes := make([]int, 0, len(args))

	for _, arg := range args {
		size, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a 32-bit integer", ErrInvalidSizes, arg)
		}

		sizes = append(sizes, int(size))
	}

	if err := ValidateSizes(sizes); err != nil {
		return nil, err
	}

	return sizes, nil
}
