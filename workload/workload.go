// Package workload generates deterministic integer sequences for the
// maximum-subarray benchmark. Generators built from the same Config yield
// identical sequences.
package workload

import (
	"fmt"
	mrand "math/rand"
)

// Default generation parameters.
const (
	DefaultSeed     int64 = 42
	DefaultMinValue       = -50
	DefaultMaxValue       = 49
)

// Config controls sequence generation.
type Config struct {
	Seed int64
	Min  int
	Max  int
}

// DefaultConfig returns the fixed seed and the [-50, 49] value range.
func DefaultConfig() Config {
	return Config{
		Seed: DefaultSeed,
		Min:  DefaultMinValue,
		Max:  DefaultMaxValue,
	}
}

// Validate reports whether the value range is usable: Min <= Max and the
// range holds at most math.MaxInt values.
func (c Config) Validate() error {
	if c.Min > c.Max {
		return fmt.Errorf("invalid value range [%d, %d]", c.Min, c.Max)
	}

	// Wraps to zero or below when the range is wider than an int.
	if c.Max-c.Min+1 <= 0 {
		return fmt.Errorf("value range [%d, %d] is too wide", c.Min, c.Max)
	}

	return nil
}

// Generator produces deterministic sequences from a Config.
type Generator struct {
	cfg Config
	rng *mrand.Rand
}

// NewGenerator creates a Generator from the given Config.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: mrand.New(mrand.NewSource(cfg.Seed)),
	}
}

// Ints returns n values drawn uniformly from [Min, Max].
func (g *Generator) Ints(n int) []int {
	span := g.cfg.Max - g.cfg.Min + 1
	seq := make([]int, n)

	for i := range seq {
		seq[i] = g.cfg.Min + g.rng.Intn(span)
	}

	return seq
}
