// Package sensor simulates environment scanning and obstacle
// detection for the walker.
package sensor

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/quadsim/internal/robot"
)

// Reading is one simulated sensor value (distance/intensity).
// Readings are ephemeral: produced and consumed within one scan cycle.
type Reading = float64

// Scanner produces a bounded batch of simulated sensor readings per
// Scan call. Scanning is the most expensive per-step operation, so
// callers throttle invocation frequency (every Kth step); the scanner
// itself never self-throttles.
type Scanner struct {
	samples  int
	maxRange float64
	rng      *rand.Rand
	scans    int
}

// NewScanner creates a scanner returning samples readings in
// [0, maxRange) per scan, reproducible for a given seed.
func NewScanner(samples int, maxRange float64, seed int64) (*Scanner, error) {
	if samples < 1 {
		return nil, fmt.Errorf("%w: sample count must be positive, got %d", robot.ErrInvalidConfig, samples)
	}
	if maxRange <= 0 {
		return nil, fmt.Errorf("%w: scan range must be positive, got %f", robot.ErrInvalidConfig, maxRange)
	}
	return &Scanner{
		samples:  samples,
		maxRange: maxRange,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Scan returns a fixed-length batch of readings. O(samples).
func (s *Scanner) Scan() []Reading {
	readings := make([]Reading, s.samples)
	for i := range readings {
		readings[i] = s.rng.Float64() * s.maxRange
	}
	s.scans++
	return readings
}

// Scans reports how many times Scan has been invoked.
func (s *Scanner) Scans() int { return s.scans }

func (s *Scanner) Samples() int { return s.samples }
