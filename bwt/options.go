package bwt

import "fmt"

// Strategy selects which suffix-array construction algorithm Build runs.
// All three produce an identical suffix array; they differ in asymptotic
// cost and are kept side by side so the cheap strategies can cross-check
// the recommended one in tests.
type Strategy int

const (
	// DC3 runs the linear-time Kärkkäinen-Sanders (skew) construction.
	// This is the default and the one a real index should use.
	DC3 Strategy = iota
	// MM runs the O(n log n) Manber-Myers prefix-doubling construction.
	MM
	// Simple runs an O(n^2 log n) direct suffix sort, kept only as a
	// reference implementation for cross-validating the other two on
	// small inputs.
	Simple
)

func (s Strategy) String() string {
	switch s {
	case DC3:
		return "DC3"
	case MM:
		return "MM"
	case Simple:
		return "Simple"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Options controls how Build constructs the index.
type Options struct {
	// Strategy picks the suffix-array algorithm. Zero value is DC3.
	Strategy Strategy
	// SASampleRate keeps only the suffix-array entries whose value is a
	// multiple of this rate; 1 disables sampling and keeps the full
	// array. Must be >= 1.
	SASampleRate int
}

// DefaultOptions returns DC3 construction with no suffix-array sampling.
func DefaultOptions() Options {
	return Options{Strategy: DC3, SASampleRate: 1}
}

func (o Options) validate() error {
	switch o.Strategy {
	case DC3, MM, Simple:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidStrategy, o.Strategy)
	}
	if o.SASampleRate < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, o.SASampleRate)
	}
	return nil
}
