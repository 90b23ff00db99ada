// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bench times the naive and Hilbert-ordered kernels against each
// other and reports the difference.
package bench

import (
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-hilbert/hilbert"
)

var (
	// ErrInvalidConfig reports a repeat count or fill range that cannot
	// produce a benchmark.
	ErrInvalidConfig = errors.New("invalid benchmark config")

	// ErrResultMismatch reports that the two strategies produced different
	// results for the same inputs.
	ErrResultMismatch = errors.New("result mismatch")
)

// Config describes a single benchmark run.
type Config struct {
	// N is the matrix side length. Must be a power of two.
	N int

	// Repeat is the number of timed calls per strategy.
	Repeat int

	// Seed seeds the input generator. Zero picks a random seed; the seed
	// actually used is recorded in the Report.
	Seed uint64

	// Low and High bound the generated elements to integers in [Low, High).
	Low, High int64

	// Check compares the outputs of both strategies after timing.
	Check bool
}

// DefaultConfig returns the configuration of the reference benchmark.
func DefaultConfig() Config {
	return Config{
		N:      256,
		Repeat: 5,
		Seed:   10,
		Low:    1,
		High:   11,
		Check:  true,
	}
}

// Validate reports whether c describes a runnable benchmark.
func (c Config) Validate() error {
	if _, err := hilbert.Log2(c.N); err != nil {
		return fmt.Errorf("size: %w", err)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("%w: repeat %d must be at least 1", ErrInvalidConfig, c.Repeat)
	}
	if c.High <= c.Low {
		return fmt.Errorf("%w: empty fill range [%d, %d)", ErrInvalidConfig, c.Low, c.High)
	}
	if c.Low < 0 && c.High > math.MaxInt64+c.Low {
		return fmt.Errorf("%w: fill range [%d, %d) is wider than int64", ErrInvalidConfig, c.Low, c.High)
	}
	return nil
}

// ValidateFor is Validate plus a check that every element of the fill range
// is exactly representable in T.
func ValidateFor[T hilbert.Scalar](c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	lo, hi := elementBounds[T]()
	if c.Low < lo || c.High-1 > hi {
		var zero T
		return fmt.Errorf("%w: fill range [%d, %d) does not fit %T, want within [%d, %d]", ErrInvalidConfig, c.Low, c.High, zero, lo, hi)
	}
	return nil
}
