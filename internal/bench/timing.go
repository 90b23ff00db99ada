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

package bench

import (
	"fmt"
	"time"

	"github.com/ajroetker/go-hilbert/hilbert/contrib/perf"
)

// Timing is the wall-clock cost of a timed loop.
type Timing struct {
	Total   time.Duration
	PerCall time.Duration
}

// Time calls fn repeat times and measures the whole loop. It stops at the
// first error fn returns.
func Time(repeat int, fn func() error) (Timing, error) {
	if repeat < 1 {
		return Timing{}, fmt.Errorf("%w: repeat %d must be at least 1", ErrInvalidConfig, repeat)
	}
	start := time.Now()
	for range repeat {
		if err := fn(); err != nil {
			return Timing{}, err
		}
	}
	total := time.Since(start)
	return Timing{Total: total, PerCall: total / time.Duration(repeat)}, nil
}

// Improvement returns how much faster hilbert ran than naive per call, as a
// percentage of the naive time. It is 0 when the naive time is 0.
func Improvement(naive, hilbert Timing) float64 {
	if naive.PerCall == 0 {
		return 0
	}
	n := naive.PerCall.Seconds()
	return (n - hilbert.PerCall.Seconds()) / n * 100
}

// measure brackets Time with the counters, so the sample covers exactly the
// timed calls.
func measure(c perf.Counters, repeat int, fn func() error) (Timing, perf.Sample, error) {
	if err := c.Start(); err != nil {
		return Timing{}, perf.Sample{}, fmt.Errorf("start %s counters: %w", c.Name(), err)
	}
	t, err := Time(repeat, fn)
	sample, stopErr := c.Stop()
	if err != nil {
		return Timing{}, perf.Sample{}, err
	}
	if stopErr != nil {
		return Timing{}, perf.Sample{}, fmt.Errorf("stop %s counters: %w", c.Name(), stopErr)
	}
	return t, sample, nil
}
