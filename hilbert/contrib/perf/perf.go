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

package perf

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported is returned by New when hardware counters cannot be opened
// on this platform or by this process.
var ErrUnsupported = errors.New("performance counters unsupported")

// Counters measures hardware events between Start and Stop.
type Counters interface {
	// Name identifies the implementation, e.g. "perf_event" or "none".
	Name() string

	// Start resets and enables the counters.
	Start() error

	// Stop disables the counters and returns the events counted since Start.
	Stop() (Sample, error)

	// Close releases the counters. Calling Close multiple times is safe.
	Close() error
}

// Sample holds the event counts of one Start/Stop window.
type Sample struct {
	Cycles          uint64
	Instructions    uint64
	Branches        uint64
	BranchMisses    uint64
	CacheReferences uint64
	CacheMisses     uint64
}

// Field is a named counter value.
type Field struct {
	Name  string
	Value uint64
}

// FieldNames lists the counter names in the order Fields returns them.
var FieldNames = []string{
	"cycles",
	"instructions",
	"branches",
	"branch_misses",
	"cache_references",
	"cache_misses",
}

// Fields returns the counts in FieldNames order.
func (s Sample) Fields() []Field {
	values := []uint64{s.Cycles, s.Instructions, s.Branches, s.BranchMisses, s.CacheReferences, s.CacheMisses}
	fields := make([]Field, len(values))
	for i, v := range values {
		fields[i] = Field{Name: FieldNames[i], Value: v}
	}
	return fields
}

// IsZero reports whether no events were recorded.
func (s Sample) IsZero() bool {
	return s == Sample{}
}

// String formats the sample as "cycles=... instructions=... ...".
func (s Sample) String() string {
	var sb strings.Builder
	for i, f := range s.Fields() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%d", f.Name, f.Value)
	}
	return sb.String()
}

// Compare formats the per-counter ratio candidate/baseline, e.g.
// "cycles=0.912x instructions=1.003x ...". Counters with a zero baseline are
// reported as "n/a".
func Compare(baseline, candidate Sample) string {
	var sb strings.Builder
	cand := candidate.Fields()
	for i, b := range baseline.Fields() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if b.Value == 0 {
			fmt.Fprintf(&sb, "%s=n/a", b.Name)
			continue
		}
		fmt.Fprintf(&sb, "%s=%.3fx", b.Name, float64(cand[i].Value)/float64(b.Value))
	}
	return sb.String()
}

// Noop is a Counters that records nothing. It is the default collaborator.
type Noop struct{}

// Name returns "none".
func (Noop) Name() string { return "none" }

// Start does nothing.
func (Noop) Start() error { return nil }

// Stop returns a zero sample.
func (Noop) Stop() (Sample, error) { return Sample{}, nil }

// Close does nothing.
func (Noop) Close() error { return nil }
