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
	"runtime"
	"testing"
)

func TestNoop(t *testing.T) {
	var c Counters = Noop{}
	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s, err := c.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !s.IsZero() {
		t.Errorf("Noop sample = %v, want zero", s)
	}
	if c.Name() != "none" {
		t.Errorf("Name() = %q, want \"none\"", c.Name())
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestSampleFields(t *testing.T) {
	s := Sample{Cycles: 1, Instructions: 2, Branches: 3, BranchMisses: 4, CacheReferences: 5, CacheMisses: 6}
	fields := s.Fields()
	if len(fields) != len(FieldNames) {
		t.Fatalf("len(Fields()) = %d, want %d", len(fields), len(FieldNames))
	}
	for i, f := range fields {
		if f.Name != FieldNames[i] || f.Value != uint64(i+1) {
			t.Errorf("Fields()[%d] = %+v, want {%s %d}", i, f, FieldNames[i], i+1)
		}
	}

	want := "cycles=1 instructions=2 branches=3 branch_misses=4 cache_references=5 cache_misses=6"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCompare(t *testing.T) {
	baseline := Sample{Cycles: 200, Instructions: 100, Branches: 10}
	candidate := Sample{Cycles: 100, Instructions: 150, Branches: 10, CacheMisses: 7}

	want := "cycles=0.500x instructions=1.500x branches=1.000x branch_misses=n/a cache_references=n/a cache_misses=n/a"
	if got := Compare(baseline, candidate); got != want {
		t.Errorf("Compare() = %q, want %q", got, want)
	}
}

func TestNew(t *testing.T) {
	c, err := New()
	if err != nil {
		if !errors.Is(err, ErrUnsupported) {
			t.Fatalf("New error = %v, want ErrUnsupported", err)
		}
		t.Skipf("hardware counters unavailable: %v", err)
	}
	defer c.Close()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	var sum int
	for i := range 1_000_000 {
		sum += i
	}
	s, err := c.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	t.Logf("sum=%d %v", sum, s)

	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
