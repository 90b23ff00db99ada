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

// Package perf reads hardware performance counters around a block of code.
//
// Counters are informational: the benchmarks only print them. Noop is the
// default and records nothing. New opens the real counters, which are only
// available on Linux through perf_event_open(2) and may additionally be
// restricted by /proc/sys/kernel/perf_event_paranoid.
//
// Usage:
//
//	counters, err := perf.New()
//	if err != nil {
//	    counters = perf.Noop{} // ErrUnsupported: keep going without counters
//	}
//	defer counters.Close()
//
//	counters.Start()
//	work()
//	sample, _ := counters.Stop()
package perf
