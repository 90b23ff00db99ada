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

//go:build linux

package perf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// hardwareEvents are opened in Sample field order.
var hardwareEvents = []uint64{
	unix.PERF_COUNT_HW_CPU_CYCLES,
	unix.PERF_COUNT_HW_INSTRUCTIONS,
	unix.PERF_COUNT_HW_BRANCH_INSTRUCTIONS,
	unix.PERF_COUNT_HW_BRANCH_MISSES,
	unix.PERF_COUNT_HW_CACHE_REFERENCES,
	unix.PERF_COUNT_HW_CACHE_MISSES,
}

// eventCounters counts user-space events of the calling thread on any CPU.
// The benchmarks are single-threaded, so callers should lock the goroutine
// to its OS thread (runtime.LockOSThread) for the counts to be meaningful.
type eventCounters struct {
	fds []int
}

// New opens the hardware counters through perf_event_open(2).
// Fails with ErrUnsupported if any counter cannot be opened, e.g. inside a
// container or when perf_event_paranoid forbids it.
func New() (Counters, error) {
	c := &eventCounters{}
	for i, config := range hardwareEvents {
		attr := unix.PerfEventAttr{
			Type:   unix.PERF_TYPE_HARDWARE,
			Config: config,
			Bits:   unix.PerfBitDisabled | unix.PerfBitExcludeKernel | unix.PerfBitExcludeHv,
		}
		attr.Size = uint32(unsafe.Sizeof(attr))

		fd, err := unix.PerfEventOpen(&attr, 0, -1, -1, unix.PERF_FLAG_FD_CLOEXEC)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("%w: opening %s: %v", ErrUnsupported, FieldNames[i], err)
		}
		c.fds = append(c.fds, fd)
	}
	return c, nil
}

func (c *eventCounters) Name() string { return "perf_event" }

func (c *eventCounters) Start() error {
	for _, fd := range c.fds {
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_RESET, 0); err != nil {
			return fmt.Errorf("resetting counter: %w", err)
		}
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_ENABLE, 0); err != nil {
			return fmt.Errorf("enabling counter: %w", err)
		}
	}
	return nil
}

func (c *eventCounters) Stop() (Sample, error) {
	for _, fd := range c.fds {
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_DISABLE, 0); err != nil {
			return Sample{}, fmt.Errorf("disabling counter: %w", err)
		}
	}

	values := make([]uint64, len(c.fds))
	var buf [8]byte
	for i, fd := range c.fds {
		n, err := unix.Read(fd, buf[:])
		if err != nil {
			return Sample{}, fmt.Errorf("reading %s: %w", FieldNames[i], err)
		}
		if n != len(buf) {
			return Sample{}, fmt.Errorf("reading %s: short read of %d bytes", FieldNames[i], n)
		}
		values[i] = binary.NativeEndian.Uint64(buf[:])
	}

	return Sample{
		Cycles:          values[0],
		Instructions:    values[1],
		Branches:        values[2],
		BranchMisses:    values[3],
		CacheReferences: values[4],
		CacheMisses:     values[5],
	}, nil
}

func (c *eventCounters) Close() error {
	var errs []error
	for _, fd := range c.fds {
		if err := unix.Close(fd); err != nil {
			errs = append(errs, err)
		}
	}
	c.fds = nil
	return errors.Join(errs...)
}
