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

// Package cpuinfo describes the machine a benchmark runs on, so reports from
// different hosts can be told apart.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Level is the widest SIMD instruction set the CPU reports. The kernels in
// this module are scalar Go; the level only documents what the compiler
// could have used.
type Level int

const (
	// LevelScalar indicates no SIMD extension was detected.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 instructions (x86-64 baseline).
	LevelSSE2

	// LevelAVX2 indicates AVX2 instructions (256-bit SIMD).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 instructions (512-bit SIMD).
	LevelAVX512

	// LevelNEON indicates ARM NEON instructions (128-bit SIMD).
	LevelNEON

	// LevelSVE indicates ARM SVE instructions (scalable vector).
	LevelSVE
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
// SVE is scalable; 16 bytes is its architectural minimum.
func (l Level) Width() int {
	switch l {
	case LevelAVX2:
		return 32
	case LevelAVX512:
		return 64
	default:
		return 16
	}
}

// Feature is a single CPU capability flag as seen by golang.org/x/sys/cpu.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Info describes the host.
type Info struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	Level    Level
	Features []Feature

	// CacheLine is the cache line size in bytes x/sys/cpu pads to.
	CacheLine int
}

// Detect inspects the running machine.
func Detect() Info {
	return Info{
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
		NumCPU:   runtime.NumCPU(),
		Level:    detectLevel(),
		Features: features(),

		CacheLine: int(unsafe.Sizeof(cpu.CacheLinePad{})),
	}
}

// Summary returns a one-line description, e.g.
// "linux/amd64, 8 CPUs, avx2 (32-byte vectors), 64-byte cache lines".
func (i Info) Summary() string {
	return fmt.Sprintf("%s/%s, %d CPUs, %s (%d-byte vectors), %d-byte cache lines",
		i.GOOS, i.GOARCH, i.NumCPU, i.Level, i.Level.Width(), i.CacheLine)
}

// Print writes the summary followed by one line per feature flag.
func (i Info) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "GOOS: %s\nGOARCH: %s\nNumCPU: %d\nSIMD level: %s (%d bytes)\nCache line: %d bytes\n",
		i.GOOS, i.GOARCH, i.NumCPU, i.Level, i.Level.Width(), i.CacheLine); err != nil {
		return err
	}
	for _, f := range i.Features {
		line := fmt.Sprintf("  %-12s %v", f.Name+":", f.Present)
		if f.Note != "" {
			line += " (" + f.Note + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
