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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajroetker/go-hilbert/internal/bench"
)

func unknownDType(dtype string) error {
	return fmt.Errorf("%w: unknown dtype %q (want one of %s)", bench.ErrInvalidConfig, dtype, strings.Join(dtypes, ", "))
}

// runWorkload instantiates the benchmark for the named element type.
func runWorkload(w bench.Workload, dtype string, cfg bench.Config, opts bench.Options) (*bench.Report, error) {
	switch strings.ToLower(dtype) {
	case "float64":
		return bench.RunWorkload[float64](w, cfg, opts)
	case "float32":
		return bench.RunWorkload[float32](w, cfg, opts)
	case "int32":
		return bench.RunWorkload[int32](w, cfg, opts)
	case "int64":
		return bench.RunWorkload[int64](w, cfg, opts)
	default:
		return nil, unknownDType(dtype)
	}
}

func sweepWorkload(out io.Writer, w bench.Workload, dtype string, cfg bench.Config, from, to int, opts bench.Options) error {
	switch strings.ToLower(dtype) {
	case "float64":
		return bench.Sweep[float64](out, w, cfg, from, to, opts)
	case "float32":
		return bench.Sweep[float32](out, w, cfg, from, to, opts)
	case "int32":
		return bench.Sweep[int32](out, w, cfg, from, to, opts)
	case "int64":
		return bench.Sweep[int64](out, w, cfg, from, to, opts)
	default:
		return unknownDType(dtype)
	}
}
