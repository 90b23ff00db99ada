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

// Command hilbertbench times naive and Hilbert-curve-ordered matrix products.
//
// Usage:
//
//	hilbertbench [flags]            # matrix-matrix product
//	hilbertbench matvec [flags]     # matrix-vector product
//	hilbertbench sweep [flags]      # CSV over a range of sizes
//	hilbertbench cpuinfo            # describe the host
//	hilbertbench version
//
// Every flag can also be set through the environment, e.g.
// HILBERTBENCH_SIZE=512 or HILBERTBENCH_PERF_COUNTERS=true.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if a.log != nil {
			a.log.Error("hilbertbench failed", zap.Error(err))
			_ = a.log.Sync()
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
