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

// Package hilbert maps the cells of a 2^k x 2^k grid to the order in which a
// discrete Hilbert curve visits them.
//
// The curve is scaled so that positions {0, 1, ..., N*N-1} map onto
// coordinates {0, ..., N-1} x {0, ..., N-1} with N = 2^k. It starts at
// (0,0), first moves along increasing Row, and ends at (0, N-1). Consecutive
// positions are always neighbours on the grid.
//
// Example usage:
//
//	order, err := hilbert.ForSize(512) // 512*512 points
//	if err != nil {
//	    return err
//	}
//	for t, p := range order {
//	    // visit cell (p.Row, p.Col), the t-th cell on the curve
//	}
//
// An Order is computed once per dimension and is read-only afterwards, so the
// same slice can be shared by every multiplication at that size. Cache keeps
// one Order per dimension for callers that run many sizes.
//
// The contrib packages build on this:
//   - contrib/matmul: naive and curve-ordered matrix multiplication
//   - contrib/matvec: naive and curve-ordered matrix-vector products
//   - contrib/perf: optional hardware performance counters
package hilbert
