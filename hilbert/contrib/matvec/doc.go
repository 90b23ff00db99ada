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

// Package matvec provides square matrix-vector products in row-major and
// Hilbert-curve order.
//
// # Matrix-Vector Product
//
//   - MatVec(a, v, out, n) - row-major out = A*v
//   - Flatten(a, order) - copy A into curve order, once per matrix
//   - MatVecOrdered(flat, v, out, order) - out = A*v walking flat front to back
//
// # Algorithm
//
// The curve-ordered product streams the flattened matrix sequentially while
// the indices it reads from v and writes to out move only one step at a
// time, so both stay cache resident for long stretches:
//
//	for t, (i, j) := range order {
//	    out[i] += flat[t] * v[j]
//	}
//
// # Example Usage
//
//	order, _ := hilbert.ForSize(n)
//	flat, _ := matvec.Flatten(a, order)
//	out := make([]int32, n)
//	matvec.MatVecOrdered(flat, v, out, order)
//
// For integer element types both products are exactly equal. For floats the
// curve order changes the summation order of each out[i], so results agree
// only to within rounding.
package matvec
