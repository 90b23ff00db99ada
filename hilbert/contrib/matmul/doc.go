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

// Package matmul provides square matrix multiplication with two cell
// visitation strategies: plain row-major order and Hilbert-curve order.
//
// Both kernels compute the same values. The curve-ordered kernel only
// changes the sequence in which output cells C[i,j] are produced, so that
// consecutive cells share rows of A or columns of B that are still in cache.
//
// Example usage:
//
//	// C = A * B where A, B and C are NxN, row-major, N a power of two
//	a := make([]float64, N*N)
//	b := make([]float64, N*N)
//	c := make([]float64, N*N)
//
//	order, err := hilbert.ForSize(N) // compute once, reuse for every call
//	if err != nil {
//	    return err
//	}
//	err = matmul.MatMulOrdered(a, b, c, order)
//
// The naive kernel MatMul is the baseline the benchmarks compare against.
package matmul
