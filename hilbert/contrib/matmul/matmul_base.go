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

package matmul

import (
	"fmt"

	"github.com/ajroetker/go-hilbert/hilbert"
)

// MatMul computes C = A * B for n x n row-major matrices, visiting the
// output cells in row-major order.
// C[i,j] = sum(A[i,p] * B[p,j]) for p in 0..n-1
//
// Fails with hilbert.ErrInvalidDimension unless n is a power of two and with
// hilbert.ErrDimensionMismatch unless a, b and c all hold n*n elements.
func MatMul[T hilbert.Scalar](a, b, c []T, n int) error {
	if _, err := hilbert.Log2(n); err != nil {
		return err
	}
	if err := checkOperands(a, b, c, n); err != nil {
		return err
	}
	matmulNaive(a, b, c, n)
	return nil
}

// matmulNaive is the standard triple loop: outer i, inner j, innermost p.
func matmulNaive[T hilbert.Scalar](a, b, c []T, n int) {
	for i := range n {
		row := a[i*n : (i+1)*n]
		out := c[i*n : (i+1)*n]
		for j := range n {
			var sum T
			// The conversion rounds each product, so no FMA contraction:
			// matmulOrdered must produce bit-identical sums.
			for p, aip := range row {
				sum += T(aip * b[p*n+j])
			}
			out[j] = sum
		}
	}
}

// checkOperands verifies that a, b and c are all n x n.
func checkOperands[T hilbert.Scalar](a, b, c []T, n int) error {
	size := n * n
	switch {
	case len(a) != size:
		return fmt.Errorf("%w: A has %d elements, want %dx%d", hilbert.ErrDimensionMismatch, len(a), n, n)
	case len(b) != size:
		return fmt.Errorf("%w: B has %d elements, want %dx%d", hilbert.ErrDimensionMismatch, len(b), n, n)
	case len(c) != size:
		return fmt.Errorf("%w: C has %d elements, want %dx%d", hilbert.ErrDimensionMismatch, len(c), n, n)
	}
	return nil
}
