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

import "github.com/ajroetker/go-hilbert/hilbert"

// MatMulOrdered computes C = A * B for N x N row-major matrices, producing
// the output cells in the sequence given by order. N is implied by the
// order: len(order) == N*N.
//
// For each (i, j) drawn from order, C[i,j] is the dot product of row i of A
// with column j of B. The dot products accumulate over p in the same order
// as MatMul, so the result is identical to MatMul's, not just close to it.
//
// Fails with hilbert.ErrInvalidDimension if len(order) is not 4^k and with
// hilbert.ErrDimensionMismatch unless a, b and c all hold N*N elements.
// A and B are never written.
func MatMulOrdered[T hilbert.Scalar](a, b, c []T, order hilbert.Order) error {
	n, err := order.Side()
	if err != nil {
		return err
	}
	if err := checkOperands(a, b, c, n); err != nil {
		return err
	}
	matmulOrdered(a, b, c, n, order)
	return nil
}

func matmulOrdered[T hilbert.Scalar](a, b, c []T, n int, order hilbert.Order) {
	for _, pt := range order {
		i, j := int(pt.Row), int(pt.Col)
		row := a[i*n : (i+1)*n]
		var sum T
		// Same rounding as matmulNaive.
		for p, aip := range row {
			sum += T(aip * b[p*n+j])
		}
		c[i*n+j] = sum
	}
}
