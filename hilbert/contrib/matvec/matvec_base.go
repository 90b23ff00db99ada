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

package matvec

import (
	"fmt"

	"github.com/ajroetker/go-hilbert/hilbert"
)

// MatVec computes the matrix-vector product: out = A * v
//
// Parameters:
//   - a: n x n matrix in row-major order
//   - v: input vector of length n
//   - out: output vector of length n
//   - n: side length, a power of two
//
// Each element out[i] is the dot product of row i with vector v.
//
// Example:
//
//	// 2x2 matrix:
//	//   [1 2]
//	//   [3 4]
//	a := []float64{1, 2, 3, 4}
//	v := []float64{1, 1}
//	out := make([]float64, 2)
//	MatVec(a, v, out, 2) // out = [3, 7]
func MatVec[T hilbert.Scalar](a, v, out []T, n int) error {
	if _, err := hilbert.Log2(n); err != nil {
		return err
	}
	if err := checkOperands(a, v, out, n); err != nil {
		return err
	}

	for i := range n {
		row := a[i*n : (i+1)*n]
		var acc T
		for j, aij := range row {
			acc += aij * v[j]
		}
		out[i] = acc
	}
	return nil
}

// Flatten returns a copy of the n x n row-major matrix a laid out in curve
// order: flat[t] = a[order[t]]. N is implied by the order.
func Flatten[T hilbert.Scalar](a []T, order hilbert.Order) ([]T, error) {
	n, err := order.Side()
	if err != nil {
		return nil, err
	}
	if len(a) != n*n {
		return nil, fmt.Errorf("%w: matrix has %d elements, want %dx%d", hilbert.ErrDimensionMismatch, len(a), n, n)
	}

	flat := make([]T, len(a))
	for t, p := range order {
		flat[t] = a[int(p.Row)*n+int(p.Col)]
	}
	return flat, nil
}

// MatVecOrdered computes out = A * v where flat is A as returned by Flatten
// for the same order. out is overwritten.
func MatVecOrdered[T hilbert.Scalar](flat, v, out []T, order hilbert.Order) error {
	n, err := order.Side()
	if err != nil {
		return err
	}
	if err := checkOperands(flat, v, out, n); err != nil {
		return err
	}

	clear(out)
	for t, p := range order {
		// The conversion keeps the compiler from fusing into FMA, so this
		// and MatVecWalk round identically.
		out[p.Row] += T(flat[t] * v[p.Col])
	}
	return nil
}

// MatVecWalk is MatVecOrdered with the curve positions computed on the fly
// by hilbert.Walk instead of read from a materialized order. n is the side
// length of the flattened matrix. Results are bit-identical to
// MatVecOrdered.
func MatVecWalk[T hilbert.Scalar](flat, v, out []T, n int) error {
	k, err := hilbert.Log2(n)
	if err != nil {
		return err
	}
	if err := checkOperands(flat, v, out, n); err != nil {
		return err
	}

	clear(out)
	for t, p := range hilbert.Walk(k) {
		out[p.Row] += T(flat[t] * v[p.Col])
	}
	return nil
}

func checkOperands[T hilbert.Scalar](a, v, out []T, n int) error {
	switch {
	case len(a) != n*n:
		return fmt.Errorf("%w: matrix has %d elements, want %dx%d", hilbert.ErrDimensionMismatch, len(a), n, n)
	case len(v) != n:
		return fmt.Errorf("%w: vector has %d elements, want %d", hilbert.ErrDimensionMismatch, len(v), n)
	case len(out) != n:
		return fmt.Errorf("%w: output has %d elements, want %d", hilbert.ErrDimensionMismatch, len(out), n)
	}
	return nil
}
