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

package hilbert

import "fmt"

// MaxOrder is the largest supported order parameter k.
// An order of 15 already covers a 32768x32768 grid (2^30 points, 8 GiB).
const MaxOrder = 15

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// Integers is a constraint for the signed integer element types the
// benchmarks support.
type Integers interface {
	~int32 | ~int64
}

// Scalar is a constraint for matrix element types.
type Scalar interface {
	Floats | Integers
}

// Point is a cell of the grid. Row grows "up" along the curve's first step.
type Point struct {
	Row, Col uint32
}

// String returns "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Order is the sequence of cells visited by a Hilbert curve over an N x N
// grid, so len(Order) == N*N. Every cell appears exactly once.
//
// An Order must not be modified after it has been generated: it is shared
// by reference between all users of the same dimension.
type Order []Point

// Side returns N, the side length of the grid covered by the order.
// It fails with ErrInvalidDimension when len(o) is not 4^k.
func (o Order) Side() (int, error) {
	k, err := o.K()
	if err != nil {
		return 0, err
	}
	return 1 << k, nil
}

// K returns the order parameter, log4(len(o)).
func (o Order) K() (int, error) {
	n := len(o)
	for k := 0; k <= MaxOrder; k++ {
		size := 1 << (2 * k)
		if size == n {
			return k, nil
		}
		if size > n {
			break
		}
	}
	return 0, fmt.Errorf("%w: order of length %d is not a power of 4", ErrInvalidDimension, n)
}
