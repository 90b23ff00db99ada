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

import (
	"fmt"
	"math/bits"
)

// Generate returns the order in which a Hilbert curve visits a 2^k x 2^k
// grid. The result has 4^k points and is the same for every call with the
// same k.
//
// Fails with ErrInvalidDimension if k < 0 or k > MaxOrder.
func Generate(k int) (Order, error) {
	if k < 0 || k > MaxOrder {
		return nil, fmt.Errorf("%w: order parameter %d outside [0, %d]", ErrInvalidDimension, k, MaxOrder)
	}
	order := make(Order, 1<<(2*k))
	fill(order, k)
	return order, nil
}

// ForSize returns the curve order for an n x n matrix.
// Fails with ErrInvalidDimension unless n is a power of two.
func ForSize(n int) (Order, error) {
	k, err := Log2(n)
	if err != nil {
		return nil, err
	}
	return Generate(k)
}

// Log2 returns k such that n == 2^k.
// Fails with ErrInvalidDimension unless n is a positive power of two no
// larger than 2^MaxOrder.
func Log2(n int) (int, error) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, fmt.Errorf("%w: %d is not a power of two", ErrInvalidDimension, n)
	}
	k := bits.TrailingZeros(uint(n))
	if k > MaxOrder {
		return 0, fmt.Errorf("%w: %d exceeds the maximum side 2^%d", ErrInvalidDimension, n, MaxOrder)
	}
	return k, nil
}

// fill writes the order for a 2^k grid into buf, which must hold exactly
// 4^k points.
//
// The quarter-size order is built recursively in buf[:q] and then expanded
// in place into the four quadrants, each read before being overwritten:
//
//	top-left    (+h rows)    | top-right    (+h rows, +h cols)
//	bottom-left (transposed) | bottom-right (anti-transposed, +h cols)
//
// The quarter order runs from (0,0) to (0,h-1). Transposing it makes the
// bottom-left copy end at (h-1,0), next to the start of the top-left copy at
// (h,0). The anti-transposed copy enters at (h-1,2h-1), directly under the
// exit of the top-right copy, and leaves at (0,2h-1).
func fill(buf []Point, k int) {
	if k == 0 {
		buf[0] = Point{}
		return
	}
	q := len(buf) / 4
	h := uint32(1) << (k - 1)
	fill(buf[:q], k-1)

	bl, tl, tr, br := buf[:q], buf[q:2*q], buf[2*q:3*q], buf[3*q:4*q]
	for t, p := range bl {
		tl[t] = Point{Row: p.Row + h, Col: p.Col}
		tr[t] = Point{Row: p.Row + h, Col: p.Col + h}
		br[t] = Point{Row: h - 1 - p.Col, Col: 2*h - 1 - p.Row}
		bl[t] = Point{Row: p.Col, Col: p.Row}
	}
}
