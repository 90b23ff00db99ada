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
	"iter"
)

// PointAt returns the d-th cell visited by the curve over a 2^k grid.
// PointAt(k, d) == Generate(k)[d] for every valid d.
func PointAt(k, d int) (Point, error) {
	if k < 0 || k > MaxOrder {
		return Point{}, fmt.Errorf("%w: order parameter %d outside [0, %d]", ErrInvalidDimension, k, MaxOrder)
	}
	if d < 0 || d >= 1<<(2*k) {
		return Point{}, fmt.Errorf("%w: position %d outside a curve of %d points", ErrDimensionMismatch, d, 1<<(2*k))
	}
	return pointAt(k, d), nil
}

func pointAt(k, d int) Point {
	// x is the column, y the row.
	var x, y int
	t := d
	for s := 1; s < 1<<k; s <<= 1 {
		rx := 1 & (t / 2)
		ry := 1 & (t ^ rx)
		x, y = rotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		t /= 4
	}
	return Point{Row: uint32(y), Col: uint32(x)}
}

// Index returns the position of p along the curve over a 2^k grid.
// It is the inverse of PointAt.
func Index(k int, p Point) (int, error) {
	if k < 0 || k > MaxOrder {
		return 0, fmt.Errorf("%w: order parameter %d outside [0, %d]", ErrInvalidDimension, k, MaxOrder)
	}
	n := uint32(1) << k
	if p.Row >= n || p.Col >= n {
		return 0, fmt.Errorf("%w: point %v outside a %dx%d grid", ErrDimensionMismatch, p, n, n)
	}

	x, y := int(p.Col), int(p.Row)
	var d int
	for s := int(n) / 2; s > 0; s /= 2 {
		var rx, ry int
		if x&s != 0 {
			rx = 1
		}
		if y&s != 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		x, y = rotate(s, x&(s-1), y&(s-1), rx, ry)
	}
	return d, nil
}

// rotate maps a point of an s x s quadrant to or from the orientation of the
// parent curve. Both transforms are involutions.
func rotate(s, x, y, rx, ry int) (int, int) {
	if ry == 0 {
		if rx == 1 {
			x = s - 1 - x
			y = s - 1 - y
		}
		x, y = y, x
	}
	return x, y
}

// Walk yields (d, PointAt(k, d)) for every position of the curve without
// materializing the whole Order. It yields nothing if k is invalid.
//
//	for t, p := range hilbert.Walk(k) {
//	    out[p.Row] += flat[t] * v[p.Col]
//	}
func Walk(k int) iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		if k < 0 || k > MaxOrder {
			return
		}
		for d := range 1 << (2 * k) {
			if !yield(d, pointAt(k, d)) {
				return
			}
		}
	}
}
