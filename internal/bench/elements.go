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

package bench

import (
	"math"
	"unsafe"

	"github.com/ajroetker/go-hilbert/hilbert"
)

// isFloat reports whether T is a floating-point type.
func isFloat[T hilbert.Scalar]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

// epsilon returns the unit roundoff of T, or 0 for integer types.
func epsilon[T hilbert.Scalar]() float64 {
	var zero T
	switch {
	case !isFloat[T]():
		return 0
	case unsafe.Sizeof(zero) == 4:
		return 0x1p-24
	default:
		return 0x1p-53
	}
}

// elementBounds returns the closed range of integers T holds exactly.
func elementBounds[T hilbert.Scalar]() (lo, hi int64) {
	var zero T
	wide := unsafe.Sizeof(zero) == 8
	switch {
	case isFloat[T]() && wide:
		return -1 << 53, 1 << 53
	case isFloat[T]():
		return -1 << 24, 1 << 24
	case wide:
		return math.MinInt64, math.MaxInt64
	default:
		return math.MinInt32, math.MaxInt32
	}
}

// matvecTolerance bounds how far two n-term dot products over elements in
// [low, high) may drift apart when summed in different orders.
func matvecTolerance[T hilbert.Scalar](n int, low, high int64) float64 {
	m := math.Max(math.Abs(float64(low)), math.Abs(float64(high)))
	return 2 * float64(n) * epsilon[T]() * float64(n) * m * m
}
