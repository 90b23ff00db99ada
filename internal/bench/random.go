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
	"encoding/binary"
	"math/rand/v2"

	"github.com/ajroetker/go-hilbert/hilbert"
)

// NewRand returns a ChaCha8 generator seeded from seed, so the same seed
// yields the same inputs on every platform.
func NewRand(seed uint64) *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return rand.New(rand.NewChaCha8(key))
}

// resolveSeed returns seed, or a fresh random seed when seed is zero.
func resolveSeed(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

// RandomMatrix returns an n x n row-major matrix of integers drawn
// uniformly from [low, high). It panics if high <= low.
func RandomMatrix[T hilbert.Scalar](n int, low, high int64, rng *rand.Rand) []T {
	return RandomVector[T](n*n, low, high, rng)
}

// RandomVector returns n integers drawn uniformly from [low, high).
// It panics if high <= low.
func RandomVector[T hilbert.Scalar](n int, low, high int64, rng *rand.Rand) []T {
	out := make([]T, n)
	span := high - low
	for i := range out {
		out[i] = T(low + rng.Int64N(span))
	}
	return out
}
