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
	"strings"

	"github.com/ajroetker/go-hilbert/hilbert"
)

// Strategy selects the order in which output cells are visited.
type Strategy int

const (
	// Naive visits C in row-major order.
	Naive Strategy = iota

	// Hilbert visits C in Hilbert-curve order.
	Hilbert
)

// Strategies lists every strategy in report order.
var Strategies = []Strategy{Naive, Hilbert}

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case Naive:
		return "naive"
	case Hilbert:
		return "hilbert"
	default:
		return "unknown"
	}
}

// ParseStrategy is the inverse of Strategy.String. Matching ignores case.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

// Multiply computes C = A * B with the given strategy. The order fixes N for
// both strategies: the naive kernel ignores the sequence but still requires
// len(order) == N*N, so both paths validate operands identically.
//
// Usage:
//
//	order, _ := cache.Get(n)
//	for _, s := range matmul.Strategies {
//	    if err := matmul.Multiply(s, a, b, c, order); err != nil {
//	        return err
//	    }
//	}
func Multiply[T hilbert.Scalar](s Strategy, a, b, c []T, order hilbert.Order) error {
	switch s {
	case Naive:
		n, err := order.Side()
		if err != nil {
			return err
		}
		return MatMul(a, b, c, n)
	case Hilbert:
		return MatMulOrdered(a, b, c, order)
	default:
		return fmt.Errorf("unknown strategy %d", int(s))
	}
}
