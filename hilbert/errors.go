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

import "errors"

var (
	// ErrInvalidDimension reports a matrix size that is not a power of two,
	// or an order whose length is not 4^k for any k in [0, MaxOrder].
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrDimensionMismatch reports operands whose sizes disagree with each
	// other or with the order driving the computation.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
