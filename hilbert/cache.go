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

// Cache memoizes one Order per matrix dimension.
//
// The orders it returns are shared: callers must treat them as read-only.
// A Cache is not safe for concurrent use.
//
// Usage:
//
//	cache := hilbert.NewCache()
//	for range runs {
//	    order, err := cache.Get(n) // computed on the first call only
//	    ...
//	}
type Cache struct {
	orders map[int]Order
	hits   int
	misses int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{orders: make(map[int]Order)}
}

// Get returns the order for an n x n matrix, generating it on first use.
// Fails with ErrInvalidDimension unless n is a power of two.
func (c *Cache) Get(n int) (Order, error) {
	if order, ok := c.orders[n]; ok {
		c.hits++
		return order, nil
	}
	order, err := ForSize(n)
	if err != nil {
		return nil, err
	}
	c.misses++
	c.orders[n] = order
	return order, nil
}

// Len returns the number of cached dimensions.
func (c *Cache) Len() int {
	return len(c.orders)
}

// Stats returns how many Get calls were served from the cache and how many
// had to generate a new order.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}
