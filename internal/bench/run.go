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
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ajroetker/go-hilbert/hilbert"
	"github.com/ajroetker/go-hilbert/hilbert/contrib/matmul"
	"github.com/ajroetker/go-hilbert/hilbert/contrib/matvec"
	"github.com/ajroetker/go-hilbert/hilbert/contrib/perf"
)

// Workload selects the product being benchmarked.
type Workload int

const (
	// MatMul benchmarks C = A * B.
	MatMul Workload = iota

	// MatVec benchmarks out = A * v over a curve-flattened A.
	MatVec
)

// Workloads lists every workload.
var Workloads = []Workload{MatMul, MatVec}

func (w Workload) String() string {
	switch w {
	case MatMul:
		return "matmul"
	case MatVec:
		return "matvec"
	default:
		return "unknown"
	}
}

// ParseWorkload returns the workload with the given name.
func ParseWorkload(name string) (Workload, error) {
	for _, w := range Workloads {
		if strings.EqualFold(name, w.String()) {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown workload %q", ErrInvalidConfig, name)
}

// Options carries the collaborators of a run. The zero value is usable.
type Options struct {
	// Logger receives debug events for each phase. Defaults to a no-op logger.
	Logger *zap.Logger

	// Counters samples hardware events around each timed loop.
	// Defaults to perf.Noop.
	Counters perf.Counters

	// Cache supplies curve orders. Defaults to a fresh cache per run.
	Cache *hilbert.Cache

	// Strategies selects the rows Sweep writes. Empty means all of
	// matmul.Strategies. Both strategies are always timed.
	Strategies []matmul.Strategy
}

func (o Options) strategies() []matmul.Strategy {
	if len(o.Strategies) == 0 {
		return matmul.Strategies
	}
	return o.Strategies
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Counters == nil {
		o.Counters = perf.Noop{}
	}
	if o.Cache == nil {
		o.Cache = hilbert.NewCache()
	}
	return o
}

// Run benchmarks the naive and Hilbert-ordered matrix multiplication on
// random N x N matrices of element type T.
func Run[T hilbert.Scalar](cfg Config, opts Options) (*Report, error) {
	r, _, err := runMatMul[T](cfg, opts)
	return r, err
}

// RunMatVec benchmarks the naive and Hilbert-ordered matrix-vector product.
// Flattening A along the curve counts as preprocessing.
func RunMatVec[T hilbert.Scalar](cfg Config, opts Options) (*Report, error) {
	r, _, err := runMatVec[T](cfg, opts)
	return r, err
}

// RunWorkload dispatches to Run or RunMatVec.
func RunWorkload[T hilbert.Scalar](w Workload, cfg Config, opts Options) (*Report, error) {
	switch w {
	case MatMul:
		return Run[T](cfg, opts)
	case MatVec:
		return RunMatVec[T](cfg, opts)
	default:
		return nil, fmt.Errorf("%w: unknown workload %d", ErrInvalidConfig, int(w))
	}
}

// outputs holds what each strategy computed, for tests.
type outputs[T hilbert.Scalar] struct {
	naive, hilbert []T
}

func newReport[T hilbert.Scalar](w Workload, cfg Config, opts Options) *Report {
	var zero T
	return &Report{
		Workload: w,
		DType:    fmt.Sprintf("%T", zero),
		N:        cfg.N,
		Repeat:   cfg.Repeat,
		Seed:     resolveSeed(cfg.Seed),
		Counters: opts.Counters.Name(),
	}
}

func runMatMul[T hilbert.Scalar](cfg Config, opts Options) (*Report, outputs[T], error) {
	var out outputs[T]
	if err := ValidateFor[T](cfg); err != nil {
		return nil, out, err
	}
	opts = opts.withDefaults()
	r := newReport[T](MatMul, cfg, opts)
	log := opts.Logger.With(zap.Stringer("workload", r.Workload), zap.String("dtype", r.DType), zap.Int("n", r.N))
	if cfg.Seed == 0 {
		log.Info("picked random seed", zap.Uint64("seed", r.Seed))
	}

	n := cfg.N
	start := time.Now()
	rng := NewRand(r.Seed)
	a := RandomMatrix[T](n, cfg.Low, cfg.High, rng)
	b := RandomMatrix[T](n, cfg.Low, cfg.High, rng)
	out.naive = make([]T, n*n)
	out.hilbert = make([]T, n*n)
	r.Generation = time.Since(start)
	log.Debug("generated inputs", zap.Duration("elapsed", r.Generation))

	start = time.Now()
	order, err := opts.Cache.Get(n)
	if err != nil {
		return nil, out, err
	}
	r.Preprocessing = time.Since(start)
	log.Debug("built curve order", zap.Int("points", len(order)), zap.Duration("elapsed", r.Preprocessing))

	for _, s := range matmul.Strategies {
		c := out.naive
		if s == matmul.Hilbert {
			c = out.hilbert
		}
		t, sample, err := measure(opts.Counters, cfg.Repeat, func() error {
			return matmul.Multiply(s, a, b, c, order)
		})
		if err != nil {
			return nil, out, fmt.Errorf("%s: %w", s, err)
		}
		r.record(s, t, sample)
		log.Debug("timed strategy", zap.Stringer("strategy", s), zap.Duration("total", t.Total), zap.Duration("per_call", t.PerCall))
	}

	if cfg.Check {
		if err := compare(out.naive, out.hilbert, 0); err != nil {
			return nil, out, fmt.Errorf("matmul n=%d: %w", n, err)
		}
	}
	r.Improvement = Improvement(r.Naive, r.Hilbert)
	return r, out, nil
}

func runMatVec[T hilbert.Scalar](cfg Config, opts Options) (*Report, outputs[T], error) {
	var out outputs[T]
	if err := ValidateFor[T](cfg); err != nil {
		return nil, out, err
	}
	opts = opts.withDefaults()
	r := newReport[T](MatVec, cfg, opts)
	log := opts.Logger.With(zap.Stringer("workload", r.Workload), zap.String("dtype", r.DType), zap.Int("n", r.N))
	if cfg.Seed == 0 {
		log.Info("picked random seed", zap.Uint64("seed", r.Seed))
	}

	n := cfg.N
	start := time.Now()
	rng := NewRand(r.Seed)
	a := RandomMatrix[T](n, cfg.Low, cfg.High, rng)
	v := RandomVector[T](n, cfg.Low, cfg.High, rng)
	out.naive = make([]T, n)
	out.hilbert = make([]T, n)
	r.Generation = time.Since(start)
	log.Debug("generated inputs", zap.Duration("elapsed", r.Generation))

	start = time.Now()
	order, err := opts.Cache.Get(n)
	if err != nil {
		return nil, out, err
	}
	flat, err := matvec.Flatten(a, order)
	if err != nil {
		return nil, out, err
	}
	r.Preprocessing = time.Since(start)
	log.Debug("flattened matrix", zap.Int("points", len(order)), zap.Duration("elapsed", r.Preprocessing))

	t, sample, err := measure(opts.Counters, cfg.Repeat, func() error {
		return matvec.MatVec(a, v, out.naive, n)
	})
	if err != nil {
		return nil, out, fmt.Errorf("%s: %w", matmul.Naive, err)
	}
	r.record(matmul.Naive, t, sample)
	log.Debug("timed strategy", zap.Stringer("strategy", matmul.Naive), zap.Duration("total", t.Total), zap.Duration("per_call", t.PerCall))

	t, sample, err = measure(opts.Counters, cfg.Repeat, func() error {
		return matvec.MatVecOrdered(flat, v, out.hilbert, order)
	})
	if err != nil {
		return nil, out, fmt.Errorf("%s: %w", matmul.Hilbert, err)
	}
	r.record(matmul.Hilbert, t, sample)
	log.Debug("timed strategy", zap.Stringer("strategy", matmul.Hilbert), zap.Duration("total", t.Total), zap.Duration("per_call", t.PerCall))

	if cfg.Check {
		tol := matvecTolerance[T](n, cfg.Low, cfg.High)
		if err := compare(out.naive, out.hilbert, tol); err != nil {
			return nil, out, fmt.Errorf("matvec n=%d: %w", n, err)
		}
		walked := make([]T, n)
		if err := matvec.MatVecWalk(flat, v, walked, n); err != nil {
			return nil, out, err
		}
		if err := compare(out.hilbert, walked, 0); err != nil {
			return nil, out, fmt.Errorf("matvec walk n=%d: %w", n, err)
		}
	}
	r.Improvement = Improvement(r.Naive, r.Hilbert)
	return r, out, nil
}

// compare reports the first index at which the strategies differ by more
// than tol. A zero tol requires exact equality.
func compare[T hilbert.Scalar](naive, ordered []T, tol float64) error {
	if len(naive) != len(ordered) {
		return fmt.Errorf("%w: lengths %d and %d", ErrResultMismatch, len(naive), len(ordered))
	}
	for i := range naive {
		if naive[i] == ordered[i] {
			continue
		}
		if tol > 0 && math.Abs(float64(naive[i])-float64(ordered[i])) <= tol {
			continue
		}
		return fmt.Errorf("%w: index %d: naive %v, hilbert %v", ErrResultMismatch, i, naive[i], ordered[i])
	}
	return nil
}
