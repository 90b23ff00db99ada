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
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajroetker/go-hilbert/hilbert"
	"github.com/ajroetker/go-hilbert/hilbert/contrib/matmul"
	"github.com/ajroetker/go-hilbert/hilbert/contrib/perf"
)

// fakeCounters returns a fixed, increasing sample per Stop.
type fakeCounters struct {
	starts, stops int
	closed        bool
}

func (f *fakeCounters) Name() string { return "fake" }

func (f *fakeCounters) Start() error {
	f.starts++
	return nil
}

func (f *fakeCounters) Stop() (perf.Sample, error) {
	f.stops++
	n := uint64(f.stops)
	return perf.Sample{
		Cycles:          1000 * n,
		Instructions:    2000 * n,
		Branches:        300 * n,
		BranchMisses:    4 * n,
		CacheReferences: 50 * n,
		CacheMisses:     6 * n,
	}, nil
}

func (f *fakeCounters) Close() error {
	f.closed = true
	return nil
}

func smallConfig(n int) Config {
	cfg := DefaultConfig()
	cfg.N = n
	cfg.Repeat = 2
	return cfg
}

func TestRunAllOnes(t *testing.T) {
	cfg := Config{N: 4, Repeat: 3, Seed: 1, Low: 1, High: 2, Check: true}
	r, out, err := runMatMul[float64](cfg, Options{})
	require.NoError(t, err)

	for i, got := range out.naive {
		assert.Equal(t, 4.0, got, "naive[%d]", i)
	}
	for i, got := range out.hilbert {
		assert.Equal(t, 4.0, got, "hilbert[%d]", i)
	}
	assert.GreaterOrEqual(t, r.Generation, time.Duration(0))
	assert.GreaterOrEqual(t, r.Preprocessing, time.Duration(0))
	assert.GreaterOrEqual(t, r.Naive.Total, time.Duration(0))
	assert.GreaterOrEqual(t, r.Hilbert.Total, time.Duration(0))
	assert.False(t, math.IsNaN(r.Improvement))
	assert.False(t, math.IsInf(r.Improvement, 0))
	assert.Equal(t, MatMul, r.Workload)
	assert.Equal(t, "float64", r.DType)
	assert.Equal(t, "none", r.Counters)
	assert.False(t, r.HasSamples())
}

func TestRunElementTypes(t *testing.T) {
	cfg := smallConfig(16)
	t.Run("float32", func(t *testing.T) {
		_, err := Run[float32](cfg, Options{})
		require.NoError(t, err)
	})
	t.Run("int32", func(t *testing.T) {
		_, err := Run[int32](cfg, Options{})
		require.NoError(t, err)
	})
	t.Run("int64", func(t *testing.T) {
		_, err := Run[int64](cfg, Options{})
		require.NoError(t, err)
	})
}

func TestRunInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"size not power of two", Config{N: 3, Repeat: 1, Low: 1, High: 2}, hilbert.ErrInvalidDimension},
		{"zero size", Config{N: 0, Repeat: 1, Low: 1, High: 2}, hilbert.ErrInvalidDimension},
		{"zero repeat", Config{N: 4, Repeat: 0, Low: 1, High: 2}, ErrInvalidConfig},
		{"empty range", Config{N: 4, Repeat: 1, Low: 5, High: 5}, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.cfg.Validate(), tt.want)
			_, err := Run[float64](tt.cfg, Options{})
			require.ErrorIs(t, err, tt.want)
			_, err = RunMatVec[int32](tt.cfg, Options{})
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRunReproducible(t *testing.T) {
	cfg := smallConfig(8)
	_, first, err := runMatMul[int64](cfg, Options{})
	require.NoError(t, err)
	_, second, err := runMatMul[int64](cfg, Options{})
	require.NoError(t, err)
	assert.Equal(t, first.naive, second.naive)
}

func TestRunRandomSeed(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cfg := smallConfig(4)
	cfg.Seed = 0

	r, err := Run[int32](cfg, Options{Logger: zap.New(core)})
	require.NoError(t, err)
	assert.NotZero(t, r.Seed)

	entries := logs.FilterMessage("picked random seed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, r.Seed, entries[0].ContextMap()["seed"])
}

func TestRunMatVec(t *testing.T) {
	cfg := Config{N: 8, Repeat: 2, Seed: 10, Low: 1, High: 2, Check: true}
	r, out, err := runMatVec[int32](cfg, Options{})
	require.NoError(t, err)
	for i, got := range out.hilbert {
		assert.Equal(t, int32(8), got, "out[%d]", i)
	}
	assert.Equal(t, out.naive, out.hilbert)
	assert.Equal(t, MatVec, r.Workload)
}

func TestRunSharesCache(t *testing.T) {
	cache := hilbert.NewCache()
	opts := Options{Cache: cache}
	cfg := smallConfig(8)

	_, err := Run[float64](cfg, opts)
	require.NoError(t, err)
	_, err = RunMatVec[float64](cfg, opts)
	require.NoError(t, err)

	hits, misses := cache.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}

func TestRunCounters(t *testing.T) {
	counters := &fakeCounters{}
	r, err := Run[float64](smallConfig(4), Options{Counters: counters})
	require.NoError(t, err)

	assert.Equal(t, 2, counters.starts)
	assert.Equal(t, 2, counters.stops)
	assert.False(t, counters.closed, "Run must not close caller-owned counters")
	assert.Equal(t, "fake", r.Counters)
	assert.Equal(t, uint64(1000), r.NaiveSample.Cycles)
	assert.Equal(t, uint64(2000), r.HilbertSample.Cycles)
	assert.True(t, r.HasSamples())
}

func TestRunWorkloadUnknown(t *testing.T) {
	_, err := RunWorkload[float64](Workload(7), smallConfig(4), Options{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseWorkload(t *testing.T) {
	for _, w := range Workloads {
		got, err := ParseWorkload(strings.ToUpper(w.String()))
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
	_, err := ParseWorkload("matinv")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCompare(t *testing.T) {
	require.NoError(t, compare([]int32{1, 2}, []int32{1, 2}, 0))

	err := compare([]int32{1, 2, 3}, []int32{1, 5, 3}, 0)
	require.ErrorIs(t, err, ErrResultMismatch)
	assert.Contains(t, err.Error(), "index 1")

	require.ErrorIs(t, compare([]float64{1}, []float64{1, 2}, 0), ErrResultMismatch)

	require.NoError(t, compare([]float32{1000, 2000}, []float32{1000.5, 2000}, 1))
	require.ErrorIs(t, compare([]float32{1000, 2000}, []float32{1002, 2000}, 1), ErrResultMismatch)
}

func TestRunMatVecWideFloatRange(t *testing.T) {
	cfg := Config{N: 64, Repeat: 1, Seed: 10, Low: 1, High: 1 << 20, Check: true}
	t.Run("float32", func(t *testing.T) {
		_, out, err := runMatVec[float32](cfg, Options{})
		require.NoError(t, err)
		assert.Len(t, out.hilbert, 64)
	})
	t.Run("float64", func(t *testing.T) {
		_, err := RunMatVec[float64](cfg, Options{})
		require.NoError(t, err)
	})
	t.Run("int64", func(t *testing.T) {
		_, out, err := runMatVec[int64](cfg, Options{})
		require.NoError(t, err)
		assert.Equal(t, out.naive, out.hilbert)
	})
}

func TestValidateFor(t *testing.T) {
	tests := []struct {
		name     string
		low      int64
		high     int64
		validate func(Config) error
		wantErr  bool
	}{
		{"int64 full span overflows", math.MinInt64, math.MaxInt64, ValidateFor[int64], true},
		{"int64 widest span", -1 << 62, 1<<62 - 1, ValidateFor[int64], false},
		{"int32 above range", 1, 3_000_000_000, ValidateFor[int32], true},
		{"int32 below range", math.MinInt32 - 1, 0, ValidateFor[int32], true},
		{"int32 full range", math.MinInt32, math.MaxInt32 + 1, ValidateFor[int32], false},
		{"int64 holds int32 overflow", 1, 3_000_000_000, ValidateFor[int64], false},
		{"float32 exact integers", -1 << 24, 1<<24 + 1, ValidateFor[float32], false},
		{"float32 beyond exact integers", 1, 1<<24 + 2, ValidateFor[float32], true},
		{"float64 beyond exact integers", -1<<53 - 1, 0, ValidateFor[float64], true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{N: 4, Repeat: 1, Low: tt.low, High: tt.high}
			err := tt.validate(cfg)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}

	// A full int64 span fails validation instead of panicking in the generator.
	cfg := Config{N: 4, Repeat: 1, Low: math.MinInt64, High: math.MaxInt64}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	_, err := Run[int64](cfg, Options{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = RunMatVec[int32](Config{N: 4, Repeat: 1, Low: 1, High: 3_000_000_000}, Options{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRandomMatrixRange(t *testing.T) {
	rng := NewRand(42)
	m := RandomMatrix[int64](16, -3, 4, rng)
	require.Len(t, m, 256)
	seen := map[int64]bool{}
	for _, v := range m {
		require.GreaterOrEqual(t, v, int64(-3))
		require.Less(t, v, int64(4))
		seen[v] = true
	}
	assert.Len(t, seen, 7, "256 draws should cover all 7 values")

	assert.Equal(t, RandomVector[float32](32, 1, 11, NewRand(7)), RandomVector[float32](32, 1, 11, NewRand(7)))
}

func TestTime(t *testing.T) {
	calls := 0
	timing, err := Time(4, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 4, calls)
	assert.GreaterOrEqual(t, timing.Total, timing.PerCall)

	boom := errors.New("boom")
	calls = 0
	_, err = Time(4, func() error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)

	_, err = Time(0, func() error { return nil })
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestImprovement(t *testing.T) {
	tests := []struct {
		name           string
		naive, hilbert time.Duration
		want           float64
	}{
		{"faster", 100 * time.Millisecond, 75 * time.Millisecond, 25},
		{"slower", 100 * time.Millisecond, 150 * time.Millisecond, -50},
		{"equal", time.Second, time.Second, 0},
		{"zero naive", 0, time.Second, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Improvement(Timing{PerCall: tt.naive}, Timing{PerCall: tt.hilbert})
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestReportPrint(t *testing.T) {
	r := &Report{
		Generation:    1500 * time.Microsecond,
		Preprocessing: 250 * time.Microsecond,
		Naive:         Timing{Total: 2 * time.Second, PerCall: 400 * time.Millisecond},
		Hilbert:       Timing{Total: time.Second, PerCall: 200 * time.Millisecond},
		Improvement:   50,
	}
	var buf bytes.Buffer
	require.NoError(t, r.Print(&buf))

	want := []string{
		"Initial data generation: 0.001500s",
		"Hilbert data preprocessing: 0.000250s",
		"Naive: 2.000000s (0.400000s per)",
		"Hilbert: 1.000000s (0.200000s per)",
		"Improvement: 50.00%",
	}
	assert.Equal(t, want, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
}

func TestReportPrintCounters(t *testing.T) {
	r := &Report{
		Counters:      "fake",
		NaiveSample:   perf.Sample{Cycles: 1234567, Instructions: 10},
		HilbertSample: perf.Sample{Cycles: 617283, Instructions: 10},
	}
	var buf bytes.Buffer
	require.NoError(t, r.Print(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[5], "Naive counters (fake): cycles=1,234,567"), lines[5])
	assert.True(t, strings.HasPrefix(lines[6], "Hilbert counters (fake): "), lines[6])
	assert.Equal(t, "Hilbert/Naive: "+perf.Compare(r.NaiveSample, r.HilbertSample), lines[7])
}

func TestSweep(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Sweep[int32](&buf, MatVec, smallConfig(0), 1, 3, Options{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, SweepHeader(false), records[0])

	wantRows := [][2]string{
		{"naive", "2"}, {"hilbert", "2"},
		{"naive", "4"}, {"hilbert", "4"},
		{"naive", "8"}, {"hilbert", "8"},
	}
	for i, want := range wantRows {
		row := records[i+1]
		require.Len(t, row, 3)
		assert.Equal(t, want[0], row[0])
		assert.Equal(t, want[1], row[1])
		assert.NotEmpty(t, row[2])
	}
}

func TestSweepCounters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Sweep[float64](&buf, MatMul, smallConfig(0), 2, 2, Options{Counters: &fakeCounters{}}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, SweepHeader(true), records[0])
	assert.Equal(t, []string{"1000", "2000", "300", "4", "50", "6"}, records[1][3:])
	assert.Equal(t, matmul.Hilbert.String(), records[2][0])
}

// failingCounters fails every Start after the first limit calls.
type failingCounters struct {
	perf.Noop
	starts, limit int
}

func (f *failingCounters) Name() string { return "failing" }

func (f *failingCounters) Start() error {
	f.starts++
	if f.starts > f.limit {
		return errors.New("counter lost")
	}
	return nil
}

func TestSweepFailureWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	err := Sweep[int32](&buf, MatMul, smallConfig(0), 1, 3, Options{Counters: &failingCounters{limit: 2}})
	require.Error(t, err)
	assert.Zero(t, buf.Len(), "partial sweep output: %q", buf.String())
}

func TestSweepStrategies(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Strategies: []matmul.Strategy{matmul.Hilbert}}
	require.NoError(t, Sweep[float64](&buf, MatVec, smallConfig(0), 1, 2, opts))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, row := range records[1:] {
		assert.Equal(t, "hilbert", row[0])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReportPrintWriteError(t *testing.T) {
	r := &Report{NaiveSample: perf.Sample{Cycles: 1}}
	require.ErrorContains(t, r.Print(failingWriter{}), "disk full")
}

func TestSweepInvalidRange(t *testing.T) {
	for _, r := range [][2]int{{3, 2}, {-1, 2}, {0, hilbert.MaxOrder + 1}} {
		err := Sweep[float64](&bytes.Buffer{}, MatMul, smallConfig(0), r[0], r[1], Options{})
		require.ErrorIs(t, err, ErrInvalidConfig, "range %v", r)
	}
}
