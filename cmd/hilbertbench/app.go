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

package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ajroetker/go-hilbert/hilbert"
	"github.com/ajroetker/go-hilbert/hilbert/contrib/matmul"
	"github.com/ajroetker/go-hilbert/hilbert/contrib/perf"
	"github.com/ajroetker/go-hilbert/internal/bench"
	"github.com/ajroetker/go-hilbert/internal/cpuinfo"
)

// envPrefix prefixes the environment variables that mirror each flag.
const envPrefix = "HILBERTBENCH"

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "devel"

// Element types accepted by --dtype.
var dtypes = []string{"float64", "float32", "int32", "int64"}

// app holds the state shared by every subcommand of one invocation.
type app struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
	cache  *hilbert.Cache
}

func newApp(stdout, stderr io.Writer) *app {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	return &app{
		v:      v,
		stdout: stdout,
		stderr: stderr,
		cache:  hilbert.NewCache(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hilbertbench",
		Short: "Benchmark Hilbert-curve-ordered matrix multiplication.",
		Long: `hilbertbench multiplies random N x N matrices twice, once visiting the
output in row-major order and once in Hilbert-curve order, and reports the
wall-clock difference.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.benchmark(bench.MatMul)
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.PersistentFlags()
	def := bench.DefaultConfig()
	flags.IntP("size", "n", def.N, "matrix side length, a power of two")
	flags.IntP("repeat", "r", def.Repeat, "timed calls per strategy")
	flags.Uint64("seed", def.Seed, "input generator seed, 0 for a random seed")
	flags.String("dtype", dtypes[0], "element type: "+strings.Join(dtypes, ", "))
	flags.Int64("low", def.Low, "smallest generated element")
	flags.Int64("high", def.High, "generated elements are below this value")
	flags.Bool("check", def.Check, "verify both strategies agree")
	flags.Bool("perf-counters", false, "sample hardware performance counters (Linux)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", formatConsole, "log encoding: console, json or logfmt")
	a.bind(flags)

	cmd.AddCommand(a.matvecCmd(), a.sweepCmd(), a.cpuinfoCmd(), a.versionCmd())
	return cmd
}

func (a *app) matvecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matvec",
		Short: "Benchmark the matrix-vector product over a curve-flattened matrix.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.benchmark(bench.MatVec)
		},
	}
}

func (a *app) sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Write per-call timings for N = 2^from .. 2^to as CSV.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.sweep()
		},
	}
	flags := cmd.Flags()
	flags.String("workload", bench.MatVec.String(), "product to sweep: matmul or matvec")
	flags.Int("from", 5, "smallest size exponent")
	flags.Int("to", 11, "largest size exponent")
	flags.StringSlice("strategies", []string{matmul.Naive.String(), matmul.Hilbert.String()}, "strategies to write rows for")
	a.bind(flags)
	return cmd
}

func (a *app) cpuinfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Describe the host CPU.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cpuinfo.Detect().Print(a.stdout)
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.stdout, "hilbertbench %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
}

// bind makes every flag in fs readable through viper under its own name,
// with the matching HILBERTBENCH_* variable as fallback.
func (a *app) bind(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = a.v.BindPFlag(f.Name, f)
	})
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	log, err := newLogger(a.stderr, a.v.GetString("log-level"), a.v.GetString("log-format"))
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

func (a *app) config() bench.Config {
	return bench.Config{
		N:      a.v.GetInt("size"),
		Repeat: a.v.GetInt("repeat"),
		Seed:   a.v.GetUint64("seed"),
		Low:    a.v.GetInt64("low"),
		High:   a.v.GetInt64("high"),
		Check:  a.v.GetBool("check"),
	}
}

// counters opens hardware counters when requested. Counters that cannot be
// opened are logged and replaced by perf.Noop. The returned func releases
// the counters and the OS thread.
func (a *app) counters() (perf.Counters, func()) {
	if !a.v.GetBool("perf-counters") {
		return perf.Noop{}, func() {}
	}
	// perf_event counts the opening thread only.
	runtime.LockOSThread()
	c, err := perf.New()
	if err != nil {
		runtime.UnlockOSThread()
		if errors.Is(err, perf.ErrUnsupported) {
			a.log.Warn("performance counters unavailable, continuing without them", zap.Error(err))
		} else {
			a.log.Warn("opening performance counters", zap.Error(err))
		}
		return perf.Noop{}, func() {}
	}
	return c, func() {
		if err := c.Close(); err != nil {
			a.log.Warn("closing performance counters", zap.Error(err))
		}
		runtime.UnlockOSThread()
	}
}

func (a *app) options() (bench.Options, func()) {
	c, release := a.counters()
	return bench.Options{Logger: a.log, Counters: c, Cache: a.cache}, release
}

func (a *app) benchmark(w bench.Workload) error {
	cfg := a.config()
	dtype := a.v.GetString("dtype")
	opts, release := a.options()
	defer release()

	a.log.Info("starting benchmark",
		zap.Stringer("workload", w),
		zap.Int("n", cfg.N),
		zap.Int("repeat", cfg.Repeat),
		zap.String("dtype", dtype),
		zap.String("counters", opts.Counters.Name()),
		zap.String("host", cpuinfo.Detect().Summary()),
	)
	r, err := runWorkload(w, dtype, cfg, opts)
	if err != nil {
		return err
	}
	return r.Print(a.stdout)
}

func (a *app) sweep() error {
	w, err := bench.ParseWorkload(a.v.GetString("workload"))
	if err != nil {
		return err
	}
	var strategies []matmul.Strategy
	for _, name := range a.v.GetStringSlice("strategies") {
		s, err := matmul.ParseStrategy(strings.TrimSpace(name))
		if err != nil {
			return fmt.Errorf("%w: %v", bench.ErrInvalidConfig, err)
		}
		strategies = append(strategies, s)
	}
	cfg := a.config()
	dtype := a.v.GetString("dtype")
	opts, release := a.options()
	defer release()
	opts.Strategies = strategies

	from, to := a.v.GetInt("from"), a.v.GetInt("to")
	a.log.Info("starting sweep",
		zap.Stringer("workload", w),
		zap.Int("from", from),
		zap.Int("to", to),
		zap.String("dtype", dtype),
	)
	return sweepWorkload(a.stdout, w, dtype, cfg, from, to, opts)
}
