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
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/ajroetker/go-hilbert/hilbert"
	"github.com/ajroetker/go-hilbert/hilbert/contrib/matmul"
	"github.com/ajroetker/go-hilbert/hilbert/contrib/perf"
)

// SweepHeader returns the CSV header Sweep writes. Counter columns are
// present only when withCounters is set.
func SweepHeader(withCounters bool) []string {
	header := []string{"strategy", "n", "seconds"}
	if withCounters {
		header = append(header, perf.FieldNames...)
	}
	return header
}

// Sweep runs workload w for N = 2^from .. 2^to and writes one CSV row per
// strategy and size to out. The seconds column is the per-call time.
// cfg.N is ignored. Every size shares opts.Cache. Rows are written only
// once every size has run, so a failed sweep writes nothing.
func Sweep[T hilbert.Scalar](out io.Writer, w Workload, cfg Config, from, to int, opts Options) error {
	if from < 0 || to > hilbert.MaxOrder || from > to {
		return fmt.Errorf("%w: sweep range 2^%d..2^%d", ErrInvalidConfig, from, to)
	}
	opts = opts.withDefaults()
	withCounters := opts.Counters.Name() != (perf.Noop{}).Name()

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(SweepHeader(withCounters)); err != nil {
		return err
	}
	for k := from; k <= to; k++ {
		cfg.N = 1 << k
		r, err := RunWorkload[T](w, cfg, opts)
		if err != nil {
			return err
		}
		opts.Logger.Debug("swept size", zap.Int("n", cfg.N), zap.Float64("improvement", r.Improvement))
		for _, s := range opts.strategies() {
			row := []string{
				s.String(),
				strconv.Itoa(r.N),
				strconv.FormatFloat(r.Timing(s).PerCall.Seconds(), 'g', -1, 64),
			}
			if withCounters {
				for _, f := range r.Sample(s).Fields() {
					row = append(row, strconv.FormatUint(f.Value, 10))
				}
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := buf.WriteTo(out)
	return err
}
