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
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-hilbert/hilbert/contrib/matmul"
	"github.com/ajroetker/go-hilbert/hilbert/contrib/perf"
)

// Report is the outcome of one benchmark run.
type Report struct {
	Workload Workload
	DType    string
	N        int
	Repeat   int
	Seed     uint64

	// Generation covers allocating and filling the inputs.
	Generation time.Duration

	// Preprocessing covers building the curve order, plus flattening the
	// matrix for MatVec.
	Preprocessing time.Duration

	Naive   Timing
	Hilbert Timing

	// Improvement is the output of Improvement(Naive, Hilbert).
	Improvement float64

	// Counters names the counters implementation that produced the samples.
	Counters      string
	NaiveSample   perf.Sample
	HilbertSample perf.Sample
}

func (r *Report) record(s matmul.Strategy, t Timing, sample perf.Sample) {
	switch s {
	case matmul.Naive:
		r.Naive, r.NaiveSample = t, sample
	case matmul.Hilbert:
		r.Hilbert, r.HilbertSample = t, sample
	}
}

// Timing returns the timing recorded for s.
func (r *Report) Timing(s matmul.Strategy) Timing {
	if s == matmul.Hilbert {
		return r.Hilbert
	}
	return r.Naive
}

// Sample returns the counter sample recorded for s.
func (r *Report) Sample(s matmul.Strategy) perf.Sample {
	if s == matmul.Hilbert {
		return r.HilbertSample
	}
	return r.NaiveSample
}

// HasSamples reports whether a counters implementation produced any events.
func (r *Report) HasSamples() bool {
	return !r.NaiveSample.IsZero() || !r.HilbertSample.IsZero()
}

// Print writes the report in its console form:
//
//	Initial data generation: 0.001204s
//	Hilbert data preprocessing: 0.000031s
//	Naive: 0.512009s (0.102402s per)
//	Hilbert: 0.473188s (0.094638s per)
//	Improvement: 7.58%
//
// followed by counter lines when samples were collected.
func (r *Report) Print(w io.Writer) error {
	p := message.NewPrinter(language.English)
	title := cases.Title(language.English)

	var buf bytes.Buffer
	p.Fprintf(&buf, "Initial data generation: %.6fs\n", r.Generation.Seconds())
	p.Fprintf(&buf, "Hilbert data preprocessing: %.6fs\n", r.Preprocessing.Seconds())
	for _, s := range matmul.Strategies {
		t := r.Timing(s)
		p.Fprintf(&buf, "%s: %.6fs (%.6fs per)\n", title.String(s.String()), t.Total.Seconds(), t.PerCall.Seconds())
	}
	p.Fprintf(&buf, "Improvement: %.2f%%\n", r.Improvement)
	if r.HasSamples() {
		for _, s := range matmul.Strategies {
			p.Fprintf(&buf, "%s counters (%s): %s\n", title.String(s.String()), r.Counters, formatSample(p, r.Sample(s)))
		}
		p.Fprintf(&buf, "Hilbert/Naive: %s\n", perf.Compare(r.NaiveSample, r.HilbertSample))
	}

	_, err := buf.WriteTo(w)
	return err
}

func formatSample(p *message.Printer, s perf.Sample) string {
	fields := s.Fields()
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = p.Sprintf("%s=%d", f.Name, f.Value)
	}
	return strings.Join(parts, " ")
}
