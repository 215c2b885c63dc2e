// Copyright 2026 The Retrie Authors
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

package retrie

import "go.opentelemetry.io/otel/metric"

// Option configures a Trie during construction.
type Option func(*Trie) error

// WithScorer sets the scorer used by FindBestMatch. The default scores a
// pattern by the length of its pattern string (shortest wins).
//
// Example:
//
//	// Prefer the most specific pattern: longest literal prefix wins.
//	scorer := retrie.ScorerFunc(func(pattern, _ string) int {
//	    prefix, _ := analyzer.LiteralPrefix(pattern)
//	    return -len(prefix)
//	})
//	t := retrie.MustNew(retrie.WithScorer(scorer))
func WithScorer(s Scorer) Option {
	return func(t *Trie) error {
		if s == nil {
			return ErrNilScorer
		}
		t.scorer = s

		return nil
	}
}

// WithParallelism sets the number of workers used to compile pattern
// batches in Build and InsertMany. Defaults to runtime.GOMAXPROCS(0).
// Compilation is CPU-bound, so values above the CPU count rarely help.
func WithParallelism(n int) Option {
	return func(t *Trie) error {
		if n <= 0 {
			return ErrParallelismInvalid
		}
		t.parallelism = n

		return nil
	}
}

// WithDiagnostics sets a diagnostic handler for the trie.
//
// Diagnostic events are optional informational events that flag degraded
// pruning or surprising pattern sets. The trie functions correctly whether
// diagnostics are collected or not. See DiagnosticHandler for wiring
// examples.
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(t *Trie) error {
		if handler == nil {
			return ErrNilDiagnosticHandler
		}
		t.diagnostics = handler

		return nil
	}
}

// WithMeterProvider enables OpenTelemetry metrics using the given provider.
//
// The trie records lookup counts, candidate-set sizes, inserted pattern
// counts, and batch build durations. The global meter provider is never
// consulted or modified, so multiple instrumented tries can coexist with
// different providers in one process.
//
// Example:
//
//	exporter, _ := prometheus.New()
//	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
//	t := retrie.MustNew(retrie.WithMeterProvider(provider))
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(t *Trie) error {
		if mp == nil {
			return ErrNilMeterProvider
		}

		rec, err := newMetricsRecorder(mp)
		if err != nil {
			return err
		}
		t.metrics = rec

		return nil
	}
}
