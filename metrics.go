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

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName identifies this library to OpenTelemetry.
const meterName = "retrie.dev/retrie"

// metricsRecorder holds the OpenTelemetry instruments for one trie.
// All methods are safe for concurrent use; otel instruments synchronize
// internally.
//
// Lookups carry no caller context (the lookup API is context-free by
// design), so measurements are recorded against context.Background().
type metricsRecorder struct {
	lookups       metric.Int64Counter
	candidateSize metric.Int64Histogram
	patterns      metric.Int64Counter
	buildDuration metric.Float64Histogram
}

func newMetricsRecorder(mp metric.MeterProvider) (*metricsRecorder, error) {
	meter := mp.Meter(meterName)
	rec := &metricsRecorder{}

	var err error

	rec.lookups, err = meter.Int64Counter("retrie.lookups",
		metric.WithDescription("Number of lookup operations"),
		metric.WithUnit("{lookup}"))
	if err != nil {
		return nil, fmt.Errorf("create lookups counter: %w", err)
	}

	rec.candidateSize, err = meter.Int64Histogram("retrie.lookup.candidates",
		metric.WithDescription("Candidate patterns examined per lookup"),
		metric.WithUnit("{pattern}"))
	if err != nil {
		return nil, fmt.Errorf("create candidates histogram: %w", err)
	}

	rec.patterns, err = meter.Int64Counter("retrie.patterns",
		metric.WithDescription("Patterns inserted into the trie"),
		metric.WithUnit("{pattern}"))
	if err != nil {
		return nil, fmt.Errorf("create patterns counter: %w", err)
	}

	rec.buildDuration, err = meter.Float64Histogram("retrie.build.duration",
		metric.WithDescription("Duration of batch pattern compilation and insertion"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("create build duration histogram: %w", err)
	}

	return rec, nil
}

func (m *metricsRecorder) recordLookup(candidates, matches int) {
	ctx := context.Background()
	m.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("matched", matches > 0),
	))
	m.candidateSize.Record(ctx, int64(candidates))
}

func (m *metricsRecorder) recordInsert() {
	m.patterns.Add(context.Background(), 1)
}

func (m *metricsRecorder) recordBuild(d time.Duration, patternCount int) {
	m.buildDuration.Record(context.Background(), d.Seconds(), metric.WithAttributes(
		attribute.Int("patterns", patternCount),
	))
}
