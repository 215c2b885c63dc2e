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

// DiagnosticEvent represents an index diagnostic or anomaly. These are
// informational events that may indicate degraded pruning or surprising
// pattern sets; the index functions correctly whether they are collected
// or not.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagEmptyLiteralPrefix flags a pattern with no literal lead-in
	// (e.g. ".*foo"). Such patterns route to the trie root and are tested
	// against every input, which is the degradation case of this index.
	DiagEmptyLiteralPrefix DiagnosticKind = "empty_literal_prefix"

	// DiagDuplicatePattern flags a pattern string that was already
	// inserted. Duplicates are legal and deliberately not deduplicated
	// (each occurrence matches and is reported independently), but a
	// duplicate is usually a caller-side configuration slip.
	DiagDuplicatePattern DiagnosticKind = "duplicate_pattern"
)

// DiagnosticHandler receives diagnostic events from the index.
// Implementations may log, emit metrics, trace events, or ignore them.
//
// This interface is optional - if not provided, diagnostics are silently
// dropped. The index's behavior is unchanged whether diagnostics are
// collected or not.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := retrie.DiagnosticHandlerFunc(func(e retrie.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	t := retrie.MustNew(retrie.WithDiagnostics(handler))
//
// Example with OpenTelemetry tracing:
//
//	import "go.opentelemetry.io/otel/attribute"
//	import "go.opentelemetry.io/otel/trace"
//
//	handler := retrie.DiagnosticHandlerFunc(func(e retrie.DiagnosticEvent) {
//	    span := trace.SpanFromContext(ctx)
//	    if span.IsRecording() {
//	        span.AddEvent(e.Message, trace.WithAttributes(
//	            attribute.String("diagnostic.kind", string(e.Kind))))
//	    }
//	})
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}

// emitDiagnostic sends an event to the configured handler, if any.
func (t *Trie) emitDiagnostic(kind DiagnosticKind, message string, fields map[string]any) {
	if t.diagnostics == nil {
		return
	}
	t.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: message, Fields: fields})
}
