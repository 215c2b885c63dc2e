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
	"errors"

	"retrie.dev/retrie/analyzer"
)

// InvalidPatternError reports a pattern the regex engine rejected. It is
// the only failure mode of pattern registration: lookups are total
// functions and never fail. Match it with errors.As:
//
//	var perr *retrie.InvalidPatternError
//	if errors.As(err, &perr) {
//	    log.Printf("bad pattern %q: %v", perr.Pattern, perr.Err)
//	}
type InvalidPatternError = analyzer.InvalidPatternError

var (
	// ErrNilScorer indicates that WithScorer was given a nil scorer.
	ErrNilScorer = errors.New("scorer must not be nil")

	// ErrParallelismInvalid indicates that the builder parallelism must be positive.
	ErrParallelismInvalid = errors.New("parallelism must be positive")

	// ErrNilMeterProvider indicates that WithMeterProvider was given a nil provider.
	ErrNilMeterProvider = errors.New("meter provider must not be nil")

	// ErrNilDiagnosticHandler indicates that WithDiagnostics was given a nil handler.
	ErrNilDiagnosticHandler = errors.New("diagnostic handler must not be nil")
)
