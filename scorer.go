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

// Scorer ranks a matching pattern for best-match selection. Lower scores
// win; ties break to the earliest match in candidate order.
//
// Implementations must be pure, total, and deterministic: the score of a
// (pattern, input) pair may not depend on anything else, and Score must be
// safe for concurrent use since lookups run without locking.
type Scorer interface {
	// Score ranks pattern against the input being matched. The input is
	// provided so scorers can rank by specificity relative to it; the
	// default scorer ignores it.
	Score(pattern, input string) int
}

// ScorerFunc is a function adapter for Scorer.
type ScorerFunc func(pattern, input string) int

func (f ScorerFunc) Score(pattern, input string) int {
	return f(pattern, input)
}

// LengthScorer returns the default scorer: the score of a pattern is the
// length of its pattern string, so the shortest matching pattern wins.
func LengthScorer() Scorer {
	return ScorerFunc(func(pattern, _ string) int {
		return len(pattern)
	})
}
