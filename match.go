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

// FindMatches returns the pattern strings of every installed pattern whose
// compiled matcher accounts for the entire input, in candidate order:
// shallowest literal prefix first, insertion order among equal prefixes.
// Duplicated patterns are reported once per occurrence.
//
// Safe for concurrent use on a trie that is not being mutated.
func (t *Trie) FindMatches(input string) []string {
	cands := t.candidates(input)

	var matches []string
	for _, e := range cands {
		if e.Matches(input) {
			matches = append(matches, e.Pattern())
		}
	}

	if t.metrics != nil {
		t.metrics.recordLookup(len(cands), len(matches))
	}

	return matches
}

// FindBestMatch returns the matching pattern with the minimum score under
// the trie's configured scorer, or ok=false when nothing matches. Ties
// break to the earliest pattern in FindMatches order, so the result is a
// deterministic function of the insertion order.
//
// Safe for concurrent use on a trie that is not being mutated.
func (t *Trie) FindBestMatch(input string) (string, bool) {
	cands := t.candidates(input)

	var (
		best      string
		bestScore int
		found     bool
		matched   int
	)

	for _, e := range cands {
		if !e.Matches(input) {
			continue
		}
		matched++

		// Strict less-than keeps the first-found pattern on ties.
		score := t.scorer.Score(e.Pattern(), input)
		if !found || score < bestScore {
			best = e.Pattern()
			bestScore = score
			found = true
		}
	}

	if t.metrics != nil {
		t.metrics.recordLookup(len(cands), matched)
	}

	return best, found
}
