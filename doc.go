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

// Package retrie indexes large, dynamic collections of regular-expression
// patterns so that the subset of patterns that could possibly match a given
// input is found far faster than testing every pattern individually.
//
// It targets workloads such as URL routing and content filtering, where
// thousands of patterns are checked per input and most patterns share
// literal prefixes. Each pattern is decomposed into a literal routing
// prefix plus its full compiled matcher; patterns are organized in a prefix
// trie, and a lookup walks the trie along the input's leading bytes to
// narrow the full pattern set down to a small candidate set before any
// regex is executed.
//
// # Key Features
//
//   - Literal-prefix trie routing with sound pruning: a pattern is only
//     skipped when its literal prefix provably cannot match the input
//   - Whole-input matching via Go's regexp engine; the library decides
//     which compiled patterns to test, never how a regex is evaluated
//   - Parallel pattern compilation with a single-writer insert phase
//   - All-or-nothing batch construction: one invalid pattern voids the
//     whole batch
//   - Pluggable best-match scoring (lower is better, shortest pattern by
//     default)
//   - Optional diagnostics hook and OpenTelemetry metrics
//
// # Quick Start
//
//	t, err := retrie.Build([]string{"hello.*", "hello[a-z]+test", "api/v[0-9]+/.*"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matches := t.FindMatches("helloabctest")   // ["hello.*", "hello[a-z]+test"]
//	best, ok := t.FindBestMatch("helloabctest") // "hello.*", true
//
// # Concurrency
//
// Construction is blocking: pattern compilation fans out across a worker
// pool and all results are joined before the trie is mutated by a single
// writer. Once built, a Trie is read-only and FindMatches/FindBestMatch may
// be called concurrently without locking. Interleaving Insert or InsertMany
// with concurrent readers requires external serialization; the library
// provides no internal synchronization for that case.
//
// # Degradation
//
// When patterns share no literal prefixes (all route to the trie root),
// lookups degrade toward testing every pattern, the naive approach. The
// DiagEmptyLiteralPrefix diagnostic flags such patterns at insert time.
package retrie
