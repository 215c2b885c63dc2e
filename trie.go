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
	"fmt"
	"runtime"

	"retrie.dev/retrie/analyzer"
)

// node represents one literal byte position reached from the root. Nodes
// live in the Trie's arena and refer to each other by index, so the tree
// carries no pointers between nodes; children maps and entry lists are
// allocated lazily on first use.
//
// Invariant: the byte path from the root to a node equals the literal
// prefix of every entry stored at that node.
type node struct {
	children map[byte]int32 // next literal byte → arena index
	entries  []int32        // entries whose prefix ends here, insertion order
}

// Trie indexes regex patterns by their literal prefixes.
//
// Thread safety: patterns are registered during a single-writer
// configuration phase. Once construction finishes, the trie is read-only
// and FindMatches/FindBestMatch are safe for unlimited concurrent callers
// without locking. Callers that interleave Insert/InsertMany with readers
// must serialize writers against readers externally.
type Trie struct {
	nodes   []node            // node arena; nodes[0] is the root (empty prefix)
	entries []*analyzer.Entry // all installed entries, insertion order

	scorer      Scorer
	parallelism int
	diagnostics DiagnosticHandler
	metrics     *metricsRecorder

	// seen tracks inserted pattern strings for the duplicate diagnostic.
	// Only maintained when a diagnostic handler is configured.
	seen map[string]struct{}
}

// New creates an empty Trie.
//
// The zero configuration uses the pattern-length scorer and a compile
// worker pool sized to runtime.GOMAXPROCS(0). New returns an error only
// for invalid option configuration.
func New(opts ...Option) (*Trie, error) {
	t := &Trie{
		nodes:       make([]node, 1), // root
		scorer:      LengthScorer(),
		parallelism: runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("trie configuration: %w", err)
		}
	}

	if t.diagnostics != nil {
		t.seen = make(map[string]struct{})
	}

	return t, nil
}

// MustNew is like New but panics on configuration errors. Use when options
// are static and a failure is a programming error.
func MustNew(opts ...Option) *Trie {
	t, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// Len returns the number of installed pattern entries. Duplicates count
// individually.
func (t *Trie) Len() int {
	return len(t.entries)
}

// Insert analyzes a single pattern and installs it. On compile failure the
// trie is left untouched and the error is an *InvalidPatternError.
func (t *Trie) Insert(pattern string) error {
	e, err := analyzer.Analyze(pattern)
	if err != nil {
		return err
	}

	t.insertEntry(e)

	return nil
}

// insertEntry places an analyzed entry at the node terminating its literal
// prefix, creating arena nodes lazily along the way. Single writer only.
func (t *Trie) insertEntry(e *analyzer.Entry) {
	prefix := e.Prefix()
	cur := int32(0)

	for i := 0; i < len(prefix); i++ {
		c := prefix[i]

		next, ok := t.nodes[cur].children[c]
		if !ok {
			// Index the new node before linking: append may move the
			// arena, so the child map must never hold stale pointers,
			// only indices.
			t.nodes = append(t.nodes, node{})
			next = int32(len(t.nodes) - 1)

			if t.nodes[cur].children == nil {
				t.nodes[cur].children = make(map[byte]int32)
			}
			t.nodes[cur].children[c] = next
		}
		cur = next
	}

	idx := int32(len(t.entries))
	t.entries = append(t.entries, e)
	t.nodes[cur].entries = append(t.nodes[cur].entries, idx)

	if t.diagnostics != nil {
		if prefix == "" {
			t.emitDiagnostic(DiagEmptyLiteralPrefix,
				"pattern has no literal prefix and will be tested on every lookup",
				map[string]any{"pattern": e.Pattern()})
		}
		if _, dup := t.seen[e.Pattern()]; dup {
			t.emitDiagnostic(DiagDuplicatePattern,
				"pattern string inserted more than once",
				map[string]any{"pattern": e.Pattern()})
		} else {
			t.seen[e.Pattern()] = struct{}{}
		}
	}

	if t.metrics != nil {
		t.metrics.recordInsert()
	}
}

// candidates walks the trie along the input's leading bytes and returns
// every entry that could possibly match: the entries of each visited node,
// root first, in insertion order within a node.
//
// The walk stops at the first input byte with no matching child edge. This
// is safe because every entry's literal prefix is an exact byte sequence:
// once the input diverges from the trie edges, no deeper entry's prefix can
// be a prefix of the input, so no deeper pattern can match.
func (t *Trie) candidates(input string) []*analyzer.Entry {
	var out []*analyzer.Entry

	// Root entries first: patterns with no literal prefix are candidates
	// for every input.
	for _, idx := range t.nodes[0].entries {
		out = append(out, t.entries[idx])
	}

	cur := int32(0)
	for i := 0; i < len(input); i++ {
		next, ok := t.nodes[cur].children[input[i]]
		if !ok {
			break
		}
		cur = next

		for _, idx := range t.nodes[cur].entries {
			out = append(out, t.entries[idx])
		}
	}

	return out
}
