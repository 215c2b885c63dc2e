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
	"sync"
	"time"

	"retrie.dev/retrie/analyzer"
)

// Build constructs a populated Trie from a pattern list.
//
// Compilation fans out across a worker pool (see WithParallelism); the
// resulting entries are then inserted sequentially in original list order,
// so best-match tie-breaking is a deterministic function of the
// caller-supplied order. If any pattern is invalid, no trie is produced
// and the first error in input order is returned.
func Build(patterns []string, opts ...Option) (*Trie, error) {
	t, err := New(opts...)
	if err != nil {
		return nil, err
	}

	if err := t.InsertMany(patterns); err != nil {
		return nil, err
	}

	return t, nil
}

// InsertMany analyzes a batch of patterns in parallel and installs them in
// original list order. The batch is all-or-nothing: one invalid pattern
// voids the entire batch and the trie is left exactly as it was, though
// entries committed by earlier calls are never rolled back.
func (t *Trie) InsertMany(patterns []string) error {
	start := time.Now()

	entries, err := t.analyzeAll(patterns)
	if err != nil {
		return err
	}

	// Insert phase: strictly sequential, single writer. Trie mutation
	// creates and links arena nodes and is not safe under concurrent
	// writers.
	for _, e := range entries {
		t.insertEntry(e)
	}

	if t.metrics != nil {
		t.metrics.recordBuild(time.Since(start), len(patterns))
	}

	return nil
}

// analyzeAll compiles every pattern across the worker pool and collects
// results preserving input order. Each work unit is independent and touches
// no shared mutable state, so workers need no synchronization beyond the
// final join. A failing compile does not cancel its siblings: all outcomes
// are collected before the first error (in input order) is surfaced.
func (t *Trie) analyzeAll(patterns []string) ([]*analyzer.Entry, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	entries := make([]*analyzer.Entry, len(patterns))
	errs := make([]error, len(patterns))

	workers := t.parallelism
	if workers > len(patterns) {
		workers = len(patterns)
	}

	if workers <= 1 {
		for i, p := range patterns {
			entries[i], errs[i] = analyzer.Analyze(p)
		}
	} else {
		jobs := make(chan int)

		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					entries[i], errs[i] = analyzer.Analyze(patterns[i])
				}
			}()
		}

		for i := range patterns {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return entries, nil
}
