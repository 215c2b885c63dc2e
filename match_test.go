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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindMatchesSharedPrefix: patterns sharing the "hello" prefix both
// match, unrelated patterns are excluded.
func TestFindMatchesSharedPrefix(t *testing.T) {
	trie := MustNew()
	for _, p := range []string{"hello.*", "hello[a-z]+test", "anotherpattern"} {
		require.NoError(t, trie.Insert(p))
	}

	matches := trie.FindMatches("helloabctest")
	assert.Equal(t, []string{"hello.*", "hello[a-z]+test"}, matches)
	assert.NotContains(t, matches, "anotherpattern")
}

// TestFindBestMatchShortestWins: with the default scorer, the shortest
// pattern string wins among multiple matches.
func TestFindBestMatchShortestWins(t *testing.T) {
	trie, err := Build([]string{"a.*", "a[0-9]+b.*"})
	require.NoError(t, err)

	best, ok := trie.FindBestMatch("a123bbb")
	require.True(t, ok)
	assert.Equal(t, "a.*", best)
}

// TestEmptyTrieLookups: lookups on an empty structure are total functions.
func TestEmptyTrieLookups(t *testing.T) {
	trie := MustNew()

	assert.Empty(t, trie.FindMatches("anything"))

	best, ok := trie.FindBestMatch("anything")
	assert.False(t, ok)
	assert.Empty(t, best)
}

// TestFindMatchesReportsDuplicatesTwice: duplicate insertion yields two
// independent occurrences in the result.
func TestFindMatchesReportsDuplicatesTwice(t *testing.T) {
	trie := MustNew()
	require.NoError(t, trie.Insert("dup[0-9]*"))
	require.NoError(t, trie.Insert("dup[0-9]*"))

	assert.Equal(t, []string{"dup[0-9]*", "dup[0-9]*"}, trie.FindMatches("dup42"))
}

// TestBestMatchConsistentWithMatches: FindBestMatch is nothing exactly when
// FindMatches is empty, otherwise it is the minimum-score element with
// first occurrence winning ties.
func TestBestMatchConsistentWithMatches(t *testing.T) {
	trie, err := Build([]string{"user/.*", "user/[0-9]+", ".*", "admin/.*", "user/1.*"})
	require.NoError(t, err)

	inputs := []string{"user/123", "admin/x", "guest", "", "user/", "user/1"}

	for _, input := range inputs {
		matches := trie.FindMatches(input)
		best, ok := trie.FindBestMatch(input)

		if len(matches) == 0 {
			assert.False(t, ok, "input %q", input)

			continue
		}

		require.True(t, ok, "input %q", input)

		// Recompute the expected winner from the match list.
		expected := matches[0]
		for _, m := range matches[1:] {
			if len(m) < len(expected) {
				expected = m
			}
		}
		assert.Equal(t, expected, best, "input %q", input)
	}
}

// TestMatchSetInvariantUnderInsertionOrder: permuting the insertion order
// changes at most the ordering of results, never the set.
func TestMatchSetInvariantUnderInsertionOrder(t *testing.T) {
	base := []string{"a.*", "ab.*", ".*b", "a[0-9]+", "abc"}
	orders := [][]string{
		{"a.*", "ab.*", ".*b", "a[0-9]+", "abc"},
		{"abc", "a[0-9]+", ".*b", "ab.*", "a.*"},
		{".*b", "abc", "a.*", "a[0-9]+", "ab.*"},
		{"ab.*", "a.*", "abc", ".*b", "a[0-9]+"},
	}

	reference, err := Build(base)
	require.NoError(t, err)

	inputs := []string{"abc", "ab", "a7", "b", "axb", "", "zzz"}

	for _, order := range orders {
		trie, err := Build(order)
		require.NoError(t, err)

		for _, input := range inputs {
			want := append([]string(nil), reference.FindMatches(input)...)
			got := append([]string(nil), trie.FindMatches(input)...)
			sort.Strings(want)
			sort.Strings(got)
			assert.Equal(t, want, got, "input %q, order %v", input, order)
		}
	}
}

// TestBestMatchTieBreaksFirstFound: equal scores resolve to the earliest
// pattern in FindMatches order. With a shared literal prefix that is the
// insertion order, so reversing the build order flips the winner.
func TestBestMatchTieBreaksFirstFound(t *testing.T) {
	// Same prefix, same length, both match "abc".
	a, b := "ab.*", "ab.+"

	forward, err := Build([]string{a, b})
	require.NoError(t, err)
	backward, err := Build([]string{b, a})
	require.NoError(t, err)

	best, ok := forward.FindBestMatch("abc")
	require.True(t, ok)
	assert.Equal(t, a, best)

	best, ok = backward.FindBestMatch("abc")
	require.True(t, ok)
	assert.Equal(t, b, best)
}

// TestBestMatchTieBreaksShallowPrefixFirst: across different nodes the
// FindMatches ordering is shallow-to-deep, so on equal scores the shorter
// literal prefix wins no matter the insertion order.
func TestBestMatchTieBreaksShallowPrefixFirst(t *testing.T) {
	// Equal length, prefixes "a" and "ab"; both match "abxb".
	shallow, deep := "a.*b", "ab.*"

	for _, order := range [][]string{{shallow, deep}, {deep, shallow}} {
		trie, err := Build(order)
		require.NoError(t, err)

		best, ok := trie.FindBestMatch("abxb")
		require.True(t, ok)
		assert.Equal(t, shallow, best, "order %v", order)
	}
}

// TestCustomScorer: a scorer preferring longer patterns inverts the
// default choice.
func TestCustomScorer(t *testing.T) {
	longest := ScorerFunc(func(pattern, _ string) int {
		return -len(pattern)
	})

	trie, err := Build([]string{"a.*", "a[0-9]+b.*"}, WithScorer(longest))
	require.NoError(t, err)

	best, ok := trie.FindBestMatch("a123bbb")
	require.True(t, ok)
	assert.Equal(t, "a[0-9]+b.*", best)
}

// TestScorerSeesInput: the scorer receives the original input string.
func TestScorerSeesInput(t *testing.T) {
	var seenInput string
	spy := ScorerFunc(func(pattern, input string) int {
		seenInput = input

		return len(pattern)
	})

	trie, err := Build([]string{"x.*"}, WithScorer(spy))
	require.NoError(t, err)

	_, ok := trie.FindBestMatch("xyzzy")
	require.True(t, ok)
	assert.Equal(t, "xyzzy", seenInput)
}

// TestWholeInputConvention: a pattern matches only when it accounts for
// the input from start to end.
func TestWholeInputConvention(t *testing.T) {
	trie := MustNew()
	require.NoError(t, trie.Insert("hello.*"))

	assert.Equal(t, []string{"hello.*"}, trie.FindMatches("helloworld"))
	assert.Empty(t, trie.FindMatches("say helloworld"))
	assert.Empty(t, trie.FindMatches("hell"))
}

// TestExactLiteralPatterns: fully-literal patterns match exactly their own
// unescaped text.
func TestExactLiteralPatterns(t *testing.T) {
	trie := MustNew()
	require.NoError(t, trie.Insert("exactmatch"))
	require.NoError(t, trie.Insert(`dotted\.name`))

	assert.Equal(t, []string{"exactmatch"}, trie.FindMatches("exactmatch"))
	assert.Empty(t, trie.FindMatches("exactmatch2"))
	assert.Equal(t, []string{`dotted\.name`}, trie.FindMatches("dotted.name"))
	assert.Empty(t, trie.FindMatches("dottedxname"))
}

// TestInputNeverEchoed: an input that happens to walk the full trie path
// of some pattern is not itself reported; only installed patterns are.
func TestInputNeverEchoed(t *testing.T) {
	trie := MustNew()
	require.NoError(t, trie.Insert("prefix[0-9]+"))

	matches := trie.FindMatches("prefix")
	assert.Empty(t, matches)
}
