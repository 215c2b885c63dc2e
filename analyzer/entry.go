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

package analyzer

import "regexp"

// Entry is a compiled pattern ready for trie placement. Entries are
// immutable once created: the analyzer builds one per pattern and never
// touches it again, so entries may be read concurrently without locking.
type Entry struct {
	pattern string         // original pattern text (identity/display value)
	prefix  string         // unescaped literal prefix, the trie routing key
	matcher *regexp.Regexp // whole-input matcher for the full pattern
	exact   bool           // pattern is entirely literal (prefix == whole pattern)
}

// Pattern returns the original pattern text as supplied by the caller.
func (e *Entry) Pattern() string {
	return e.pattern
}

// Prefix returns the unescaped literal prefix used to place the entry in
// the trie. May be empty for patterns with no literal lead-in (e.g. ".*").
func (e *Entry) Prefix() string {
	return e.prefix
}

// Exact reports whether the pattern contains no regex syntax at all.
func (e *Entry) Exact() bool {
	return e.exact
}

// Matches reports whether the entry's pattern accounts for the entire
// input. Fully-literal patterns short-circuit to a string comparison; the
// result is identical to running the compiled matcher, since a literal
// pattern under the whole-input convention matches exactly its own
// unescaped text.
func (e *Entry) Matches(input string) bool {
	if e.exact {
		return input == e.prefix
	}

	return e.matcher.MatchString(input)
}
