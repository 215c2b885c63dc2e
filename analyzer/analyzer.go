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

import (
	"fmt"
	"regexp"
	"regexp/syntax"
	"strings"
)

// InvalidPatternError reports a pattern that the regex engine rejected.
// It is the only failure mode of pattern registration; the offending
// pattern is never installed anywhere.
type InvalidPatternError struct {
	Pattern string // the pattern as supplied by the caller
	Err     error  // the underlying syntax diagnostic
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying regex syntax error.
func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Analyze compiles a pattern and extracts its literal routing prefix.
//
// The entire original pattern is compiled, not the remainder after the
// prefix: stripping the prefix would shift anchors relative to the true
// start of input. Matching uses the whole-input convention (the pattern
// must account for the input from start to end), implemented by wrapping
// the pattern as \A(?:pattern)\z.
//
// Analyze is pure and deterministic: the same pattern string always yields
// the same entry (or the same error) and no shared state is touched, which
// is what allows callers to fan analysis out across goroutines.
func Analyze(pattern string) (*Entry, error) {
	// Compile the caller's text first so syntax errors are reported
	// against it, not against the wrapped form.
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}

	matcher, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}

	prefix, exact := LiteralPrefix(pattern)

	return &Entry{
		pattern: pattern,
		prefix:  prefix,
		matcher: matcher,
		exact:   exact,
	}, nil
}

// LiteralPrefix returns the leading run of literal characters of a pattern,
// in unescaped form, and whether the pattern consists of nothing else
// (i.e. contains no regex syntax at all). Invalid patterns report an empty
// prefix.
//
// The prefix is computed from the parsed syntax tree rather than a flat
// character scan: operator scope makes a flat scan unsound. A quantifier
// binds the literal before it ("colou?r" matches "color"), and a top-level
// alternation anywhere voids everything before it ("ab.c|d" matches "d").
// On the tree both cases are visible directly: the prefix is the leading
// uninterrupted run of case-sensitive literal operands of the top-level
// concatenation, and any other operator at the top ends it.
//
// Examples:
//
//	"hello.*"      → "hello", false
//	`foo\.bar`     → "foo.bar", true
//	"colou?r"      → "colo", false
//	"ab.c|d"       → "", false
//	"(?i)hello.*"  → "", false   (case folding voids the byte guarantee)
//	`\d+`          → "", false
func LiteralPrefix(pattern string) (string, bool) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return "", false
	}

	switch re.Op {
	case syntax.OpEmptyMatch:
		return "", true

	case syntax.OpLiteral:
		if re.Flags&syntax.FoldCase != 0 {
			// A case-folded literal matches more than its own bytes.
			return "", false
		}

		return string(re.Rune), true

	case syntax.OpConcat:
		var b strings.Builder
		for _, sub := range re.Sub {
			if sub.Op != syntax.OpLiteral || sub.Flags&syntax.FoldCase != 0 {
				return b.String(), false
			}
			b.WriteString(string(sub.Rune))
		}

		return b.String(), true

	default:
		// Alternation, class, repetition, anchor, or wildcard at the top:
		// no guaranteed literal lead-in.
		return "", false
	}
}
