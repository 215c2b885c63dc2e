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

// Package analyzer turns raw regex pattern strings into compiled, routable
// entries.
//
// For each pattern, [Analyze] extracts the leading run of literal
// characters (the routing prefix used to place the pattern in a trie) and
// compiles the whole pattern for whole-input matching. The prefix is a
// routing key only: it is never a substitute for running the compiled
// matcher.
//
// # Literal prefix rules
//
// The prefix is read off the parsed syntax tree: it is the leading
// uninterrupted run of case-sensitive literal operands of the pattern's
// top-level concatenation. Escape sequences that denote literal characters
// (\., \*, \\, \n, \t, ...) contribute the character itself; the first
// construct that introduces branching, repetition, case folding, or a
// position assertion ends the prefix. A top-level alternation means there
// is no guaranteed lead-in at all. Stopping early is always sound: a
// shorter prefix only gives up pruning power.
//
// The resulting prefix is a byte-for-byte prefix of every string the
// compiled pattern can match, which is the soundness condition trie
// pruning relies on.
package analyzer
