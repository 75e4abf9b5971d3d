// Package tnfa is a regular-expression engine whose core is an NFA
// execution model derived from Thompson's construction, explored by
// fine-grained concurrent traversals rather than by backtracking. It
// supports Unicode inputs, labelled capture groups, exhaustive
// enumeration of every match for ambiguous expressions, and random
// string generation from a pattern.
//
// It doesn't implement look-behind, backreferences or POSIX
// longest-leftmost semantics; every quantifier explores all of its
// branches instead of committing greedily.
package tnfa

import (
	"strconv"

	"github.com/ashgrove/tnfa/nfa"
	"github.com/ashgrove/tnfa/syntax"
)

// Regexp is a compiled pattern. It owns an NFA arena; the arena stays
// alive until Teardown is called. A Regexp is safe for concurrent use
// by multiple goroutines: Match/Search/Generate each build their own
// traversal state from the shared, read-only graph.
type Regexp struct {
	pattern string
	graph   *nfa.Graph
}

// Compile parses pattern and builds the NFA that matches it. Lexical
// and parse errors (unmatched brackets, bad escapes, unbalanced
// groups, and so on) are surfaced here as a single failure; no
// partial handle is returned.
func Compile(pattern string, opts Options) (*Regexp, error) {
	g, err := nfa.CompilePattern(pattern, nfa.BuildOptions{Dotall: opts.Dotall})
	if err != nil {
		return nil, err
	}
	return &Regexp{pattern: pattern, graph: g}, nil
}

// MustCompile is like Compile but panics if pattern cannot be parsed.
// It simplifies safe initialization of global variables holding
// compiled patterns.
func MustCompile(pattern string, opts Options) *Regexp {
	re, err := Compile(pattern, opts)
	if err != nil {
		panic(`tnfa: Compile(` + quote(pattern) + `): ` + err.Error())
	}
	return re
}

// Teardown destroys re's NFA. Any traversal still in flight against
// it is dropped rather than acted on; Teardown on an already
// torn-down handle is a no-op.
func (re *Regexp) Teardown() {
	re.graph.Arena.Teardown()
}

// String returns the source text used to compile the pattern.
func (re *Regexp) String() string {
	return re.pattern
}

// Escape escapes every meta-character in input so that the result,
// used as a pattern, matches input literally.
func Escape(input string) string {
	return syntax.Escape(input)
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

// GroupNames returns every named capturing group's label, in no
// particular order. Unnamed groups are not included; query them by
// their ordinal string key instead (see CaptureSet).
func (re *Regexp) GroupNames() []string {
	names := make([]string, 0, len(re.graph.CapNames))
	for name := range re.graph.CapNames {
		names = append(names, name)
	}
	return names
}

// GroupNumberFromName returns the ordinal that corresponds to a named
// capturing group, or -1 if name is not a recognized group label.
// Numbered groups are looked up by parsing name as their decimal
// ordinal.
func (re *Regexp) GroupNumberFromName(name string) int {
	if ordinal, ok := re.graph.CapNames[name]; ok {
		return ordinal
	}
	n, err := strconv.Atoi(name)
	if err != nil || n < 1 || n > re.graph.CapTop {
		return -1
	}
	return n
}
