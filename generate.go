package tnfa

import (
	"github.com/ashgrove/tnfa/nfa"
)

// Generate compiles pattern and samples one random string it
// matches.
func Generate(pattern string, opts Options) (string, error) {
	re, err := Compile(pattern, opts)
	if err != nil {
		return "", err
	}
	defer re.Teardown()
	return re.Generate(opts)
}

// Generate samples one random string re matches: a single traversal
// with Split choosing a branch uniformly at random,
// and each Match/negated-class node drawing a code point from its
// Uniset.
func (re *Regexp) Generate(opts Options) (string, error) {
	return nfa.Generate(re.graph, nfa.GenOptions{})
}
