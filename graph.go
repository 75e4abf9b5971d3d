package tnfa

import "github.com/ashgrove/tnfa/internal/graphviz"

// Graph renders re's compiled NFA as a DOT digraph named by
// opts.GraphName (or graphviz's own default, when empty). This is an
// external-collaborator hook outside the matching core: the core
// itself never calls this.
func (re *Regexp) Graph(opts Options) string {
	return graphviz.Export(re.graph, opts.GraphName)
}
