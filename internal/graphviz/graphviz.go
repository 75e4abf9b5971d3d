// Package graphviz renders a compiled NFA arena as a DOT graph, for
// the `graph_name` debugging hook, kept as an external collaborator
// outside the matching core. The core never imports this package.
package graphviz

import (
	"fmt"
	"strings"

	"github.com/ashgrove/tnfa/nfa"
)

// Export renders g's arena as a DOT digraph named name (or "nfa" if
// name is empty), one node per arena slot and one edge per outgoing
// wire (Match/Start/BeginGroup/EndGroup/BeginPeek/EndPeek's single
// `out`, or Split's `targets`).
func Export(g *nfa.Graph, name string) string {
	if name == "" {
		name = "nfa"
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "digraph %s {\n", quoteID(name))
	buf.WriteString("  rankdir=LR;\n")

	for _, n := range g.Arena.Export() {
		label := n.Kind.String()
		switch n.Kind {
		case nfa.KBeginGroup, nfa.KEndGroup:
			label = fmt.Sprintf("%s(%d)", label, n.Ordinal)
		case nfa.KMatch:
			if n.Peek {
				label = fmt.Sprintf("%s(peek, |domain|=%d)", label, n.DomainSize)
			} else {
				label = fmt.Sprintf("%s(|domain|=%d)", label, n.DomainSize)
			}
		}
		fmt.Fprintf(&buf, "  n%d [label=%s];\n", n.Index, quoteID(label))

		usesOut := n.Kind != nfa.KSplit && n.Kind != nfa.KSuccess
		if usesOut && n.Out >= 0 {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", n.Index, n.Out)
		}
		for _, t := range n.Targets {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", n.Index, t)
		}
	}

	fmt.Fprintf(&buf, "  n%d [shape=doublecircle];\n", g.Arena.Start())
	buf.WriteString("}\n")
	return buf.String()
}

func quoteID(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
