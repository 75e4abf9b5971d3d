package nfa

import "github.com/ashgrove/tnfa/uniset"

// WrapOneShotPattern rewrites pattern the way this design describes
// one-shot search: ".*(RE).*", run in plain match mode, with
// capture-index 1 holding the match extent. The caller parses and
// builds the wrapped text exactly like any other pattern; no NFA
// support is needed for this case.
func WrapOneShotPattern(pattern string) string {
	return ".*(" + pattern + ").*"
}

// BuildBatchSearch splices a `.*` scan prefix and a ":search" sentinel
// group in front of an already-built user Graph, per this package's
// batch search: "a separately built .* prefix subgraph is spliced to
// the existing user Start, owned by a disposable holder... the user
// NFA is untouched." The holder gets its own arena — a shallow copy of
// the user's node slice with a few nodes appended — so nothing is
// written into the user's own Arena.
func BuildBatchSearch(user *Graph) *Graph {
	nodes := make([]node, len(user.Arena.nodes))
	copy(nodes, user.Arena.nodes)
	holder := &Arena{nodes: nodes}

	bodyEntry := holder.nodes[user.Arena.Start()].out

	matchIdx := holder.addMatch(uniset.All(), false, nil)
	splitIdx := holder.addSplit(matchIdx)
	holder.setOut(matchIdx, splitIdx)

	beginIdx := holder.addBeginSearchGroup()
	holder.addTarget(splitIdx, beginIdx)

	// If the body can't possibly start with the code point at the
	// current scan position, don't bother entering it — a zero-width
	// gate that rejects without consuming, so the .* loop just keeps
	// scanning. This never changes which matches are found (per
	// this design); it only skips traversals that would have failed
	// on their very first step anyway.
	if user.HasFirstCharHint {
		gateIdx := holder.addMatch(uniset.Complement(user.FirstCharHint), true, nil)
		holder.setOut(beginIdx, gateIdx)
		holder.setOut(gateIdx, bodyEntry)
	} else {
		holder.setOut(beginIdx, bodyEntry)
	}

	holder.start = splitIdx

	return &Graph{
		Arena:            holder,
		CapNames:         user.CapNames,
		CapTop:           user.CapTop,
		FirstCharHint:    user.FirstCharHint,
		HasFirstCharHint: user.HasFirstCharHint,
	}
}
