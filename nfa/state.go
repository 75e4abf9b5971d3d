package nfa

import "github.com/ashgrove/tnfa/uniset"

// pstate is one Parse traversal's carried state: absolute code-point
// position into the shared input, the open-group stack, and the
// ordinal-indexed captures collected so far. It is small enough that
// cloning it on fan-out (see Captures.clone) is cheap, while the
// input itself is never copied — every traversal addresses the same
// backing rune cache by position.
type pstate struct {
	pos    int
	groups []GroupFrame
	caps   Captures
}

func (s pstate) clone() pstate {
	return pstate{pos: s.pos, groups: cloneGroupStack(s.groups), caps: s.caps.clone()}
}

// gstate is one Generate traversal's carried state: the accumulated
// output, the peek-mode uniset accumulator used inside negated
// classes, and nothing else — there is no input to track and no
// captures are reported from generation.
type gstate struct {
	out       []rune
	peekAccum uniset.Uniset
}
