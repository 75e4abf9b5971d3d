// Package nfa implements a Thompson-construction NFA graph: a
// directed, possibly cyclic multigraph of small node kinds, built by
// combinators from an AST and explored by a traversal-counting
// executor instead of backtracking.
//
// The graph is represented as an arena: a slice of node records
// addressed by index rather than a tree of heap-linked,
// lifetime-managed processes. A "task per node with channels"
// realization would work just as well; this module picks the arena
// plus single dispatch loop because it's the one a single goroutine
// can run deterministically, which matters for a library whose whole
// purpose is correctness under concurrent exploration, not
// wall-clock parallelism.
package nfa

import (
	"math/rand"

	"github.com/ashgrove/tnfa/uniset"
)

// Kind tags a node record's runtime contract.
type Kind int32

const (
	KMatch Kind = iota
	KSplit
	KBeginGroup
	KEndGroup
	KBeginPeek
	KEndPeek
	KStart
	KSuccess
)

func (k Kind) String() string {
	switch k {
	case KMatch:
		return "Match"
	case KSplit:
		return "Split"
	case KBeginGroup:
		return "BeginGroup"
	case KEndGroup:
		return "EndGroup"
	case KBeginPeek:
		return "BeginPeek"
	case KEndPeek:
		return "EndPeek"
	case KStart:
		return "Start"
	case KSuccess:
		return "Success"
	default:
		return "Unknown"
	}
}

// GenPicker samples a code point to append during generation. ok is
// false when nothing can be produced (e.g. an empty domain), in which
// case the caller leaves the accumulated output unchanged.
type GenPicker func(rng *rand.Rand) (c rune, ok bool)

// node is one arena entry. Only the fields relevant to Kind are used.
type node struct {
	kind Kind

	// KMatch
	domain  uniset.Uniset
	peek    bool
	genPick GenPicker
	out     int // single downstream, or -1

	// KSplit
	targets []int

	// KBeginGroup / KEndGroup
	ordinal int

	// KBeginGroup / KEndGroup / KBeginPeek / KEndPeek / KStart also use
	// `out`; KSuccess has no downstream
}

const noTarget = -1

// Arena owns the node records of one compiled NFA. All nodes live as
// long as the Arena lives, and Teardown marks it dead so in-flight
// messages to it are dropped rather than acted on.
type Arena struct {
	nodes    []node
	start    int
	torndown bool
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) alloc(n node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

func (a *Arena) addMatch(domain uniset.Uniset, peek bool, genPick GenPicker) int {
	return a.alloc(node{kind: KMatch, domain: domain, peek: peek, genPick: genPick, out: noTarget})
}

func (a *Arena) addSplit(targets ...int) int {
	t := make([]int, len(targets))
	copy(t, targets)
	return a.alloc(node{kind: KSplit, targets: t})
}

func (a *Arena) addBeginGroup(ordinal int) int {
	return a.alloc(node{kind: KBeginGroup, ordinal: ordinal, out: noTarget})
}

// searchSentinelOrdinal is the reserved BeginGroup ordinal that marks
// the synthetic ":search" frame spliced in front of a batch search;
// it can never collide with a real capture ordinal, which are always
// >= 1.
const searchSentinelOrdinal = -1

func (a *Arena) addBeginSearchGroup() int {
	return a.alloc(node{kind: KBeginGroup, ordinal: searchSentinelOrdinal, out: noTarget})
}

func (a *Arena) addEndGroup(ordinal int) int {
	return a.alloc(node{kind: KEndGroup, ordinal: ordinal, out: noTarget})
}

func (a *Arena) addBeginPeek() int {
	return a.alloc(node{kind: KBeginPeek, out: noTarget})
}

func (a *Arena) addEndPeek() int {
	return a.alloc(node{kind: KEndPeek, out: noTarget})
}

func (a *Arena) addStart() int {
	return a.alloc(node{kind: KStart, out: noTarget})
}

func (a *Arena) addSuccess() int {
	return a.alloc(node{kind: KSuccess})
}

func (a *Arena) setOut(idx, downstream int) {
	a.nodes[idx].out = downstream
}

func (a *Arena) addTarget(idx, downstream int) {
	a.nodes[idx].targets = append(a.nodes[idx].targets, downstream)
}

// Start returns the arena's entry node index.
func (a *Arena) Start() int { return a.start }

// Teardown marks the arena dead. Any traversal still addressed to one
// of its nodes is dropped silently by the executor rather than acted
// on.
func (a *Arena) Teardown() {
	a.torndown = true
}

// Live reports whether the arena still accepts traversals.
func (a *Arena) Live() bool { return !a.torndown }

// NodeView is a read-only summary of one arena node, for debugging
// tools (e.g. DOT export) that have no business touching genPick
// closures or mutating wiring.
type NodeView struct {
	Index      int
	Kind       Kind
	Out        int
	Targets    []int
	Ordinal    int
	Peek       bool
	DomainSize int
}

// Export returns a NodeView per live node, in arena order.
func (a *Arena) Export() []NodeView {
	views := make([]NodeView, len(a.nodes))
	for i, n := range a.nodes {
		views[i] = NodeView{
			Index:      i,
			Kind:       n.kind,
			Out:        n.out,
			Targets:    append([]int(nil), n.targets...),
			Ordinal:    n.ordinal,
			Peek:       n.peek,
			DomainSize: n.domain.Size(),
		}
	}
	return views
}

// Handle is what every builder combinator returns: an entry point
// into the subgraph it just built, plus a deferred way to wire that
// subgraph's dangling "tail" output(s) to whatever node comes next
// once the enclosing combinator knows what that is: an input port and
// output port(s), not yet connected.
type Handle struct {
	Entry     int
	attachFns []func(downstream int)
}

// Attach wires every dangling tail in h to downstream.
func (h Handle) Attach(downstream int) {
	for _, fn := range h.attachFns {
		fn(downstream)
	}
}

func singleOutHandle(entry int, a *Arena, outNodeIdx int) Handle {
	return Handle{
		Entry: entry,
		attachFns: []func(int){
			func(downstream int) { a.setOut(outNodeIdx, downstream) },
		},
	}
}
