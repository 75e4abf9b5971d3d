package syntax

import "fmt"

// NodeKind tags the recursive sum type described in this design: a
// handful of leaf kinds and a handful of branch kinds. Collapsing the
// many tiny node variants of a faithful backtracking tree (the
// teacher's tree.go has near thirty NodeType values for peephole
// variants like Oneloop/Notoneloop/Setloop) into this one small
// enumeration is deliberate — traversal semantics here don't need a
// greedy/lazy/atomic distinction, so there's nothing to collapse
// *into* besides the construct itself.
type NodeKind int32

const (
	NkLiteral   NodeKind = iota // a single code point
	NkAnyChar                   // .
	NkProperty                  // \p{...} / \P{...} (also used as a class element)
	NkCharRange                 // c1-c2, only valid inside a CharClass
	NkSequence                  // concatenation
	NkGroup                     // (...), (?:...), (?<name>...)
	NkAlternate                 // a|b|c, >= 2 children
	NkZeroOne                   // ?
	NkOneMore                   // +
	NkZeroMore                  // *
	NkRepeat                    // {n}, n >= 2
	NkCharClass                 // [...] / [^...]
)

func (k NodeKind) String() string {
	names := [...]string{"Literal", "AnyChar", "Property", "CharRange", "Sequence",
		"Group", "Alternate", "ZeroOne", "OneMore", "ZeroMore", "Repeat", "CharClass"}
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("NodeKind(%d)", int32(k))
}

// PropertyRef names a \p{...}/\P{...} reference carried by a Property
// leaf: whether it's negated and the (unresolved, still textual) name
// to hand to uniset.FromProperty at build time.
type PropertyRef struct {
	Negated bool
	Name    string
}

// Node is the parsed-tree representation described in this design
// Only the fields relevant to Kind are populated; the rest are zero.
type Node struct {
	Kind     NodeKind
	Children []*Node

	Ch       rune // NkLiteral
	Lo, Hi   rune // NkCharRange
	Property PropertyRef

	Group   GroupName // NkGroup
	RepeatN int       // NkRepeat

	Negated bool // NkCharClass: positive vs negative sign
}

func newLeaf(kind NodeKind) *Node { return &Node{Kind: kind} }

func newLiteral(ch rune) *Node { return &Node{Kind: NkLiteral, Ch: ch} }

func newCharRange(lo, hi rune) *Node { return &Node{Kind: NkCharRange, Lo: lo, Hi: hi} }

func newProperty(ref PropertyRef) *Node { return &Node{Kind: NkProperty, Property: ref} }

func newSequence(children []*Node) *Node {
	if len(children) == 1 {
		return children[0]
	}
	return &Node{Kind: NkSequence, Children: children}
}

// newGroup wraps children (already an implicit concatenation) in a
// Group node; the NFA builder sequences them the same way it
// sequences an explicit Sequence node's children.
func newGroup(name GroupName, children []*Node) *Node {
	return &Node{Kind: NkGroup, Group: name, Children: children}
}

func newAlternate(children []*Node) *Node {
	return &Node{Kind: NkAlternate, Children: children}
}

func newQuantifier(kind NodeKind, child *Node) *Node {
	return &Node{Kind: kind, Children: []*Node{child}}
}

func newRepeat(n int, child *Node) *Node {
	return &Node{Kind: NkRepeat, RepeatN: n, Children: []*Node{child}}
}

func newCharClass(negated bool, elems []*Node) *Node {
	return &Node{Kind: NkCharClass, Negated: negated, Children: elems}
}
