package nfa

import (
	"fmt"
	"math/rand"

	"github.com/ashgrove/tnfa/syntax"
	"github.com/ashgrove/tnfa/uniset"
)

// BuildOptions carries the handful of compile-time choices the
// builder needs from the Options block that affect the graph
// shape itself, as opposed to execution-time behavior (timeout,
// multiple, capture policy), which the Executor applies instead.
type BuildOptions struct {
	Dotall bool
}

// Graph is a fully built, still-capture-count-aware NFA: an Arena
// plus the bookkeeping the Executor and the public API need to make
// sense of it (capture count and label map, straight from syntax.Parse).
type Graph struct {
	Arena    *Arena
	CapNames map[string]int
	CapTop   int

	// FirstCharHint is the set of code points a match of this pattern
	// could possibly begin with; HasFirstCharHint is false when the
	// pattern can match the empty string, in which case no such claim
	// can be made. BuildBatchSearch consults this to skip hopeless scan
	// positions without changing which matches are found.
	FirstCharHint    uniset.Uniset
	HasFirstCharHint bool
}

// Build lowers a parsed AST into a Graph using the combinator table
// below. The returned graph's entry node is a KStart node whose
// single downstream is the compiled pattern body; its tail is wired to
// a KSuccess node.
func Build(root *syntax.Node, capNames map[string]int, capTop int, opts BuildOptions) (*Graph, error) {
	a := NewArena()
	b := &builder{arena: a, opts: opts}
	h, err := b.build(root)
	if err != nil {
		return nil, err
	}
	success := a.addSuccess()
	h.Attach(success)

	start := a.addStart()
	a.setOut(start, h.Entry)
	a.start = start

	g := &Graph{Arena: a, CapNames: capNames, CapTop: capTop}
	if hint, ok := b.firstCharHint(root); ok {
		g.FirstCharHint = hint
		g.HasFirstCharHint = true
	}
	return g, nil
}

// CompilePattern lexes, parses and lowers pattern in one step, the
// combination the public API's Compile wraps with option validation
// and the *Regexp holder type.
func CompilePattern(pattern string, opts BuildOptions) (*Graph, error) {
	root, capNames, capTop, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Build(root, capNames, capTop, opts)
}

type builder struct {
	arena *Arena
	opts  BuildOptions
}

func (b *builder) build(n *syntax.Node) (Handle, error) {
	switch n.Kind {
	case syntax.NkLiteral, syntax.NkAnyChar, syntax.NkProperty, syntax.NkCharRange:
		return b.buildLeaf(n, false)
	case syntax.NkSequence:
		return b.buildSequence(n.Children)
	case syntax.NkGroup:
		return b.buildGroup(n)
	case syntax.NkAlternate:
		return b.buildAlternate(n.Children)
	case syntax.NkZeroOne:
		return b.buildZeroOne(n.Children[0])
	case syntax.NkOneMore:
		return b.buildOneMore(n.Children[0])
	case syntax.NkZeroMore:
		return b.buildZeroMore(n.Children[0])
	case syntax.NkRepeat:
		return b.buildRepeat(n.RepeatN, n.Children[0])
	case syntax.NkCharClass:
		return b.buildCharClass(n)
	default:
		return Handle{}, fmt.Errorf("nfa: build: unhandled node kind %v", n.Kind)
	}
}

// leafDomain computes the "positive domain" of an atomic leaf: the set
// of code points it accepts outside any negated-class context. Every
// leaf kind, including AnyChar, reduces to a uniset membership test
// against this one set — this package's per-kind Match rules collapse
// to Contains(domain, c) once the set itself accounts for the leaf's
// own negation (e.g. \P{L}).
func (b *builder) leafDomain(n *syntax.Node) (uniset.Uniset, error) {
	switch n.Kind {
	case syntax.NkLiteral:
		return uniset.Single(n.Ch), nil
	case syntax.NkCharRange:
		return uniset.FromRange(n.Lo, n.Hi), nil
	case syntax.NkAnyChar:
		if b.opts.Dotall {
			return uniset.All(), nil
		}
		return uniset.Complement(uniset.Single('\n')), nil
	case syntax.NkProperty:
		s, ok := uniset.FromProperty(n.Property.Name)
		if !ok {
			return uniset.Uniset{}, fmt.Errorf("nfa: unknown property %q", n.Property.Name)
		}
		if n.Property.Negated {
			return uniset.Complement(s), nil
		}
		return s, nil
	default:
		return uniset.Uniset{}, fmt.Errorf("nfa: leafDomain: not a leaf: %v", n.Kind)
	}
}

// buildLeaf builds a single KMatch node for an atomic leaf. peek
// selects between the two Match contracts of this design: a normal
// consuming matcher (peek=false) that advances on domain membership,
// or a zero-width peek matcher (peek=true, used only inside a negated
// character class) whose acceptor is domain non-membership.
func (b *builder) buildLeaf(n *syntax.Node, peek bool) (Handle, error) {
	domain, err := b.leafDomain(n)
	if err != nil {
		return Handle{}, err
	}
	var pick GenPicker
	if !peek {
		d := domain
		pick = func(rng *rand.Rand) (rune, bool) {
			if d.Size() == 0 {
				return 0, false
			}
			return uniset.Pick(rng, d), true
		}
	}
	idx := b.arena.addMatch(domain, peek, pick)
	return singleOutHandle(idx, b.arena, idx), nil
}

func (b *builder) buildSequence(children []*syntax.Node) (Handle, error) {
	if len(children) == 0 {
		return Handle{}, fmt.Errorf("nfa: empty sequence")
	}
	handles := make([]Handle, len(children))
	for i, c := range children {
		h, err := b.build(c)
		if err != nil {
			return Handle{}, err
		}
		handles[i] = h
	}
	for i := 0; i < len(handles)-1; i++ {
		handles[i].Attach(handles[i+1].Entry)
	}
	return Handle{Entry: handles[0].Entry, attachFns: handles[len(handles)-1].attachFns}, nil
}

func (b *builder) buildGroup(n *syntax.Node) (Handle, error) {
	seq, err := b.buildSequence(n.Children)
	if err != nil {
		return Handle{}, err
	}
	if n.Group.Kind == syntax.GroupNoCapture {
		return seq, nil
	}
	beginIdx := b.arena.addBeginGroup(n.Group.Ordinal)
	b.arena.setOut(beginIdx, seq.Entry)
	endIdx := b.arena.addEndGroup(n.Group.Ordinal)
	seq.Attach(endIdx)
	return singleOutHandle(beginIdx, b.arena, endIdx), nil
}

func (b *builder) buildAlternate(children []*syntax.Node) (Handle, error) {
	if len(children) < 2 {
		return Handle{}, fmt.Errorf("nfa: alternate needs >= 2 branches")
	}
	handles := make([]Handle, len(children))
	targets := make([]int, len(children))
	for i, c := range children {
		h, err := b.build(c)
		if err != nil {
			return Handle{}, err
		}
		handles[i] = h
		targets[i] = h.Entry
	}
	splitIdx := b.arena.addSplit(targets...)
	var fns []func(int)
	for _, h := range handles {
		fns = append(fns, h.attachFns...)
	}
	return Handle{Entry: splitIdx, attachFns: fns}, nil
}

func (b *builder) buildZeroOne(child *syntax.Node) (Handle, error) {
	p, err := b.build(child)
	if err != nil {
		return Handle{}, err
	}
	splitIdx := b.arena.addSplit(p.Entry)
	fns := append([]func(int){}, p.attachFns...)
	fns = append(fns, func(downstream int) { b.arena.addTarget(splitIdx, downstream) })
	return Handle{Entry: splitIdx, attachFns: fns}, nil
}

func (b *builder) buildOneMore(child *syntax.Node) (Handle, error) {
	p, err := b.build(child)
	if err != nil {
		return Handle{}, err
	}
	splitIdx := b.arena.addSplit(p.Entry)
	p.Attach(splitIdx)
	return Handle{
		Entry: p.Entry,
		attachFns: []func(int){
			func(downstream int) { b.arena.addTarget(splitIdx, downstream) },
		},
	}, nil
}

func (b *builder) buildZeroMore(child *syntax.Node) (Handle, error) {
	p, err := b.build(child)
	if err != nil {
		return Handle{}, err
	}
	splitIdx := b.arena.addSplit(p.Entry)
	p.Attach(splitIdx)
	return Handle{
		Entry: splitIdx,
		attachFns: []func(int){
			func(downstream int) { b.arena.addTarget(splitIdx, downstream) },
		},
	}, nil
}

func (b *builder) buildRepeat(n int, child *syntax.Node) (Handle, error) {
	if n < 2 {
		return Handle{}, fmt.Errorf("nfa: repeat count must be >= 2, got %d", n)
	}
	first, err := b.build(child)
	if err != nil {
		return Handle{}, err
	}
	tail := first
	for i := 1; i < n; i++ {
		next, err := b.build(child)
		if err != nil {
			return Handle{}, err
		}
		tail.Attach(next.Entry)
		tail = next
	}
	return Handle{Entry: first.Entry, attachFns: tail.attachFns}, nil
}

func (b *builder) buildCharClass(n *syntax.Node) (Handle, error) {
	if len(n.Children) == 0 {
		return Handle{}, fmt.Errorf("nfa: empty character class")
	}
	if !n.Negated {
		if len(n.Children) == 1 {
			return b.buildLeaf(n.Children[0], false)
		}
		return b.buildAlternate(n.Children)
	}
	handles := make([]Handle, len(n.Children))
	for i, c := range n.Children {
		h, err := b.buildLeaf(c, true)
		if err != nil {
			return Handle{}, err
		}
		handles[i] = h
	}
	for i := 0; i < len(handles)-1; i++ {
		handles[i].Attach(handles[i+1].Entry)
	}
	beginIdx := b.arena.addBeginPeek()
	b.arena.setOut(beginIdx, handles[0].Entry)
	endIdx := b.arena.addEndPeek()
	handles[len(handles)-1].Attach(endIdx)
	return singleOutHandle(beginIdx, b.arena, endIdx), nil
}

// firstCharHint reports the set of code points n could possibly begin
// a match with. ok is false when n can match the empty string (no
// claim about a first character is possible then), grounded on
// syntax/prefixanalyzer.go's findFirstCharClass, adapted to this
// module's closed AST instead of the conventional thirty-node tree.
func (b *builder) firstCharHint(n *syntax.Node) (uniset.Uniset, bool) {
	set, stop, ok := b.tryFirstChar(n)
	if !ok || !stop {
		return uniset.Uniset{}, false
	}
	return set, true
}

// tryFirstChar returns the accumulated first-char set, whether n is
// guaranteed to consume at least one code point (stop), and whether
// the computation succeeded at all (ok; always true for this grammar,
// kept for symmetry with the conventional tri-state contract).
func (b *builder) tryFirstChar(n *syntax.Node) (set uniset.Uniset, stop bool, ok bool) {
	switch n.Kind {
	case syntax.NkLiteral, syntax.NkAnyChar, syntax.NkProperty, syntax.NkCharRange:
		d, err := b.leafDomain(n)
		if err != nil {
			return uniset.Uniset{}, false, false
		}
		return d, true, true

	case syntax.NkCharClass:
		d, err := b.charClassFirstSet(n)
		if err != nil {
			return uniset.Uniset{}, false, false
		}
		return d, true, true

	case syntax.NkGroup, syntax.NkSequence:
		return b.tryFirstCharSeq(n.Children)

	case syntax.NkAlternate:
		var acc uniset.Uniset
		anyNullable := false
		for _, c := range n.Children {
			s, st, ok := b.tryFirstChar(c)
			if !ok {
				return uniset.Uniset{}, false, false
			}
			acc = uniset.Union(acc, s)
			if !st {
				anyNullable = true
			}
		}
		return acc, !anyNullable, true

	case syntax.NkZeroOne, syntax.NkZeroMore:
		s, _, ok := b.tryFirstChar(n.Children[0])
		return s, false, ok

	case syntax.NkOneMore:
		return b.tryFirstChar(n.Children[0])

	case syntax.NkRepeat:
		var acc uniset.Uniset
		for i := 0; i < n.RepeatN; i++ {
			s, st, ok := b.tryFirstChar(n.Children[0])
			if !ok {
				return uniset.Uniset{}, false, false
			}
			acc = uniset.Union(acc, s)
			if st {
				return acc, true, true
			}
		}
		return acc, false, true

	default:
		return uniset.Uniset{}, false, false
	}
}

func (b *builder) tryFirstCharSeq(children []*syntax.Node) (uniset.Uniset, bool, bool) {
	var acc uniset.Uniset
	for _, c := range children {
		s, stop, ok := b.tryFirstChar(c)
		if !ok {
			return uniset.Uniset{}, false, false
		}
		acc = uniset.Union(acc, s)
		if stop {
			return acc, true, true
		}
	}
	return acc, false, true
}

// charClassFirstSet computes the set of code points a character class
// node accepts, independent of the peek/negation machinery the
// executor uses — a negated class accepts whatever isn't covered by
// the union of its elements' positive domains.
func (b *builder) charClassFirstSet(n *syntax.Node) (uniset.Uniset, error) {
	var acc uniset.Uniset
	for _, c := range n.Children {
		d, err := b.leafDomain(c)
		if err != nil {
			return uniset.Uniset{}, err
		}
		acc = uniset.Union(acc, d)
	}
	if n.Negated {
		return uniset.Complement(acc), nil
	}
	return acc, nil
}
