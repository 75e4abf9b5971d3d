package nfa

import (
	"math/rand"
	"time"

	"github.com/ashgrove/tnfa/uniset"
)

// Multiplicity selects whether Run returns the first accepting
// outcome or every distinct one.
type Multiplicity int

const (
	One Multiplicity = iota
	All
)

// OutcomeKind distinguishes a plain-match result from a search hit.
type OutcomeKind int

const (
	OutMatch OutcomeKind = iota
	OutSearch
)

// Outcome is one successful Parse result, ready for the public API to
// shape into a MatchResult/SearchResult per the return/capture
// options.
type Outcome struct {
	Kind   OutcomeKind
	Begin  int // OutSearch only, in code points
	Length int // OutSearch only, in code points
	Caps   Captures
}

type workItem struct {
	node int
	st   pstate
}

// RunOptions carries the per-run (as opposed to per-compile) choices
// that the executor itself enforces.
type RunOptions struct {
	Multiple Multiplicity
	Timeout  time.Duration
	Offset   int
}

// Run drives one Parse pass of g over subject starting at opts.Offset.
// It returns every Outcome collected (exactly one, unless Multiple is
// All), or a fatal
// *ExecError for a protocol violation or timeout. A plain NoMatch is
// reported as a zero-length, nil outcome slice with a nil error.
func Run(g *Graph, subject *runeCache, opts RunOptions) ([]Outcome, error) {
	e := &executor{
		arena:      g.Arena,
		cacher:     subject,
		multi:      opts.Multiple,
		deadline:   makeDeadline(opts.Timeout),
		active:     1,
	}
	init := pstate{pos: opts.Offset, caps: make(Captures, g.CapTop)}
	e.queue = append(e.queue, workItem{node: g.Arena.Start(), st: init})
	return e.drain()
}

type executor struct {
	arena    *Arena
	cacher   *runeCache
	multi    Multiplicity
	deadline deadline

	queue    []workItem
	active   int
	outcomes []Outcome
	torndown bool
}

func (e *executor) drain() ([]Outcome, error) {
	for len(e.queue) > 0 {
		if e.deadline.reached() {
			return nil, &ExecError{Kind: ErrTimeout, Msg: "executor run exceeded its timeout"}
		}
		item := e.queue[0]
		e.queue = e.queue[1:]
		if e.torndown || !e.arena.Live() {
			continue
		}
		if err := e.step(item); err != nil {
			return nil, err
		}
		if e.active <= 0 {
			break
		}
	}
	return e.outcomes, nil
}

func (e *executor) push(node int, st pstate) {
	e.queue = append(e.queue, workItem{node: node, st: st})
}

func (e *executor) noMatch() {
	e.active--
}

func (e *executor) step(item workItem) error {
	n := &e.arena.nodes[item.node]
	switch n.kind {
	case KStart:
		e.push(n.out, item.st)

	case KMatch:
		remaining := item.st.pos < e.cacher.Len()
		if !remaining {
			e.noMatch()
			return nil
		}
		c := e.cacher.RuneAt(item.st.pos)
		in := uniset.Contains(n.domain, c)
		accept := in
		if n.peek {
			accept = !in
		}
		if !accept {
			e.noMatch()
			return nil
		}
		next := item.st
		if !n.peek {
			next.pos++
		}
		e.push(n.out, next)

	case KSplit:
		targets := n.targets
		if len(targets) == 0 {
			return protocolErrorf("split node %d has no attached targets", item.node)
		}
		if len(targets) > 1 {
			e.active += len(targets) - 1
		}
		for i, t := range targets {
			st := item.st
			if i > 0 {
				st = item.st.clone()
			}
			e.push(t, st)
		}

	case KBeginGroup:
		st := item.st.clone()
		if n.ordinal == searchSentinelOrdinal {
			st.groups = append(st.groups, GroupFrame{IsSearch: true, Start: st.pos})
		} else {
			st.groups = append(st.groups, GroupFrame{Ordinal: n.ordinal, Start: st.pos})
		}
		e.push(n.out, st)

	case KEndGroup:
		if len(item.st.groups) == 0 {
			return protocolErrorf("end-group %d with empty open-group stack", n.ordinal)
		}
		top := item.st.groups[len(item.st.groups)-1]
		if top.Ordinal != n.ordinal || top.IsSearch {
			return protocolErrorf("end-group %d does not match open frame %+v", n.ordinal, top)
		}
		st := item.st.clone()
		st.groups = st.groups[:len(st.groups)-1]
		if top.Ordinal >= 1 && top.Ordinal <= len(st.caps) {
			st.caps[top.Ordinal-1] = Capture{Start: top.Start, End: item.st.pos, Set: true}
		}
		e.push(n.out, st)

	case KBeginPeek:
		e.push(n.out, item.st)

	case KEndPeek:
		st := item.st
		st.pos++
		e.push(n.out, st)

	case KSuccess:
		e.handleSuccess(item.st)

	default:
		return protocolErrorf("unknown node kind %v", n.kind)
	}
	return nil
}

func (e *executor) handleSuccess(st pstate) {
	allSentinel := true
	for _, f := range st.groups {
		if !f.IsSearch {
			allSentinel = false
			break
		}
	}

	switch {
	case len(st.groups) == 0:
		if st.pos < e.cacher.Len() {
			e.noMatch()
			return
		}
		e.record(Outcome{Kind: OutMatch, Caps: st.caps})

	case allSentinel:
		b := st.groups[len(st.groups)-1].Start
		e.record(Outcome{Kind: OutSearch, Begin: b, Length: st.pos - b, Caps: st.caps})

	default:
		e.noMatch()
	}
}

func (e *executor) record(o Outcome) {
	e.outcomes = append(e.outcomes, o)
	if e.multi == One {
		e.teardown()
		return
	}
	e.active--
}

func (e *executor) teardown() {
	e.torndown = true
	e.active = 0
	e.queue = nil
}

// GenOptions carries the Generate mode's randomness source.
type GenOptions struct {
	Rng *rand.Rand
}

// Generate drives one Generate pass of g, in short: a single
// traversal, no fan-out accounting, Split choosing one target
// uniformly. It returns the sampled string once a traversal reaches
// Success.
func Generate(g *Graph, opts GenOptions) (string, error) {
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	node := g.Arena.Start()
	st := gstate{}
	for {
		n := &g.Arena.nodes[node]
		switch n.kind {
		case KStart:
			node = n.out

		case KMatch:
			if !n.peek {
				if n.genPick != nil {
					if c, ok := n.genPick(rng); ok {
						st.out = append(st.out, c)
					}
				}
			} else {
				st.peekAccum = uniset.Union(st.peekAccum, n.domain)
			}
			node = n.out

		case KSplit:
			node = n.targets[rng.Intn(len(n.targets))]

		case KBeginGroup:
			node = n.out

		case KEndGroup:
			node = n.out

		case KBeginPeek:
			st.peekAccum = uniset.None()
			node = n.out

		case KEndPeek:
			c, ok := uniset.PickNeg(rng, st.peekAccum)
			if !ok {
				return "", &ExecError{Kind: ErrUngenerable, Msg: "negated class excludes every code point; nothing to generate"}
			}
			st.out = append(st.out, c)
			node = n.out

		case KSuccess:
			return string(st.out), nil

		default:
			return "", protocolErrorf("unknown node kind %v in generate mode", n.kind)
		}
	}
}
