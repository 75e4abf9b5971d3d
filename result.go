package tnfa

import (
	"strconv"

	"github.com/ashgrove/tnfa/nfa"
)

// CaptureValue is one capture key's payload, shaped by the Return
// option: either an (pos, len) index pair in code points, or the
// matched substring itself. Set is false for a group that never
// matched within a successful overall result (e.g. the unmatched
// branch of an alternation).
type CaptureValue struct {
	Set  bool
	Pos  int
	Len  int
	Text string
}

// CaptureSet is a result's capture-key map: key -> {pos,len} or
// NoCapture. Key "0" is always present and always carries the whole
// input string, regardless of the Return option.
type CaptureSet map[string]CaptureValue

// ResultKind distinguishes the three-way shape every MatchResult and
// SearchResult can take: no match, exactly one, or every one found.
type ResultKind int

const (
	KindNoMatch ResultKind = iota
	KindOne
	KindAll
)

// MatchResult is the outcome of a Match operation: either no match,
// one capture set, or every capture set found.
type MatchResult struct {
	Kind    ResultKind
	Input   string
	Match   CaptureSet
	Matches []CaptureSet
}

// SearchHit is one located occurrence: the match extent plus its
// capture set.
type SearchHit struct {
	Index CaptureValue
	Caps  CaptureSet
}

// SearchResult is the outcome of a Search operation: either no match,
// one located occurrence, or every occurrence found.
type SearchResult struct {
	Kind  ResultKind
	Input string
	Hit   SearchHit
	Hits  []SearchHit
}

func buildCaptureSet(g *nfa.Graph, caps nfa.Captures, input string, opts Options) CaptureSet {
	cs := CaptureSet{"0": CaptureValue{Set: true, Text: input}}

	include := func(key string) bool {
		switch opts.Capture {
		case CaptureNone:
			return false
		case CaptureList:
			for _, k := range opts.CaptureKeys {
				if k == key {
					return true
				}
			}
			return false
		case CaptureNamed:
			return false // labels are added separately below
		default: // CaptureAll
			return true
		}
	}

	runes := []rune(input)
	for ordinal := 1; ordinal <= g.CapTop; ordinal++ {
		key := strconv.Itoa(ordinal)
		if !include(key) {
			continue
		}
		cs[key] = captureValue(caps, ordinal, runes, opts)
	}

	for label, ordinal := range g.CapNames {
		wanted := opts.Capture == CaptureAll || opts.Capture == CaptureNamed
		if opts.Capture == CaptureList {
			for _, k := range opts.CaptureKeys {
				if k == label {
					wanted = true
				}
			}
		}
		if !wanted {
			continue
		}
		cs[label] = captureValue(caps, ordinal, runes, opts)
	}

	return cs
}

func captureValue(caps nfa.Captures, ordinal int, runes []rune, opts Options) CaptureValue {
	if ordinal < 1 || ordinal > len(caps) {
		return CaptureValue{}
	}
	c := caps[ordinal-1]
	if !c.Set {
		return CaptureValue{}
	}
	if opts.Return == ReturnBinary {
		return CaptureValue{Set: true, Text: string(runes[c.Start:c.End])}
	}
	return CaptureValue{Set: true, Pos: c.Start, Len: c.End - c.Start}
}
