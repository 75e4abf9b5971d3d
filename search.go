package tnfa

import (
	"unicode/utf8"

	"github.com/ashgrove/tnfa/nfa"
)

// Search compiles pattern, scans it across input once, and tears
// down in one call.
func Search(pattern, input string, opts Options) (*SearchResult, error) {
	re, err := Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	defer re.Teardown()
	return re.Search(input, opts)
}

// Search scans re across input for a match starting at any position
// >= opts.Offset. A disposable `.*` prefix holder is spliced in front
// of re's own graph for the duration of this call, then discarded;
// re itself is untouched and can be reused.
func (re *Regexp) Search(input string, opts Options) (*SearchResult, error) {
	if err := validateOptions(opts, utf8.RuneCountInString(input)); err != nil {
		return nil, err
	}
	holder := nfa.BuildBatchSearch(re.graph)
	defer holder.Arena.Teardown()

	outcomes, err := nfa.Run(holder, nfa.NewInput(input), nfa.RunOptions{
		Multiple: toExecMultiple(opts.Multiple),
		Timeout:  effectiveTimeout(opts.Timeout),
		Offset:   opts.Offset,
	})
	if err != nil {
		return nil, err
	}
	if len(outcomes) == 0 {
		return &SearchResult{Kind: KindNoMatch, Input: input}, nil
	}

	hits := make([]SearchHit, len(outcomes))
	for i, o := range outcomes {
		hits[i] = searchHitFrom(re.graph, o, input, opts)
	}
	if opts.Multiple == MultipleOne {
		return &SearchResult{Kind: KindOne, Input: input, Hit: hits[0]}, nil
	}
	return &SearchResult{Kind: KindAll, Input: input, Hits: hits}, nil
}

func searchHitFrom(g *nfa.Graph, o nfa.Outcome, input string, opts Options) SearchHit {
	idx := CaptureValue{Set: true, Pos: o.Begin, Len: o.Length}
	if opts.Return == ReturnBinary {
		runes := []rune(input)
		idx = CaptureValue{Set: true, Text: string(runes[o.Begin : o.Begin+o.Length])}
	}
	return SearchHit{
		Index: idx,
		Caps:  buildCaptureSet(g, o.Caps, input, opts),
	}
}
