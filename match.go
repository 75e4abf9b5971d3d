package tnfa

import (
	"unicode/utf8"

	"github.com/ashgrove/tnfa/nfa"
)

func toExecMultiple(m Multiplicity) nfa.Multiplicity {
	if m == MultipleAll {
		return nfa.All
	}
	return nfa.One
}

// Match compiles pattern, matches it against input once, and tears
// down. Compile a Regexp with Compile instead when running the same
// pattern against many inputs.
func Match(pattern, input string, opts Options) (*MatchResult, error) {
	re, err := Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	defer re.Teardown()
	return re.Match(input, opts)
}

// Match runs re against input. A NoMatch is a regular, non-error
// result: Kind KindNoMatch, the input echoed in Input and no capture
// set, with a nil error, means the pattern did not match input.
func (re *Regexp) Match(input string, opts Options) (*MatchResult, error) {
	if err := validateOptions(opts, utf8.RuneCountInString(input)); err != nil {
		return nil, err
	}
	outcomes, err := nfa.Run(re.graph, nfa.NewInput(input), nfa.RunOptions{
		Multiple: toExecMultiple(opts.Multiple),
		Timeout:  effectiveTimeout(opts.Timeout),
		Offset:   opts.Offset,
	})
	if err != nil {
		return nil, err
	}
	if len(outcomes) == 0 {
		return &MatchResult{Kind: KindNoMatch, Input: input}, nil
	}
	if opts.Multiple == MultipleOne {
		return &MatchResult{
			Kind:  KindOne,
			Input: input,
			Match: buildCaptureSet(re.graph, outcomes[0].Caps, input, opts),
		}, nil
	}
	sets := make([]CaptureSet, len(outcomes))
	for i, o := range outcomes {
		sets[i] = buildCaptureSet(re.graph, o.Caps, input, opts)
	}
	return &MatchResult{Kind: KindAll, Input: input, Matches: sets}, nil
}
