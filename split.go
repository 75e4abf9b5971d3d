package tnfa

import (
	"errors"
	"strconv"
)

// Split splits input on every occurrence re finds. count limits the
// number of matches consumed (-1 = unlimited, 0 = nil, 1 = the
// original input unchanged); any capturing groups in re are
// interleaved into the result the way `-` vs `(-)` differ for "a-b".
func (re *Regexp) Split(input string, count int) ([]string, error) {
	if count < -1 {
		return nil, errors.New("tnfa: count too small")
	}
	if count == 0 {
		return nil, nil
	}
	if count == 1 {
		return []string{input}, nil
	}

	opts := DefaultOptions()
	opts.Multiple = MultipleAll
	res, err := re.Search(input, opts)
	if err != nil {
		return nil, err
	}
	if res.Kind == KindNoMatch {
		return []string{input}, nil
	}

	runes := []rune(input)
	priorIndex := 0
	var out []string
	for _, hit := range res.Hits {
		if count == 0 {
			break
		}
		// multiple=all enumerates every match, including ones that
		// overlap an earlier hit (e.g. "ana" in "banana"); skip any
		// hit that starts before the text already consumed rather
		// than slicing backward.
		if hit.Index.Pos < priorIndex {
			continue
		}
		out = append(out, string(runes[priorIndex:hit.Index.Pos]))
		for ordinal := 1; ordinal <= re.graph.CapTop; ordinal++ {
			if g, ok := hit.Caps[strconv.Itoa(ordinal)]; ok && g.Set {
				out = append(out, captureText(runes, g))
			}
		}
		priorIndex = hit.Index.Pos + hit.Index.Len
		count--
	}
	out = append(out, string(runes[priorIndex:]))
	return out, nil
}

func captureText(runes []rune, v CaptureValue) string {
	if v.Text != "" {
		return v.Text
	}
	return string(runes[v.Pos : v.Pos+v.Len])
}
