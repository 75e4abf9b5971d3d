package tnfa

import (
	"errors"
	"strings"
)

// Replace replaces every occurrence re finds in input with
// replacement. count limits the number of matches consumed
// (-1 = unlimited, 0 = the input unchanged). With no matches, input
// is returned unchanged.
func (re *Regexp) Replace(input, replacement string, count int) (string, error) {
	if count < -1 {
		return "", errors.New("tnfa: count too small")
	}
	if count == 0 {
		return input, nil
	}

	opts := DefaultOptions()
	opts.Multiple = MultipleAll
	res, err := re.Search(input, opts)
	if err != nil {
		return "", err
	}
	if res.Kind == KindNoMatch {
		return input, nil
	}

	runes := []rune(input)
	var buf strings.Builder
	priorIndex := 0
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
		buf.WriteString(string(runes[priorIndex:hit.Index.Pos]))
		buf.WriteString(replacement)
		priorIndex = hit.Index.Pos + hit.Index.Len
		count--
	}
	buf.WriteString(string(runes[priorIndex:]))
	return buf.String(), nil
}
