package tnfa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ashgrove/tnfa/nfa"
)

func TestCompileAndMatch(t *testing.T) {
	re := MustCompile("ab", DefaultOptions())

	res, err := re.Match("ab", DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, KindOne, res.Kind)
	require.True(t, res.Match["0"].Set)
	require.Equal(t, "ab", res.Match["0"].Text)

	res, err = re.Match("abab", DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, KindNoMatch, res.Kind)

	opts := DefaultOptions()
	opts.Offset = 2
	res, err = re.Match("XYab", opts)
	require.NoError(t, err)
	require.Equal(t, KindOne, res.Kind)
}

func TestMatchCharClasses(t *testing.T) {
	re := MustCompile("[a-dZ]", DefaultOptions())
	res, err := re.Match("Z", DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, KindOne, res.Kind)

	res, err = re.Match("e", DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, KindNoMatch, res.Kind)

	neg := MustCompile("[^0-9p]", DefaultOptions())
	res, err = neg.Match("a", DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, KindOne, res.Kind)

	res, err = neg.Match("p", DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, KindNoMatch, res.Kind)
}

func TestMatchAlternationGroups(t *testing.T) {
	re := MustCompile("(ab)|(cd)", DefaultOptions())
	opts := DefaultOptions()
	opts.Return = ReturnBinary
	res, err := re.Match("cd", opts)
	require.NoError(t, err)
	require.Equal(t, KindOne, res.Kind)
	require.False(t, res.Match["1"].Set)
	require.True(t, res.Match["2"].Set)
	require.Equal(t, "cd", res.Match["2"].Text)
}

func TestMatchMultipleAll(t *testing.T) {
	re := MustCompile("(a?)(a*)", DefaultOptions())
	opts := DefaultOptions()
	opts.Multiple = MultipleAll
	res, err := re.Match("aa", opts)
	require.NoError(t, err)
	require.Equal(t, KindAll, res.Kind)
	require.Len(t, res.Matches, 2)
}

func TestSearchOverlapping(t *testing.T) {
	re := MustCompile("ana", DefaultOptions())
	opts := DefaultOptions()
	opts.Multiple = MultipleAll
	res, err := re.Search("banana", opts)
	require.NoError(t, err)
	require.Equal(t, KindAll, res.Kind)

	var positions []int
	for _, hit := range res.Hits {
		positions = append(positions, hit.Index.Pos)
	}
	require.ElementsMatch(t, []int{1, 3}, positions)
}

func TestSearchWrappedMatchEquivalence(t *testing.T) {
	// this design: "Search == wrapped match" — the captures of
	// match(".*(" + r + ").*", x) shifted by one index equal the
	// captures of search(r, x); the search index equals the
	// position of group 1.
	// Under multiple=one each run may return any one of the hits, so
	// the two mechanisms are compared on their full multiple=all sets.
	input := "aZnZs"
	opts := DefaultOptions()
	opts.Multiple = MultipleAll
	searchRes, err := Search("Z", input, opts)
	require.NoError(t, err)
	require.Equal(t, KindAll, searchRes.Kind)

	wrapped := MustCompile(nfa.WrapOneShotPattern("Z"), DefaultOptions())
	matchRes, err := wrapped.Match(input, opts)
	require.NoError(t, err)
	require.Equal(t, KindAll, matchRes.Kind)

	var searchSpans, groupSpans [][2]int
	for _, hit := range searchRes.Hits {
		searchSpans = append(searchSpans, [2]int{hit.Index.Pos, hit.Index.Len})
	}
	for _, m := range matchRes.Matches {
		groupSpans = append(groupSpans, [2]int{m["1"].Pos, m["1"].Len})
	}
	require.Len(t, searchSpans, 2)
	require.ElementsMatch(t, searchSpans, groupSpans)
}

func TestMatchProperty(t *testing.T) {
	re := MustCompile(`\p{Lu}+`, DefaultOptions())
	res, err := re.Match("XYZ", DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, KindOne, res.Kind)

	neg := MustCompile(`\P{Lu}+`, DefaultOptions())
	res, err = neg.Match("abc", DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, KindOne, res.Kind)
}

func TestGenerateIsAccepted(t *testing.T) {
	for _, p := range []string{"ab", "a?b", "a*b+", "[a-c]{3}", "[^0-9]+"} {
		re := MustCompile(p, DefaultOptions())
		s, err := re.Generate(DefaultOptions())
		require.NoError(t, err)
		res, err := re.Match(s, DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, KindOne, res.Kind, "generated %q for pattern %q should itself match", s, p)
	}
}

func TestOptionValidation(t *testing.T) {
	re := MustCompile("a", DefaultOptions())

	opts := DefaultOptions()
	opts.Timeout = -1
	_, err := re.Match("a", opts)
	require.ErrorIs(t, err, ErrNegativeTimeout)

	opts = DefaultOptions()
	opts.Offset = -1
	_, err = re.Match("a", opts)
	require.ErrorIs(t, err, ErrNegativeOffset)

	opts = DefaultOptions()
	opts.Offset = 5
	_, err = re.Match("a", opts)
	require.ErrorIs(t, err, ErrOffsetPastInput)
}

func TestGroupNameIntrospection(t *testing.T) {
	re := MustCompile(`(?<year>\d+)-(?<month>\d+)`, DefaultOptions())
	require.ElementsMatch(t, []string{"year", "month"}, re.GroupNames())
	require.Equal(t, 1, re.GroupNumberFromName("year"))
	require.Equal(t, 2, re.GroupNumberFromName("month"))
	require.Equal(t, -1, re.GroupNumberFromName("nope"))
}

func TestEscapeMatchesLiterally(t *testing.T) {
	lit := "a.b*c"
	escaped := Escape(lit)
	require.NotEqual(t, lit, escaped)

	re := MustCompile(escaped, DefaultOptions())
	res, err := re.Match(lit, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, KindOne, res.Kind)
}

func TestGraphExport(t *testing.T) {
	re := MustCompile("a|b", DefaultOptions())
	opts := DefaultOptions()
	opts.GraphName = "mygraph"
	dot := re.Graph(opts)
	require.Contains(t, dot, "digraph \"mygraph\" {")
}
