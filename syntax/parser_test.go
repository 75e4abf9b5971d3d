package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUnparseRoundTrip(t *testing.T) {
	// this design: format(parse(lex(r))) = r for every non-ambiguous
	// regex in the canonical subset.
	patterns := []string{
		"ab",
		"a|b|c",
		"a?b+c*",
		"(ab)(cd)",
		"[a-z0-9]",
		"[^a-z]",
		`\p{Lu}`,
		`\P{Lu}`,
		"a{3}",
	}
	for _, p := range patterns {
		n, _, _, err := Parse(p)
		require.NoError(t, err, p)
		require.Equal(t, p, Format(n), p)
	}
}

func TestParseAssignsOrdinalsInLexOrder(t *testing.T) {
	_, capNames, capTop, err := Parse("(a)(?<mid>b)(c)")
	require.NoError(t, err)
	require.Equal(t, 3, capTop)
	require.Equal(t, 2, capNames["mid"])
}

func TestParseNocapGroupOwnsNoOrdinal(t *testing.T) {
	_, _, capTop, err := Parse("(?:ab)(c)")
	require.NoError(t, err)
	require.Equal(t, 1, capTop)
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"(ab",
		"ab)",
		"a{1}",
		"[z-a]",
		"[]",
		"(?<>a)",
	}
	for _, p := range cases {
		_, _, _, err := Parse(p)
		require.Error(t, err, p)
	}
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	for _, s := range []string{"a.b*c", "1+1=2?", "no metachars here"} {
		require.Equal(t, s, Unescape(Escape(s)), s)
	}
}
