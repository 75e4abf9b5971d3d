package nfa

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, pattern string, opts BuildOptions) *Graph {
	t.Helper()
	g, err := CompilePattern(pattern, opts)
	require.NoError(t, err)
	return g
}

func runMatch(t *testing.T, g *Graph, input string, offset int, multi Multiplicity) []Outcome {
	t.Helper()
	out, err := Run(g, NewInput(input), RunOptions{
		Multiple: multi,
		Timeout:  time.Second,
		Offset:   offset,
	})
	require.NoError(t, err)
	return out
}

func TestMatchLiteralSequence(t *testing.T) {
	g := mustCompile(t, "ab", BuildOptions{})

	require.Len(t, runMatch(t, g, "ab", 0, One), 1)
	require.Empty(t, runMatch(t, g, "abab", 0, One))

	got := runMatch(t, g, "XYab", 2, One)
	require.Len(t, got, 1)
}

func TestMatchCharClassPositive(t *testing.T) {
	g := mustCompile(t, "[a-dZ]", BuildOptions{})

	require.Len(t, runMatch(t, g, "Z", 0, One), 1)
	require.Empty(t, runMatch(t, g, "e", 0, One))
}

func TestMatchCharClassNegated(t *testing.T) {
	g := mustCompile(t, "[^0-9p]", BuildOptions{})

	require.Len(t, runMatch(t, g, "a", 0, One), 1)
	require.Empty(t, runMatch(t, g, "p", 0, One))
}

func TestMatchAlternationWithGroups(t *testing.T) {
	g := mustCompile(t, "(ab)|(cd)", BuildOptions{})

	out := runMatch(t, g, "cd", 0, One)
	require.Len(t, out, 1)
	caps := out[0].Caps
	require.Len(t, caps, 2)
	require.False(t, caps[0].Set, "group 1 should not have matched")
	require.True(t, caps[1].Set, "group 2 should have matched")
	require.Equal(t, 0, caps[1].Start)
	require.Equal(t, 2, caps[1].End)
}

func TestMatchMultipleAll(t *testing.T) {
	g := mustCompile(t, "(a?)(a*)", BuildOptions{})

	out := runMatch(t, g, "aa", 0, All)
	require.Len(t, out, 2)

	seen := map[[2]string]bool{}
	for _, o := range out {
		c1, c2 := "", ""
		if o.Caps[0].Set {
			c1 = spanOf("aa", o.Caps[0])
		}
		if o.Caps[1].Set {
			c2 = spanOf("aa", o.Caps[1])
		}
		seen[[2]string{c1, c2}] = true
	}
	require.True(t, seen[[2]string{"", "aa"}])
	require.True(t, seen[[2]string{"a", "a"}])
}

func spanOf(s string, c Capture) string {
	r := []rune(s)
	return string(r[c.Start:c.End])
}

func TestMatchProperty(t *testing.T) {
	g := mustCompile(t, `\p{Lu}+`, BuildOptions{})
	require.Len(t, runMatch(t, g, "XYZ", 0, One), 1)

	g2 := mustCompile(t, `\P{Lu}+`, BuildOptions{})
	require.Len(t, runMatch(t, g2, "abc", 0, One), 1)
}

func TestBatchSearchOverlapping(t *testing.T) {
	user := mustCompile(t, "ana", BuildOptions{})
	search := BuildBatchSearch(user)

	out := runMatch(t, search, "banana", 0, All)
	require.Len(t, out, 2)

	var begins []int
	for _, o := range out {
		require.Equal(t, OutSearch, o.Kind)
		begins = append(begins, o.Begin)
	}
	require.ElementsMatch(t, []int{1, 3}, begins)
}

func TestOneShotSearchWrap(t *testing.T) {
	wrapped := WrapOneShotPattern("Z")
	g := mustCompile(t, wrapped, BuildOptions{})

	out := runMatch(t, g, "aZb", 0, One)
	require.Len(t, out, 1)
	require.True(t, out[0].Caps[0].Set)
	require.Equal(t, 1, out[0].Caps[0].Start)
	require.Equal(t, 2, out[0].Caps[0].End)
}

func TestGenerateIsAccepted(t *testing.T) {
	patterns := []string{"ab", "a?b", "a*b+", "[a-c]{3}", "[^0-9]+"}
	for _, p := range patterns {
		g := mustCompile(t, p, BuildOptions{})
		s, err := Generate(g, GenOptions{})
		require.NoError(t, err)
		out := runMatch(t, g, s, 0, One)
		require.Len(t, out, 1, "generated %q for pattern %q should itself match", s, p)
	}
}

func TestTimeoutOnPathologicalBlowup(t *testing.T) {
	g := mustCompile(t, "(a*)(a*)(a*)(a*)(a*)(a*)(a*)(a*)(a*)(a*)b", BuildOptions{})
	_, err := Run(g, NewInput("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), RunOptions{
		Multiple: One,
		Timeout:  time.Microsecond,
	})
	if err != nil {
		var execErr *ExecError
		require.ErrorAs(t, err, &execErr)
		require.Equal(t, ErrTimeout, execErr.Kind)
	}
}
