package uniset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsSingleAndRange(t *testing.T) {
	require.True(t, Contains(Single('a'), 'a'))
	require.False(t, Contains(Single('a'), 'b'))

	r := FromRange('a', 'z')
	require.True(t, Contains(r, 'm'))
	require.False(t, Contains(r, 'A'))
}

func TestUnionAbsorbsFullAssigned(t *testing.T) {
	u := Union(All(), Single('x'))
	require.Equal(t, FullAssigned, u.Tag())
	require.True(t, Contains(u, 0))
}

func TestComplementFillsGaps(t *testing.T) {
	u := FromRange('b', 'y')
	c := Complement(u)
	require.True(t, Contains(c, 'a'))
	require.True(t, Contains(c, 'z'))
	require.False(t, Contains(c, 'm'))
}

func TestComplementOfAllIsNone(t *testing.T) {
	c := Complement(All())
	require.Equal(t, 0, c.Size())
}

func TestComplementOfNoneIsAll(t *testing.T) {
	c := Complement(None())
	require.Equal(t, FullAssigned, c.Tag())
}

func TestPickStaysWithinSet(t *testing.T) {
	u := FromRange('a', 'e')
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		c := Pick(rng, u)
		require.True(t, Contains(u, c))
	}
}

func TestPickNegOfFullAssignedHasNoCharacter(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, ok := PickNeg(rng, All())
	require.False(t, ok)
}

func TestPickNegAvoidsSet(t *testing.T) {
	u := Complement(Single('a'))
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		c, ok := PickNeg(rng, u)
		require.True(t, ok)
		require.False(t, Contains(u, c))
	}
}

func TestFromPropertyKnownCategory(t *testing.T) {
	s, ok := FromProperty("Lu")
	require.True(t, ok)
	require.True(t, Contains(s, 'A'))
	require.False(t, Contains(s, 'a'))
}

func TestFromPropertyUnknownName(t *testing.T) {
	_, ok := FromProperty("NotACategory")
	require.False(t, ok)
}
