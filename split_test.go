package tnfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicSplit(t *testing.T) {
	re := MustCompile("a(.)c(.)e", DefaultOptions())
	vals, err := re.Split("123abcde456aBCDe789", -1)
	require.NoError(t, err)
	require.Equal(t, []string{"123", "b", "d", "456aBCDe789"}, vals)
}

func TestSplit_LimitCountRemainder(t *testing.T) {
	re := MustCompile("-", DefaultOptions())
	vals, err := re.Split("a-b-c-d", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c-d"}, vals)
}

func TestSplit_Unlimited(t *testing.T) {
	re := MustCompile("-", DefaultOptions())
	vals, err := re.Split("a-b-c-d", -1)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d"}, vals)
}

func TestSplit_LimitCount1(t *testing.T) {
	re := MustCompile("a(.)c(.)e", DefaultOptions())
	vals, err := re.Split("123abcde456", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"123abcde456"}, vals)
}

func TestSplit_LimitCount0(t *testing.T) {
	re := MustCompile("a(.)c(.)e", DefaultOptions())
	vals, err := re.Split("123abcde456", 0)
	require.NoError(t, err)
	require.Nil(t, vals)
}

func TestSplit_NoMatch(t *testing.T) {
	re := MustCompile("xyz", DefaultOptions())
	vals, err := re.Split("123abcde456", -1)
	require.NoError(t, err)
	require.Equal(t, []string{"123abcde456"}, vals)
}

func TestSplit_OverlappingHitsDoNotPanic(t *testing.T) {
	// "ana" against "banana" yields overlapping hits at Pos 1 and
	// Pos 3 under multiple=all; the second hit starts before the
	// first hit's end and must be skipped rather than sliced.
	re := MustCompile("ana", DefaultOptions())
	vals, err := re.Split("banana", -1)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "na"}, vals)
}
