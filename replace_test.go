package tnfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplace_Basic(t *testing.T) {
	re := MustCompile("test", DefaultOptions())
	str, err := re.Replace("this is a test", "unit", -1)
	require.NoError(t, err)
	require.Equal(t, "this is a unit", str)
}

func TestReplace_LimitCount(t *testing.T) {
	re := MustCompile("a", DefaultOptions())
	str, err := re.Replace("aaaaa", "b", 2)
	require.NoError(t, err)
	require.Equal(t, "bbaaa", str)
}

func TestReplace_NoMatch(t *testing.T) {
	re := MustCompile("z", DefaultOptions())
	str, err := re.Replace("this is a test", "unit", -1)
	require.NoError(t, err)
	require.Equal(t, "this is a test", str)
}

func TestReplace_ZeroCountNoOp(t *testing.T) {
	re := MustCompile("a", DefaultOptions())
	str, err := re.Replace("aaaaa", "b", 0)
	require.NoError(t, err)
	require.Equal(t, "aaaaa", str)
}

func TestReplace_OverlappingHitsDoNotPanic(t *testing.T) {
	// "ana" against "banana" yields overlapping hits at Pos 1 and
	// Pos 3 under multiple=all; the second hit starts before the
	// first hit's end and must be skipped rather than sliced.
	re := MustCompile("ana", DefaultOptions())
	str, err := re.Replace("banana", "X", -1)
	require.NoError(t, err)
	require.Equal(t, "bXna", str)
}
