package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateEmitsOneVarPerPattern(t *testing.T) {
	src, err := Generate("generated", []Pattern{
		{VarName: "Digits", Regex: `\d+`},
		{VarName: "Word", Regex: `\w+`, Dotall: true},
	})
	require.NoError(t, err)
	require.Contains(t, src, "package generated")
	require.Contains(t, src, "Digits")
	require.Contains(t, src, "Word")
	require.Contains(t, src, "MustCompile")
	require.True(t, strings.Count(src, "tnfa.MustCompile") == 2)
}

func TestGenerateRejectsEmptyInput(t *testing.T) {
	_, err := Generate("generated", nil)
	require.Error(t, err)
}
