package tgf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/argstable/aafse/tgf"
)

func TestParse_ThreeCycle(t *testing.T) {
	input := "a\nb\nc\n#\na b\nb c\nc a\n"

	a, err := tgf.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, a.N())

	idA, ok := a.ID("a")
	require.True(t, ok)
	idB, ok := a.ID("b")
	require.True(t, ok)

	require.Equal(t, []int{idB}, a.Children(idA))
}

func TestParse_BlankLinesIgnored(t *testing.T) {
	input := "a\n\nb\n\n#\n\na b\n"

	a, err := tgf.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, a.N())
}

func TestParse_EmptyFrameworkNeedsSentinel(t *testing.T) {
	a, err := tgf.Parse(strings.NewReader("#\n"))
	require.NoError(t, err)
	require.Equal(t, 0, a.N())
}

func TestParse_MissingSentinelIsError(t *testing.T) {
	_, err := tgf.Parse(strings.NewReader("a\nb\n"))
	require.ErrorIs(t, err, tgf.ErrMissingSentinel)
}

func TestParse_UnknownArgumentInAttackIsError(t *testing.T) {
	_, err := tgf.Parse(strings.NewReader("a\n#\na z\n"))
	require.Error(t, err)
}

func TestParse_MalformedAttackLineIsError(t *testing.T) {
	_, err := tgf.Parse(strings.NewReader("a\nb\n#\na\n"))
	require.Error(t, err)
}
