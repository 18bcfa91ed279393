package aaf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/argstable/aafse/aaf"
)

func buildTriangle(t *testing.T) *aaf.AAF {
	t.Helper()
	b := aaf.NewBuilder()
	idA := b.AddArgument("a")
	idB := b.AddArgument("b")
	idC := b.AddArgument("c")
	b.AddAttack(idA, idB)
	b.AddAttack(idB, idC)
	b.AddAttack(idC, idA)

	return b.Build()
}

func TestAAF_ChildrenParentsConsistency(t *testing.T) {
	a := buildTriangle(t)
	require.Equal(t, 3, a.N())

	for u := 0; u < a.N(); u++ {
		for _, v := range a.Children(u) {
			require.Contains(t, a.Parents(v), u)
		}
	}
}

func TestAAF_InitialAndLoops(t *testing.T) {
	a := buildTriangle(t)
	for i := 0; i < a.N(); i++ {
		require.False(t, a.Initial(i), "triangle has no unattacked argument")
		require.False(t, a.Loop(i))
	}
}

func TestAAF_SelfLoop(t *testing.T) {
	b := aaf.NewBuilder()
	id := b.AddArgument("a")
	b.AddAttack(id, id)
	a := b.Build()

	require.True(t, a.Loop(id))
	require.Contains(t, a.Children(id), id)
	require.Contains(t, a.Parents(id), id)
}

func TestAAF_DuplicateAttacksCollapse(t *testing.T) {
	b := aaf.NewBuilder()
	x := b.AddArgument("x")
	y := b.AddArgument("y")
	b.AddAttack(x, y)
	b.AddAttack(x, y)
	b.AddAttack(x, y)
	a := b.Build()

	require.Len(t, a.Children(x), 1)
	require.Len(t, a.Parents(y), 1)
}

func TestAAF_NameIDRoundtrip(t *testing.T) {
	b := aaf.NewBuilder()
	id := b.AddArgument("alpha")
	a := b.Build()

	require.Equal(t, "alpha", a.Name(id))
	got, ok := a.ID("alpha")
	require.True(t, ok)
	require.Equal(t, id, got)

	_, ok = a.ID("missing")
	require.False(t, ok)
}

func TestAAF_EmptyAAF(t *testing.T) {
	b := aaf.NewBuilder()
	a := b.Build()
	require.Equal(t, 0, a.N())
}
