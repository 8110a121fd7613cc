package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairBilinearity(t *testing.T) {
	g1, err := RandomG1()
	require.NoError(t, err)
	g2, err := RandomG2()
	require.NoError(t, err)

	a, err := RandomZr()
	require.NoError(t, err)
	b, err := RandomZr()
	require.NoError(t, err)

	left, err := Pair(g1.Exp(a), g2.Exp(b))
	require.NoError(t, err)

	base, err := Pair(g1, g2)
	require.NoError(t, err)
	right := base.Exp(a.Mul(b))

	require.True(t, left.Equal(right))
}

func TestZrRoundTrip(t *testing.T) {
	z, err := RandomZr()
	require.NoError(t, err)

	back, err := ZrFromBytes(z.Bytes())
	require.NoError(t, err)
	require.True(t, z.Equal(back))
}

func TestG1RoundTrip(t *testing.T) {
	g, err := RandomG1()
	require.NoError(t, err)

	back, err := G1FromBytes(g.Bytes())
	require.NoError(t, err)
	require.True(t, g.Equal(back))
}

func TestG2RoundTrip(t *testing.T) {
	g, err := RandomG2()
	require.NoError(t, err)

	back, err := G2FromBytes(g.Bytes())
	require.NoError(t, err)
	require.True(t, g.Equal(back))
}

func TestGTRoundTrip(t *testing.T) {
	g, err := RandomGT()
	require.NoError(t, err)

	back, err := GTFromBytes(g.Bytes())
	require.NoError(t, err)
	require.True(t, g.Equal(back))
}

func TestHashAttributeToG1Deterministic(t *testing.T) {
	g, err := RandomG1()
	require.NoError(t, err)

	a := HashAttributeToG1(g, "role:admin")
	b := HashAttributeToG1(g, "role:admin")
	require.True(t, a.Equal(b))

	c := HashAttributeToG1(g, "role:guest")
	require.False(t, a.Equal(c))
}

func TestHashAttributeToG2Deterministic(t *testing.T) {
	g2, err := RandomG2()
	require.NoError(t, err)

	a := HashAttributeToG2(g2, "role:admin")
	b := HashAttributeToG2(g2, "role:admin")
	require.True(t, a.Equal(b))

	c := HashAttributeToG2(g2, "role:guest")
	require.False(t, a.Equal(c))
}

func TestHashAttributeToG1G2Consistent(t *testing.T) {
	g, err := RandomG1()
	require.NoError(t, err)
	g2, err := RandomG2()
	require.NoError(t, err)

	h1 := HashAttributeToG1(g, "attr")
	h2 := HashAttributeToG2(g2, "attr")

	left, err := Pair(g, h2)
	require.NoError(t, err)
	right, err := Pair(h1, g2)
	require.NoError(t, err)
	require.True(t, left.Equal(right))
}

func TestEqualRejectsCrossGroupComparison(t *testing.T) {
	g1, err := RandomG1()
	require.NoError(t, err)
	g2, err := RandomG2()
	require.NoError(t, err)

	_, err = Equal(g1, g2)
	require.ErrorIs(t, err, ErrPairingMismatch)

	g1b, err := RandomG1()
	require.NoError(t, err)
	eq, err := Equal(g1, g1b)
	require.NoError(t, err)
	require.False(t, eq)

	eq, err = Equal(g1, g1)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestElementGroupTags(t *testing.T) {
	g1, err := RandomG1()
	require.NoError(t, err)
	g2, err := RandomG2()
	require.NoError(t, err)
	gt, err := RandomGT()
	require.NoError(t, err)
	zr, err := RandomZr()
	require.NoError(t, err)

	elems := []Element{g1, g2, gt, zr}
	wantGroups := []Group{GroupG1, GroupG2, GroupGT, GroupZr}
	for i, e := range elems {
		require.Equal(t, wantGroups[i], e.Group())
	}
}
