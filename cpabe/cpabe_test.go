package cpabe

import (
	"testing"

	"github.com/mmsyan/cpabe-core/cpabeerr"
	"github.com/mmsyan/cpabe-core/internal/testvec"
	"github.com/mmsyan/cpabe-core/policy"
	"github.com/stretchr/testify/require"
)

func TestScenarioTable(t *testing.T) {
	pub, msk := setupTest(t)
	for _, sc := range testvec.Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			cph, m, err := Encrypt(pub, sc.Policy)
			require.NoError(t, err)

			for _, attrs := range sc.Satisfy {
				prv, err := KeyGen(pub, msk, attrs)
				require.NoError(t, err)
				got, err := Decrypt(pub, prv, cph)
				require.NoError(t, err)
				require.True(t, m.Equal(got))
			}
			for _, attrs := range sc.Unsatisfy {
				prv, err := KeyGen(pub, msk, attrs)
				require.NoError(t, err)
				_, err = Decrypt(pub, prv, cph)
				require.ErrorIs(t, err, cpabeerr.ErrPolicyNotSatisfied)
			}
		})
	}
}

func setupTest(t *testing.T) (PublicParams, MasterSecret) {
	t.Helper()
	pub, msk, err := Setup()
	require.NoError(t, err)
	return pub, msk
}

func TestScenario1TwoOfTwo(t *testing.T) {
	pub, msk := setupTest(t)
	cph, m, err := Encrypt(pub, "A B 2of2")
	require.NoError(t, err)

	prv, err := KeyGen(pub, msk, []string{"A", "B"})
	require.NoError(t, err)
	got, err := Decrypt(pub, prv, cph)
	require.NoError(t, err)
	require.True(t, m.Equal(got))

	prvShort, err := KeyGen(pub, msk, []string{"A"})
	require.NoError(t, err)
	_, err = Decrypt(pub, prvShort, cph)
	require.ErrorIs(t, err, cpabeerr.ErrPolicyNotSatisfied)
}

func TestScenario2TwoOfThree(t *testing.T) {
	pub, msk := setupTest(t)
	cph, m, err := Encrypt(pub, "A B C 2of3")
	require.NoError(t, err)

	prv, err := KeyGen(pub, msk, []string{"A", "C"})
	require.NoError(t, err)
	got, err := Decrypt(pub, prv, cph)
	require.NoError(t, err)
	require.True(t, m.Equal(got))

	prvFail, err := KeyGen(pub, msk, []string{"B"})
	require.NoError(t, err)
	_, err = Decrypt(pub, prvFail, cph)
	require.ErrorIs(t, err, cpabeerr.ErrPolicyNotSatisfied)
}

func TestScenario3Nested(t *testing.T) {
	pub, msk := setupTest(t)
	cph, m, err := Encrypt(pub, "A B 1of2 C 2of2")
	require.NoError(t, err)

	prvOK, err := KeyGen(pub, msk, []string{"B", "C"})
	require.NoError(t, err)
	got, err := Decrypt(pub, prvOK, cph)
	require.NoError(t, err)
	require.True(t, m.Equal(got))

	for _, attrs := range [][]string{{"A"}, {"C"}} {
		prv, err := KeyGen(pub, msk, attrs)
		require.NoError(t, err)
		_, err = Decrypt(pub, prv, cph)
		require.ErrorIs(t, err, cpabeerr.ErrPolicyNotSatisfied)
	}
}

func TestScenario4SingleLeaf(t *testing.T) {
	pub, msk := setupTest(t)
	cph, m, err := Encrypt(pub, "A")
	require.NoError(t, err)

	prvOK, err := KeyGen(pub, msk, []string{"A"})
	require.NoError(t, err)
	got, err := Decrypt(pub, prvOK, cph)
	require.NoError(t, err)
	require.True(t, m.Equal(got))

	prvFail, err := KeyGen(pub, msk, []string{"B"})
	require.NoError(t, err)
	_, err = Decrypt(pub, prvFail, cph)
	require.ErrorIs(t, err, cpabeerr.ErrPolicyNotSatisfied)
}

func TestParseErrorsSurfaceFromEncrypt(t *testing.T) {
	pub, _ := setupTest(t)

	cases := []struct {
		policy string
		kind   policy.ParseErrorKind
	}{
		{"A 0of1", policy.TriviallySatisfied},
		{"A B 3of2", policy.Unsatisfiable},
		{"A 1of1", policy.IdentityOperator},
		{"", policy.EmptyPolicy},
	}
	for _, c := range cases {
		_, _, err := Encrypt(pub, c.policy)
		var perr *policy.ParseError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, c.kind, perr.Kind)
		require.ErrorIs(t, cpabeerr.LastError(), err)
	}
}

func TestKeyGenRejectsInvalidAttribute(t *testing.T) {
	pub, msk := setupTest(t)
	_, err := KeyGen(pub, msk, []string{"bad attr"})
	require.ErrorIs(t, err, cpabeerr.ErrInvalidAttribute)

	_, err = KeyGen(pub, msk, []string{"bad\x00attr"})
	require.ErrorIs(t, err, cpabeerr.ErrInvalidAttribute)
}

func TestDeepTreeSerializationRoundTrip(t *testing.T) {
	pub, msk := setupTest(t)

	cph, m, err := Encrypt(pub, testvec.DeepTreePolicy)
	require.NoError(t, err)

	wire, err := SerializeCiphertext(cph)
	require.NoError(t, err)
	back, err := DeserializeCiphertext(wire)
	require.NoError(t, err)

	prv, err := KeyGen(pub, msk, testvec.DeepTreeSatisfyingAttrs)
	require.NoError(t, err)
	got, err := Decrypt(pub, prv, back)
	require.NoError(t, err)
	require.True(t, m.Equal(got))
}

func TestPublicParamsRoundTrip(t *testing.T) {
	pub, _ := setupTest(t)
	wire := SerializePublicParams(pub)
	back, err := DeserializePublicParams(wire)
	require.NoError(t, err)

	require.Equal(t, pub.PairingDesc, back.PairingDesc)
	require.True(t, pub.G.Equal(back.G))
	require.True(t, pub.H.Equal(back.H))
	require.True(t, pub.G2.Equal(back.G2))
	require.True(t, pub.EggAlpha.Equal(back.EggAlpha))
}

func TestMasterSecretRoundTrip(t *testing.T) {
	_, msk := setupTest(t)
	wire := SerializeMasterSecret(msk)
	back, err := DeserializeMasterSecret(wire)
	require.NoError(t, err)

	require.True(t, msk.Beta.Equal(back.Beta))
	require.True(t, msk.GAlpha.Equal(back.GAlpha))
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	pub, msk := setupTest(t)
	prv, err := KeyGen(pub, msk, []string{"A", "B", "C"})
	require.NoError(t, err)

	wire := SerializePrivateKey(prv)
	back, err := DeserializePrivateKey(wire)
	require.NoError(t, err)

	require.True(t, prv.D.Equal(back.D))
	require.Len(t, back.Components, len(prv.Components))
	for i, c := range prv.Components {
		require.Equal(t, c.Attr, back.Components[i].Attr)
		require.True(t, c.Dj.Equal(back.Components[i].Dj))
		require.True(t, c.DjP.Equal(back.Components[i].DjP))
	}
}

func TestCollusionResistance(t *testing.T) {
	pub, msk := setupTest(t)
	cph, m, err := Encrypt(pub, "A B 2of2")
	require.NoError(t, err)

	prvA, err := KeyGen(pub, msk, []string{"A"})
	require.NoError(t, err)
	prvB, err := KeyGen(pub, msk, []string{"B"})
	require.NoError(t, err)

	_, err = Decrypt(pub, prvA, cph)
	require.ErrorIs(t, err, cpabeerr.ErrPolicyNotSatisfied)
	_, err = Decrypt(pub, prvB, cph)
	require.ErrorIs(t, err, cpabeerr.ErrPolicyNotSatisfied)

	spliced := PrivateKey{
		D: prvA.D,
		Components: []PrivateKeyComponent{
			prvA.Components[0],
			prvB.Components[0],
		},
	}
	got, err := Decrypt(pub, spliced, cph)
	require.NoError(t, err) // satisfies the policy structurally...
	require.False(t, m.Equal(got)) // ...but the blinding r's don't cancel
}
