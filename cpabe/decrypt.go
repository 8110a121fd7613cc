package cpabe

import (
	"github.com/mmsyan/cpabe-core/cpabeerr"
	"github.com/mmsyan/cpabe-core/pairing"
	"github.com/mmsyan/cpabe-core/policy"
)

// Decrypt recovers the session element m from cph using prv, per §4.6.
// If prv's attributes do not satisfy cph's policy, it returns
// cpabeerr.ErrPolicyNotSatisfied and a zero m, leaving cph untouched
// (policy.State is an external side table, never written onto cph.Root).
func Decrypt(pub PublicParams, prv PrivateKey, cph Ciphertext) (pairing.GT, error) {
	attrs := make([]string, len(prv.Components))
	material := policy.KeyMaterial{
		D:  make([]pairing.G2, len(prv.Components)),
		DP: make([]pairing.G2, len(prv.Components)),
	}
	for i, comp := range prv.Components {
		attrs[i] = comp.Attr
		material.D[i] = comp.Dj
		material.DP[i] = comp.DjP
	}

	state := policy.CheckSat(cph.Root, attrs)
	if !state.Satisfiable(cph.Root) {
		cpabeerr.SetLast(cpabeerr.ErrPolicyNotSatisfied)
		return pairing.GT{}, cpabeerr.ErrPolicyNotSatisfied
	}

	policy.PickMinLeaves(cph.Root, state)
	r, err := policy.Recombine(cph.Root, state, pairing.OneZr(), material)
	if err != nil {
		return pairing.GT{}, cpabeerr.NewCryptoError("Decrypt", err)
	}

	eCD, err := pairing.Pair(cph.C, prv.D)
	if err != nil {
		return pairing.GT{}, cpabeerr.NewCryptoError("Decrypt", err)
	}

	// m = CTilde * r / e(C, D)
	m := cph.CTilde.Mul(r).Div(eCD)
	return m, nil
}
