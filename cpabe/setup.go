package cpabe

import (
	"github.com/mmsyan/cpabe-core/cpabeerr"
	"github.com/mmsyan/cpabe-core/pairing"
)

// Setup draws the scheme's master secret (alpha, beta) and generators
// (g in G1, g2 in G2), then derives the public parameters h = g^beta and
// egg_alpha = e(g, g2)^alpha per §4.2.
func Setup() (PublicParams, MasterSecret, error) {
	alpha, err := pairing.RandomZr()
	if err != nil {
		return PublicParams{}, MasterSecret{}, cpabeerr.NewCryptoError("Setup", err)
	}
	beta, err := pairing.RandomZr()
	if err != nil {
		return PublicParams{}, MasterSecret{}, cpabeerr.NewCryptoError("Setup", err)
	}
	g, err := pairing.RandomG1()
	if err != nil {
		return PublicParams{}, MasterSecret{}, cpabeerr.NewCryptoError("Setup", err)
	}
	g2, err := pairing.RandomG2()
	if err != nil {
		return PublicParams{}, MasterSecret{}, cpabeerr.NewCryptoError("Setup", err)
	}

	h := g.Exp(beta)
	gAlpha := g2.Exp(alpha)
	eggAlpha, err := pairing.Pair(g, gAlpha)
	if err != nil {
		return PublicParams{}, MasterSecret{}, cpabeerr.NewCryptoError("Setup", err)
	}

	pub := PublicParams{
		PairingDesc: pairing.TypeAParams,
		G:           g,
		H:           h,
		G2:          g2,
		EggAlpha:    eggAlpha,
	}
	msk := MasterSecret{Beta: beta, GAlpha: gAlpha}
	return pub, msk, nil
}
