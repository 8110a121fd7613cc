package cpabe

import (
	"github.com/mmsyan/cpabe-core/cpabeerr"
	"github.com/mmsyan/cpabe-core/pairing"
	"github.com/mmsyan/cpabe-core/policy"
)

// Encrypt parses policyStr and, on success, draws a random session
// element m and embeds it behind the policy per §4.5, returning the
// Ciphertext and m. A malformed policyStr surfaces the parser's
// *policy.ParseError unchanged (also recorded via cpabeerr.SetLast for
// last_error-style callers) and no ciphertext.
func Encrypt(pub PublicParams, policyStr string) (Ciphertext, pairing.GT, error) {
	tree, err := policy.Parse(policyStr)
	if err != nil {
		cpabeerr.SetLast(err)
		return Ciphertext{}, pairing.GT{}, err
	}

	m, err := pairing.RandomGT()
	if err != nil {
		return Ciphertext{}, pairing.GT{}, cpabeerr.NewCryptoError("Encrypt", err)
	}
	s, err := pairing.RandomZr()
	if err != nil {
		return Ciphertext{}, pairing.GT{}, cpabeerr.NewCryptoError("Encrypt", err)
	}

	cTilde := pub.EggAlpha.Exp(s).Mul(m)
	c := pub.H.Exp(s)

	root, err := policy.Distribute(tree, s, pub.G)
	if err != nil {
		return Ciphertext{}, pairing.GT{}, cpabeerr.NewCryptoError("Encrypt", err)
	}

	return Ciphertext{CTilde: cTilde, C: c, Root: root}, m, nil
}
