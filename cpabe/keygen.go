package cpabe

import (
	"github.com/mmsyan/cpabe-core/cpabeerr"
	"github.com/mmsyan/cpabe-core/pairing"
)

// validAttrByte reports whether b is allowed in an attribute label:
// printable ASCII excluding whitespace and NUL, per §6.
func validAttrByte(b byte) bool {
	return b > 0x20 && b < 0x7f
}

func validateAttr(attr string) error {
	if len(attr) == 0 {
		return cpabeerr.ErrInvalidAttribute
	}
	for i := 0; i < len(attr); i++ {
		if !validAttrByte(attr[i]) {
			return cpabeerr.ErrInvalidAttribute
		}
	}
	return nil
}

// KeyGen issues a PrivateKey for attrs under msk, per §4.4. Duplicates in
// attrs are permitted but meaningless; §9's documented open question
// (CheckSat matches the first occurrence) governs matching behavior, not
// issuance, so KeyGen does not deduplicate.
//
// Dj's attribute hash and D'j both live in G2 rather than the spec's
// literal g^{rj}: see DESIGN.md's note on the asymmetric-pairing
// substitution, grounded on the teacher's own bsw07 adaptation.
func KeyGen(pub PublicParams, msk MasterSecret, attrs []string) (PrivateKey, error) {
	for _, a := range attrs {
		if err := validateAttr(a); err != nil {
			return PrivateKey{}, err
		}
	}

	r, err := pairing.RandomZr()
	if err != nil {
		return PrivateKey{}, cpabeerr.NewCryptoError("KeyGen", err)
	}

	betaInv := msk.Beta.Inverse()
	d := msk.GAlpha.Mul(pub.G2.Exp(r)).Exp(betaInv)

	components := make([]PrivateKeyComponent, len(attrs))
	g2ExpR := pub.G2.Exp(r)
	for i, a := range attrs {
		rj, err := pairing.RandomZr()
		if err != nil {
			return PrivateKey{}, cpabeerr.NewCryptoError("KeyGen", err)
		}
		hj := pairing.HashAttributeToG2(pub.G2, a)
		components[i] = PrivateKeyComponent{
			Attr: a,
			Dj:   g2ExpR.Mul(hj.Exp(rj)),
			DjP:  pub.G2.Exp(rj),
		}
	}

	return PrivateKey{D: d, Components: components}, nil
}
