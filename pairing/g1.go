package pairing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// G1 is an element of the first source group.
type G1 struct {
	p bn254.G1Affine
}

func (G1) Group() Group { return GroupG1 }

// RandomG1 draws an independent uniform generator of G1 by scaling the
// curve's base point with a fresh random scalar.
func RandomG1() (G1, error) {
	r, err := RandomZr()
	if err != nil {
		return G1{}, err
	}
	var p bn254.G1Affine
	p.ScalarMultiplicationBase(scalarBigInt(r))
	return G1{p: p}, nil
}

// Mul is the group operation (written multiplicatively per the scheme's
// notation; it is point addition on the underlying curve).
func (g G1) Mul(other G1) G1 {
	var r bn254.G1Affine
	r.Add(&g.p, &other.p)
	return G1{p: r}
}

// Exp raises g to the given scalar.
func (g G1) Exp(z Zr) G1 {
	var r bn254.G1Affine
	r.ScalarMultiplication(&g.p, scalarBigInt(z))
	return G1{p: r}
}

func (g G1) Equal(other G1) bool {
	return g.p.Equal(&other.p)
}

// Bytes returns the pairing library's canonical (compressed) encoding.
func (g G1) Bytes() []byte {
	b := g.p.Bytes()
	return b[:]
}

// G1FromBytes decodes a G1 element from its canonical encoding, verifying
// curve and subgroup membership.
func G1FromBytes(b []byte) (G1, error) {
	var p bn254.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return G1{}, err
	}
	return G1{p: p}, nil
}
