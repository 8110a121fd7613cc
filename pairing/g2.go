package pairing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// G2 is an element of the second source group.
type G2 struct {
	p bn254.G2Affine
}

func (G2) Group() Group { return GroupG2 }

// RandomG2 draws an independent uniform generator of G2.
func RandomG2() (G2, error) {
	r, err := RandomZr()
	if err != nil {
		return G2{}, err
	}
	var p bn254.G2Affine
	p.ScalarMultiplicationBase(scalarBigInt(r))
	return G2{p: p}, nil
}

func (g G2) Mul(other G2) G2 {
	var r bn254.G2Affine
	r.Add(&g.p, &other.p)
	return G2{p: r}
}

func (g G2) Exp(z Zr) G2 {
	var r bn254.G2Affine
	r.ScalarMultiplication(&g.p, scalarBigInt(z))
	return G2{p: r}
}

func (g G2) Equal(other G2) bool {
	return g.p.Equal(&other.p)
}

func (g G2) Bytes() []byte {
	b := g.p.Bytes()
	return b[:]
}

func G2FromBytes(b []byte) (G2, error) {
	var p bn254.G2Affine
	if _, err := p.SetBytes(b); err != nil {
		return G2{}, err
	}
	return G2{p: p}, nil
}
