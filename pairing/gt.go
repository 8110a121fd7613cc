package pairing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// GT is an element of the target group.
type GT struct {
	p bn254.GT
}

func (GT) Group() Group { return GroupGT }

// RandomGT draws a uniformly random element of GT, used by Encrypt as the
// session blinding element m.
func RandomGT() (GT, error) {
	var p bn254.GT
	if _, err := p.SetRandom(); err != nil {
		return GT{}, err
	}
	return GT{p: p}, nil
}

// OneGT returns the multiplicative identity of GT, the accumulator's
// starting value during flattened decryption recombination.
func OneGT() GT {
	var p bn254.GT
	p.SetOne()
	return GT{p: p}
}

func (g GT) Mul(other GT) GT {
	var r bn254.GT
	r.Mul(&g.p, &other.p)
	return GT{p: r}
}

// Div returns g * other^-1.
func (g GT) Div(other GT) GT {
	var r bn254.GT
	r.Div(&g.p, &other.p)
	return GT{p: r}
}

func (g GT) Exp(z Zr) GT {
	var r bn254.GT
	r.Exp(g.p, scalarBigInt(z))
	return GT{p: r}
}

func (g GT) Equal(other GT) bool {
	return g.p.Equal(&other.p)
}

func (g GT) Bytes() []byte {
	b := g.p.Bytes()
	return b[:]
}

func GTFromBytes(b []byte) (GT, error) {
	var p bn254.GT
	if err := p.SetBytes(b); err != nil {
		return GT{}, err
	}
	return GT{p: p}, nil
}
