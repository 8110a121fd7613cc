package pairing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Zr is a scalar element of the pairing's exponent field.
type Zr struct {
	e fr.Element
}

func (Zr) Group() Group { return GroupZr }

// RandomZr draws a uniformly random scalar.
func RandomZr() (Zr, error) {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		return Zr{}, err
	}
	return Zr{e: e}, nil
}

// ZeroZr and OneZr are the additive and multiplicative identities.
func ZeroZr() Zr {
	var e fr.Element
	e.SetZero()
	return Zr{e: e}
}

func OneZr() Zr {
	var e fr.Element
	e.SetOne()
	return Zr{e: e}
}

// SetSiZr sets a scalar from a small signed integer (mirrors the PBC
// element_set_si primitive the original scheme is specified against).
func SetSiZr(v int64) Zr {
	var e fr.Element
	e.SetInt64(v)
	return Zr{e: e}
}

func (z Zr) Add(other Zr) Zr {
	var r fr.Element
	r.Add(&z.e, &other.e)
	return Zr{e: r}
}

func (z Zr) Mul(other Zr) Zr {
	var r fr.Element
	r.Mul(&z.e, &other.e)
	return Zr{e: r}
}

func (z Zr) Neg() Zr {
	var r fr.Element
	r.Neg(&z.e)
	return Zr{e: r}
}

// Inverse returns the multiplicative inverse of z in Zr. z must be non-zero.
func (z Zr) Inverse() Zr {
	var r fr.Element
	r.Inverse(&z.e)
	return Zr{e: r}
}

func (z Zr) Equal(other Zr) bool {
	return z.e.Equal(&other.e)
}

func (z Zr) IsZero() bool {
	return z.e.IsZero()
}

// Bytes returns the canonical big-endian encoding of the scalar.
func (z Zr) Bytes() []byte {
	b := z.e.Bytes()
	return b[:]
}

// ZrFromBytes decodes a scalar from its canonical big-endian encoding.
func ZrFromBytes(b []byte) (Zr, error) {
	var e fr.Element
	if err := e.SetBytesCanonical(b); err != nil {
		return Zr{}, err
	}
	return Zr{e: e}, nil
}
