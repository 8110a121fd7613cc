// Package pairing wraps the bilinear-pairing arithmetic the CP-ABE core is
// built on: opaque elements of G1, G2, GT and the scalar field Zr, plus the
// bilinear map e: G1 x G2 -> GT.
//
// The scheme this module implements (Bethencourt-Sahai-Waters) was
// originally built against a symmetric (Type-A) pairing from the PBC
// library, and its public parameters carry that pairing's parameter string
// verbatim for wire compatibility (see TypeAParams below). No Go pairing
// library in the ecosystem binds PBC's Type-A curve, so the actual group
// arithmetic here runs on gnark-crypto's BN254 (an asymmetric, Type-3,
// pairing) instead. TypeAParams is still carried on PublicParams so
// serialized artifacts remain byte-identical to the original in that one
// field; callers should not infer the underlying curve from its contents.
package pairing

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// TypeAParams is the Type-A pairing parameter string from the original
// BSW reference implementation (libbswabe), carried byte-identical inside
// every PublicParams for cross-implementation wire compatibility.
const TypeAParams = "type a\n" +
	"q 8780710799663312522437781984754049815806883199414208211028653399266475630880222957078625179422662221423155858769582317459277713367317481324925129998224791\n" +
	"h 12016012264891146079388821366740534204802954401251311822919615131047207289359704531102844802183906537786776\n" +
	"r 730750818665451621361119245571504901405976559617\n" +
	"exp2 159\n" +
	"exp1 107\n" +
	"sign1 1\n" +
	"sign0 1\n"

// Group tags an Element with the algebraic group it belongs to.
type Group int

const (
	GroupG1 Group = iota
	GroupG2
	GroupGT
	GroupZr
)

func (g Group) String() string {
	switch g {
	case GroupG1:
		return "G1"
	case GroupG2:
		return "G2"
	case GroupGT:
		return "GT"
	case GroupZr:
		return "Zr"
	default:
		return "unknown"
	}
}

// ErrPairingMismatch is returned whenever an operation is asked to combine
// elements from incompatible groups.
var ErrPairingMismatch = errors.New("pairing: element group mismatch")

// Element is implemented by G1, G2, GT and Zr so generic code (codec,
// cross-checks) can inspect an element's group without knowing its
// concrete type.
type Element interface {
	Group() Group
	Bytes() []byte
}

// Equal compares two elements generically, failing with ErrPairingMismatch
// if they don't belong to the same group rather than silently comparing
// unrelated byte encodings, per §4.1 ("operations across incompatible
// groups fail with PairingMismatch"). The concrete G1/G2/GT/Zr types each
// have their own typed Equal method for the common same-type case; this
// one is for code (deserializers, test helpers) that only holds Element
// handles.
func Equal(a, b Element) (bool, error) {
	if a.Group() != b.Group() {
		return false, ErrPairingMismatch
	}
	return bytes.Equal(a.Bytes(), b.Bytes()), nil
}

// HashAttributeToScalar implements the scheme's H: {0,1}* -> Zr step: the
// attribute label is reduced through SHA-1, and the 20-byte digest is
// read as a scalar. The spec specifies H as a direct hash into G1 (valid
// under the original symmetric pairing, where G1 and G2 coincide so a
// single hash-to-group map serves both the ciphertext leaf and the key
// component it pairs against). Under the asymmetric BN254 substitution
// documented on this package, a single curve-point hash can't serve both
// sides of the pairing: e(g, H2(attr)) and e(H1(attr), g2) would not
// agree unless H1 and H2 are the same generator raised to the same
// exponent. HashAttributeToG1/HashAttributeToG2 below realize exactly
// that: both derive from this one SHA-1-based scalar.
func HashAttributeToScalar(attr string) Zr {
	digest := sha1.Sum([]byte(attr))
	var e fr.Element
	e.SetBytes(digest[:])
	return Zr{e: e}
}

// HashAttributeToG1 returns g^H(attr), used for a ciphertext leaf's c'
// component.
func HashAttributeToG1(g G1, attr string) G1 {
	return g.Exp(HashAttributeToScalar(attr))
}

// HashAttributeToG2 returns g2^H(attr), used for a private key's
// per-attribute Dj component.
func HashAttributeToG2(g2 G2, attr string) G2 {
	return g2.Exp(HashAttributeToScalar(attr))
}

// Pair evaluates the bilinear map e: G1 x G2 -> GT.
func Pair(a G1, b G2) (GT, error) {
	res, err := bn254.Pair([]bn254.G1Affine{a.p}, []bn254.G2Affine{b.p})
	if err != nil {
		return GT{}, err
	}
	return GT{p: res}, nil
}

func scalarBigInt(z Zr) *big.Int {
	return z.e.BigInt(new(big.Int))
}
