// Package cpabe implements the Bethencourt-Sahai-Waters ciphertext-policy
// attribute-based encryption scheme: system setup, private-key issuance,
// policy-based encryption of a GT session element, and
// satisfiability-driven decryption, together with the deterministic
// serialization of every persistent artifact. It is grounded on the
// teacher pack's cpabe/bsw07 package, generalized from that package's
// direct bn254 calls to the pairing/policy/sharing packages this module
// builds underneath it.
package cpabe

import (
	"github.com/mmsyan/cpabe-core/pairing"
	"github.com/mmsyan/cpabe-core/policy"
)

// PublicParams is the scheme's public key. It carries the pairing
// descriptor string (PairingDesc) alongside its group elements, and a
// holder of only PublicParams can encrypt.
type PublicParams struct {
	PairingDesc string
	G           pairing.G1
	H           pairing.G1
	G2          pairing.G2
	EggAlpha    pairing.GT
}

// MasterSecret lets its holder mint arbitrary private keys. It is never
// serialized alongside PublicParams.
type MasterSecret struct {
	Beta   pairing.Zr
	GAlpha pairing.G2
}

// PrivateKeyComponent binds one attribute to its two key shares.
type PrivateKeyComponent struct {
	Attr string
	Dj   pairing.G2
	DjP  pairing.G2
}

// PrivateKey is issued by KeyGen for a fixed attribute set; attempting to
// decrypt a Ciphertext whose policy those attributes don't satisfy fails
// with cpabeerr.ErrPolicyNotSatisfied.
type PrivateKey struct {
	D          pairing.G2
	Components []PrivateKeyComponent
}

// Ciphertext is the output of Encrypt: a blinded GT header plus the
// policy tree decorated with per-leaf ciphertext components.
type Ciphertext struct {
	CTilde pairing.GT
	C      pairing.G1
	Root   *policy.Node
}
