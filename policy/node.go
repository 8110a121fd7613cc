// Package policy implements the k-of-n threshold policy tree: the postfix
// parser, the random-polynomial share distribution used during
// encryption, satisfiability/minimum-leaf-cover analysis used during
// decryption, and the tree's serialization. It generalizes the teacher
// pack's bsw07 policy handling (a C-style postfix stack parser over
// mpz/element_t) to an immutable Go tree of pairing.Zr-typed shares.
package policy

import "github.com/mmsyan/cpabe-core/pairing"

// Node is a policy tree node. A leaf has Children == nil and carries an
// attribute label plus its two ciphertext components; an internal node
// has len(Children) >= 2 and carries only the threshold K.
//
// Nodes are immutable once built by Parse/Encrypt: decryption-time state
// (satisfiability, minimum-leaf cover, matched key index) lives in the
// external State side table in decrypt.go, not on the node itself,
// so the same Ciphertext can be decrypted concurrently by multiple
// callers against different keys.
type Node struct {
	K        int
	Children []*Node

	// Leaf-only fields.
	Attr string
	C    pairing.G1
	CP   pairing.G1
}

// IsLeaf reports whether n is a leaf node.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// leaf constructs a leaf node for attr with threshold 1, per §4.3's "leaves
// carry k = 1".
func leaf(attr string) *Node {
	return &Node{K: 1, Attr: attr}
}
