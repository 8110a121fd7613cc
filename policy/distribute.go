package policy

import (
	"github.com/mmsyan/cpabe-core/pairing"
	"github.com/mmsyan/cpabe-core/sharing"
)

// Distribute walks tree (produced by Parse) and returns a structurally
// identical tree decorated with leaf ciphertext components, per §4.5 step
// 5. tree itself is left untouched; the returned tree is new.
//
// At each node a random polynomial of degree K-1 is drawn with constant
// term equal to share, and each child i (1-based) is recursed into with
// share q(i). Leaves receive c = g^v, c' = H(attr)^v for their share v.
func Distribute(tree *Node, share pairing.Zr, g pairing.G1) (*Node, error) {
	if tree.IsLeaf() {
		h := pairing.HashAttributeToG1(g, tree.Attr)
		return &Node{
			K:    1,
			Attr: tree.Attr,
			C:    g.Exp(share),
			CP:   h.Exp(share),
		}, nil
	}

	coeffs, err := sharing.RandomPolynomial(tree.K-1, share)
	if err != nil {
		return nil, err
	}

	children := make([]*Node, len(tree.Children))
	for i, child := range tree.Children {
		childShare := sharing.EvalAt(coeffs, i+1)
		distributed, err := Distribute(child, childShare, g)
		if err != nil {
			return nil, err
		}
		children[i] = distributed
	}
	return &Node{K: tree.K, Children: children}, nil
}
