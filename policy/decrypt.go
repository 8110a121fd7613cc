package policy

import (
	"sort"

	"github.com/mmsyan/cpabe-core/pairing"
	"github.com/mmsyan/cpabe-core/sharing"
)

// nodeState holds the transient, decryption-only fields §3 and §9
// describe as attached to each PolicyNode. Keeping them in an external
// side table keyed by node identity (rather than mutating the Node
// itself) means the same Ciphertext can be decrypted concurrently by
// independent callers.
type nodeState struct {
	satisfiable bool
	minLeaves   int
	satl        []int // 1-based, ascending child indices chosen for recombination
	attrIndex   int   // leaf only: index into the matched PrivateKey.components
}

// State is the per-decryption side table produced by CheckSat and filled
// in by PickMinLeaves.
type State map[*Node]*nodeState

// CheckSat implements §4.6 Step 1. attrs is the ordered list of attribute
// labels held by the decrypting key (PrivateKey.components, in order); a
// leaf is satisfiable iff attrs contains its label, and on the first such
// match its attrIndex is recorded, per the spec's documented
// first-match-wins behavior for keys with duplicate attributes.
func CheckSat(root *Node, attrs []string) State {
	state := make(State)
	checkSat(root, attrs, state)
	return state
}

func checkSat(n *Node, attrs []string, state State) {
	st := &nodeState{}
	state[n] = st

	if n.IsLeaf() {
		for i, a := range attrs {
			if a == n.Attr {
				st.satisfiable = true
				st.attrIndex = i
				return
			}
		}
		return
	}

	satisfiedCount := 0
	for _, child := range n.Children {
		checkSat(child, attrs, state)
		if state[child].satisfiable {
			satisfiedCount++
		}
	}
	st.satisfiable = satisfiedCount >= n.K
}

// Satisfiable reports whether root was marked satisfiable by CheckSat.
func (s State) Satisfiable(root *Node) bool {
	return s[root].satisfiable
}

// PickMinLeaves implements §4.6 Step 2: a post-order pass over satisfiable
// nodes that computes the minimum-leaf-cover witness at every node. Must
// be called after CheckSat and only on a node already known satisfiable.
func PickMinLeaves(n *Node, state State) {
	st := state[n]
	if !st.satisfiable {
		return
	}
	if n.IsLeaf() {
		st.minLeaves = 1
		return
	}

	type candidate struct {
		index     int // 1-based position among n.Children
		minLeaves int
	}
	var candidates []candidate
	for i, child := range n.Children {
		if !state[child].satisfiable {
			continue
		}
		PickMinLeaves(child, state)
		candidates = append(candidates, candidate{index: i + 1, minLeaves: state[child].minLeaves})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].minLeaves < candidates[j].minLeaves
	})

	chosen := candidates[:n.K]
	sum := 0
	satl := make([]int, 0, n.K)
	for _, c := range chosen {
		sum += c.minLeaves
		satl = append(satl, c.index)
	}
	sort.Ints(satl)

	st.minLeaves = sum
	st.satl = satl
}

// KeyMaterial is the subset of a PrivateKey's per-attribute components
// that flattened recombination needs, indexed identically to the attrs
// slice given to CheckSat. Both Dj and D'j live in G2 (mirroring the
// original scheme's symmetric pairing, where G1 and G2 coincide) even
// though the leaf ciphertext components they pair against, c and c',
// live in G1.
type KeyMaterial struct {
	D  []pairing.G2
	DP []pairing.G2
}

// Recombine implements §4.6 Step 3 (dec_flatten): it walks the nodes
// marked satisfiable in state, following each node's satl witness set,
// threading the incoming Lagrange exponent down from the root (called
// with e = pairing.OneZr()), and returns the accumulated
// e(g,g2)^{r*s} product across all visited leaves.
func Recombine(n *Node, state State, e pairing.Zr, key KeyMaterial) (pairing.GT, error) {
	st := state[n]
	if n.IsLeaf() {
		num, err := pairing.Pair(n.C, key.D[st.attrIndex])
		if err != nil {
			return pairing.GT{}, err
		}
		den, err := pairing.Pair(n.CP, key.DP[st.attrIndex])
		if err != nil {
			return pairing.GT{}, err
		}
		return num.Div(den).Exp(e), nil
	}

	r := pairing.OneGT()
	for _, i := range st.satl {
		lambda := sharing.LagrangeCoefficientAtZero(i, st.satl)
		childExp := e.Mul(lambda)
		contribution, err := Recombine(n.Children[i-1], state, childExp, key)
		if err != nil {
			return pairing.GT{}, err
		}
		r = r.Mul(contribution)
	}
	return r, nil
}
