// Package testvec holds policy/attribute fixtures shared across the
// policy and cpabe test suites so spec §8's threshold scenarios and its
// deep-tree policy are defined once instead of re-typed per package.
package testvec

// Scenario bundles a policy string with attribute sets that should and
// should not satisfy it.
type Scenario struct {
	Name      string
	Policy    string
	Satisfy   [][]string
	Unsatisfy [][]string
}

// Scenarios reproduces spec §8's concrete scenarios 1-4 (the threshold
// ones; the ParseError and serialization scenarios live next to the code
// they exercise since they need a *testing.T to assert on).
var Scenarios = []Scenario{
	{
		Name:      "two-of-two",
		Policy:    "A B 2of2",
		Satisfy:   [][]string{{"A", "B"}},
		Unsatisfy: [][]string{{"A"}, {"B"}, {}},
	},
	{
		Name:      "two-of-three",
		Policy:    "A B C 2of3",
		Satisfy:   [][]string{{"A", "C"}, {"A", "B"}, {"B", "C"}},
		Unsatisfy: [][]string{{"B"}, {"A"}, {}},
	},
	{
		Name:      "nested-or-and",
		Policy:    "A B 1of2 C 2of2",
		Satisfy:   [][]string{{"B", "C"}, {"A", "C"}},
		Unsatisfy: [][]string{{"A"}, {"C"}, {"A", "B"}},
	},
	{
		Name:      "single-leaf",
		Policy:    "A",
		Satisfy:   [][]string{{"A"}},
		Unsatisfy: [][]string{{"B"}, {}},
	},
}

// DeepTreePolicy is spec §8 scenario 9: a depth-4, 12-leaf policy used to
// exercise serialization of a non-trivial tree shape.
const DeepTreePolicy = "A1 A2 A3 2of3 " +
	"B1 B2 B3 2of3 " +
	"2of2 " +
	"C1 C2 C3 2of3 " +
	"D1 D2 D3 2of3 " +
	"2of2 " +
	"1of2"

// DeepTreeSatisfyingAttrs is a minimal attribute set that satisfies
// DeepTreePolicy (2-of-3 in the A group and 2-of-3 in the B group, which
// alone satisfies the top-level 1-of-2).
var DeepTreeSatisfyingAttrs = []string{"A1", "A2", "B1", "B2"}
