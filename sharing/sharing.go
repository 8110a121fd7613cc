// Package sharing implements the random-polynomial secret sharing and
// Lagrange recombination the policy tree's share distribution and
// decryption recombination are built on. It generalizes the teacher pack's
// utils.GenerateRandomPolynomial / utils.ComputePolynomialValue /
// utils.ComputeLagrangeBasis from *big.Int over an explicit modulus to the
// pairing package's own Zr scalar type.
package sharing

import "github.com/mmsyan/cpabe-core/pairing"

// RandomPolynomial returns the coefficients, low degree to high, of a
// polynomial of degree deg whose constant term is fixed to constant and
// whose remaining deg coefficients are independent uniform scalars.
func RandomPolynomial(deg int, constant pairing.Zr) ([]pairing.Zr, error) {
	coeffs := make([]pairing.Zr, deg+1)
	coeffs[0] = constant
	for i := 1; i <= deg; i++ {
		c, err := pairing.RandomZr()
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return coeffs, nil
}

// Eval evaluates a polynomial (low-to-high coefficients) at x by summing
// each coefficient times a running power of x.
func Eval(coeffs []pairing.Zr, x pairing.Zr) pairing.Zr {
	result := pairing.ZeroZr()
	t := pairing.OneZr()
	for _, c := range coeffs {
		result = result.Add(c.Mul(t))
		t = t.Mul(x)
	}
	return result
}

// EvalAt is a convenience wrapper for evaluating at a small 1-based child
// position, as used when distributing a node's share to its children.
func EvalAt(coeffs []pairing.Zr, x int) pairing.Zr {
	return Eval(coeffs, pairing.SetSiZr(int64(x)))
}

// LagrangeCoefficientAtZero computes Lambda_i(0) for the interpolating
// polynomial through the points in s (1-based indices), i.e.
//
//	Lambda_i(0) = product over j in s, j != i of (-j) / (i - j)
//
// s must contain i.
func LagrangeCoefficientAtZero(i int, s []int) pairing.Zr {
	result := pairing.OneZr()
	for _, j := range s {
		if j == i {
			continue
		}
		numerator := pairing.SetSiZr(int64(-j))
		denominator := pairing.SetSiZr(int64(i - j))
		result = result.Mul(numerator.Mul(denominator.Inverse()))
	}
	return result
}
