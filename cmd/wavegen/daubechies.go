// Copyright 2025 go-wavecodec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"gonum.org/v1/gonum/mat"
)

const (
	// precision is the mantissa size, in bits, of the root polishing
	// arithmetic.
	precision = 256

	maxNewtonSteps = 200

	// maxSupportedOrder is the highest N for which 256 bits leave enough
	// headroom for the polynomial expansion.
	maxSupportedOrder = 30
)

// lowPass returns the 2n taps of the dbN decomposition low-pass filter.
//
// The squared magnitude response of dbN is cos²(ω/2)^N · P(sin²(ω/2)) with
// P(y) = Σ_{k<N} C(N-1+k, k) y^k. Every root y of P maps to a reciprocal
// pair of zeros z and 1/z of the filter. Keeping the zero inside the unit
// circle, together with N zeros at z = -1, gives the minimum phase filter.
func lowPass(n int) ([]float64, error) {
	if n < 1 || n > maxSupportedOrder {
		return nil, fmt.Errorf("order %d out of range [1, %d]", n, maxSupportedOrder)
	}
	if n == 1 {
		h := math.Sqrt2 / 2
		return []float64{h, h}, nil
	}

	p := daubechiesPolynomial(n)
	guesses, err := eigenRoots(p)
	if err != nil {
		return nil, err
	}

	roots := make([]bigComplex, len(guesses))
	for i, g := range guesses {
		roots[i] = polish(p, complexOf(real(g), imag(g)))
	}
	if err := checkDistinct(roots); err != nil {
		return nil, err
	}

	one := complexOf(1, 0)
	q := []bigComplex{one}
	for _, y := range roots {
		c := one.sub(y.scale(2))
		part := y.mul(y.sub(one)).sqrt().scale(2)
		z := c.add(part)
		if z.abs().Cmp(newFloat().SetInt64(1)) > 0 {
			z = c.sub(part)
		}
		q = mulLinear(q, z.neg())
	}
	for range n {
		q = mulLinear(q, one)
	}

	tolerance := newFloat().SetMantExp(newFloat().SetInt64(1), -(precision / 2))
	sum := newFloat()
	for i, c := range q {
		if newFloat().Abs(c.im).Cmp(tolerance) > 0 {
			return nil, fmt.Errorf("tap %d has imaginary residue %v", i, c.im)
		}
		sum.Add(sum, c.re)
	}

	scale := newFloat().SetInt64(2)
	scale.Sqrt(scale)
	scale.Quo(scale, sum)

	taps := make([]float64, len(q))
	for i, c := range q {
		taps[i], _ = newFloat().Mul(c.re, scale).Float64()
	}
	return taps, nil
}

// daubechiesPolynomial returns the coefficients of P for order n, lowest
// power first.
func daubechiesPolynomial(n int) []*big.Float {
	p := make([]*big.Float, n)
	for k := range p {
		b := new(big.Int).Binomial(int64(n-1+k), int64(k))
		p[k] = newFloat().SetInt(b)
	}
	return p
}

// eigenRoots returns double precision approximations of the roots of p as
// the eigenvalues of its companion matrix.
func eigenRoots(p []*big.Float) ([]complex128, error) {
	d := len(p) - 1
	lead, _ := p[d].Float64()

	a := mat.NewDense(d, d, nil)
	for i := 1; i < d; i++ {
		a.Set(i, i-1, 1)
	}
	for i := range d {
		c, _ := p[i].Float64()
		a.Set(i, d-1, -c/lead)
	}

	var eig mat.Eigen
	if !eig.Factorize(a, mat.EigenNone) {
		return nil, errors.New("companion matrix eigen decomposition did not converge")
	}
	return eig.Values(nil), nil
}

// polish refines a root guess of p with Newton's method.
func polish(p []*big.Float, z bigComplex) bigComplex {
	tolerance := newFloat().SetMantExp(newFloat().SetInt64(1), -(precision - 16))
	for range maxNewtonSteps {
		f := complexOf(0, 0)
		df := complexOf(0, 0)
		for i := len(p) - 1; i >= 0; i-- {
			df = df.mul(z).add(f)
			f = f.mul(z).add(bigComplex{p[i], newFloat()})
		}
		if df.isZero() {
			break
		}
		step := f.quo(df)
		z = z.sub(step)
		if step.abs().Cmp(tolerance) < 0 {
			break
		}
	}
	return z
}

func checkDistinct(roots []bigComplex) error {
	tolerance := newFloat().SetMantExp(newFloat().SetInt64(1), -40)
	for i := range roots {
		for j := i + 1; j < len(roots); j++ {
			if roots[i].sub(roots[j]).abs().Cmp(tolerance) < 0 {
				return fmt.Errorf("roots %d and %d converged to the same value", i, j)
			}
		}
	}
	return nil
}

// mulLinear returns q·(x + a), both polynomials lowest power first.
func mulLinear(q []bigComplex, a bigComplex) []bigComplex {
	out := make([]bigComplex, len(q)+1)
	for i := range out {
		out[i] = complexOf(0, 0)
	}
	for i, c := range q {
		out[i+1] = out[i+1].add(c)
		out[i] = out[i].add(c.mul(a))
	}
	return out
}
