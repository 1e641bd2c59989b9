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

import "math/big"

func newFloat() *big.Float {
	return new(big.Float).SetPrec(precision)
}

// bigComplex is a complex number with big.Float parts. Operations return new
// values and never modify their operands.
type bigComplex struct {
	re, im *big.Float
}

func complexOf(re, im float64) bigComplex {
	return bigComplex{newFloat().SetFloat64(re), newFloat().SetFloat64(im)}
}

func (a bigComplex) add(b bigComplex) bigComplex {
	return bigComplex{newFloat().Add(a.re, b.re), newFloat().Add(a.im, b.im)}
}

func (a bigComplex) sub(b bigComplex) bigComplex {
	return bigComplex{newFloat().Sub(a.re, b.re), newFloat().Sub(a.im, b.im)}
}

func (a bigComplex) neg() bigComplex {
	return bigComplex{newFloat().Neg(a.re), newFloat().Neg(a.im)}
}

func (a bigComplex) mul(b bigComplex) bigComplex {
	re := newFloat().Mul(a.re, b.re)
	re.Sub(re, newFloat().Mul(a.im, b.im))
	im := newFloat().Mul(a.re, b.im)
	im.Add(im, newFloat().Mul(a.im, b.re))
	return bigComplex{re, im}
}

func (a bigComplex) scale(f int64) bigComplex {
	s := newFloat().SetInt64(f)
	return bigComplex{newFloat().Mul(a.re, s), newFloat().Mul(a.im, s)}
}

// norm returns |a|².
func (a bigComplex) norm() *big.Float {
	n := newFloat().Mul(a.re, a.re)
	return n.Add(n, newFloat().Mul(a.im, a.im))
}

func (a bigComplex) abs() *big.Float {
	n := a.norm()
	return n.Sqrt(n)
}

func (a bigComplex) isZero() bool {
	return a.re.Sign() == 0 && a.im.Sign() == 0
}

func (a bigComplex) quo(b bigComplex) bigComplex {
	d := b.norm()
	re := newFloat().Mul(a.re, b.re)
	re.Add(re, newFloat().Mul(a.im, b.im))
	im := newFloat().Mul(a.im, b.re)
	im.Sub(im, newFloat().Mul(a.re, b.im))
	return bigComplex{re.Quo(re, d), im.Quo(im, d)}
}

// sqrt returns the principal square root of a.
func (a bigComplex) sqrt() bigComplex {
	r := a.abs()
	half := newFloat().SetFloat64(0.5)

	re := newFloat().Add(r, a.re)
	re.Mul(re, half)
	if re.Sign() < 0 {
		re.SetInt64(0)
	}
	re.Sqrt(re)

	im := newFloat().Sub(r, a.re)
	im.Mul(im, half)
	if im.Sign() < 0 {
		im.SetInt64(0)
	}
	im.Sqrt(im)
	if a.im.Sign() < 0 {
		im.Neg(im)
	}
	return bigComplex{re, im}
}
