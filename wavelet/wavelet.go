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

package wavelet

import (
	"math"
	"slices"
	"sync"
)

// Float is the set of element types a Wavelet can be cast to.
type Float interface {
	~float32 | ~float64
}

// Filter is a low-pass/high-pass FIR pair.
type Filter[T Float] struct {
	Low  []T
	High []T
}

// Wavelet holds the analysis and synthesis filters of a named wavelet.
// All four filters have the same number of taps.
type Wavelet[T Float] struct {
	Name      Name
	Decompose Filter[T]
	Recompose Filter[T]
}

// Rounding selects how Cast maps a coefficient that is not exactly
// representable in the target type.
type Rounding int

const (
	// Round picks the nearest representable value (ties to even).
	Round Rounding = iota
	// Floor picks the largest representable value not above the input.
	Floor
	// Ceil picks the smallest representable value not below the input.
	Ceil
)

var (
	registryOnce sync.Once
	registry     [NameCount]Wavelet[float64]
)

// buildRegistry derives the three remaining filters of every wavelet from its
// decomposition low-pass filter.
func buildRegistry() {
	for i, decLow := range daubechies {
		taps := len(decLow)
		recLow := slices.Clone(decLow)
		slices.Reverse(recLow)

		decHigh := make([]float64, taps)
		for k, v := range recLow {
			if k%2 == 0 {
				decHigh[k] = -v
			} else {
				decHigh[k] = v
			}
		}
		recHigh := slices.Clone(decHigh)
		slices.Reverse(recHigh)

		registry[i] = Wavelet[float64]{
			Name:      Name(i),
			Decompose: Filter[float64]{Low: slices.Clone(decLow), High: decHigh},
			Recompose: Filter[float64]{Low: recLow, High: recHigh},
		}
	}
}

// Get returns the double-precision filters of name. The returned slices are
// copies and may be modified by the caller.
//
// Get panics if name is not a registered wavelet.
func Get(name Name) Wavelet[float64] {
	if !name.Valid() {
		panic("wavelet: unknown name " + name.String())
	}
	registryOnce.Do(buildRegistry)
	w := registry[name]
	return Wavelet[float64]{
		Name:      w.Name,
		Decompose: Filter[float64]{Low: slices.Clone(w.Decompose.Low), High: slices.Clone(w.Decompose.High)},
		Recompose: Filter[float64]{Low: slices.Clone(w.Recompose.Low), High: slices.Clone(w.Recompose.High)},
	}
}

// GetAs returns the filters of name converted to T with Round.
func GetAs[T Float](name Name) Wavelet[T] {
	return Cast[T](Get(name), Round)
}

// Cast converts every coefficient of w to T using the given rounding.
func Cast[T Float](w Wavelet[float64], rounding Rounding) Wavelet[T] {
	return Wavelet[T]{
		Name:      w.Name,
		Decompose: castFilter[T](w.Decompose, rounding),
		Recompose: castFilter[T](w.Recompose, rounding),
	}
}

func castFilter[T Float](f Filter[float64], rounding Rounding) Filter[T] {
	return Filter[T]{
		Low:  castSlice[T](f.Low, rounding),
		High: castSlice[T](f.High, rounding),
	}
}

func castSlice[T Float](src []float64, rounding Rounding) []T {
	dst := make([]T, len(src))
	for i, v := range src {
		dst[i] = castValue[T](v, rounding)
	}
	return dst
}

func castValue[T Float](v float64, rounding Rounding) T {
	// Conversion rounds to nearest; a float64 target is always exact.
	t := T(v)
	if rounding == Round || float64(t) == v {
		return t
	}

	f := float32(v)
	switch rounding {
	case Floor:
		if float64(f) > v {
			f = math.Nextafter32(f, float32(math.Inf(-1)))
		}
	case Ceil:
		if float64(f) < v {
			f = math.Nextafter32(f, float32(math.Inf(1)))
		}
	}
	return T(f)
}

// Taps returns the filter length shared by all four filters.
func (w Wavelet[T]) Taps() int {
	return len(w.Decompose.Low)
}

// MaximumLevel returns the number of decomposition levels a signal of the
// given length supports: floor(log2(length / (taps-1))), or 0 when the signal
// is shorter than taps-1.
func (w Wavelet[T]) MaximumLevel(signalLength int) int {
	filterLength := float64(w.Taps())
	if filterLength <= 1 {
		panic("wavelet: filter must have at least two taps")
	}

	length := float64(signalLength)
	if length < filterLength-1 {
		return 0
	}
	return int(math.Floor(math.Log2(length / (filterLength - 1))))
}

// RecomposedSize returns the length produced by one synthesis step from
// approximation and detail rows of the given length.
func (w Wavelet[T]) RecomposedSize(length int) int {
	return 2*length - len(w.Recompose.Low) + 2
}
