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

package compress

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ajroetker/go-wavecodec/wavelet"
)

// Count returns the total number of coefficients in d.
func Count(d wavelet.Decomposed) int {
	n := 0
	for _, row := range d {
		n += len(row)
	}
	return n
}

// NonZero returns the number of coefficients in d that are not zero.
func NonZero(d wavelet.Decomposed) int {
	n := 0
	for _, row := range d {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// RMS returns the root mean square of values, or 0 for an empty slice.
func RMS(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Norm(values, 2) / math.Sqrt(float64(len(values)))
}

// ErrorRMS returns the root mean square of the difference between two
// signals of equal length.
func ErrorRMS(original, reconstructed []float64) float64 {
	if len(original) != len(reconstructed) {
		panic("compress: signal lengths do not match")
	}
	diff := make([]float64, len(original))
	floats.SubTo(diff, original, reconstructed)
	return RMS(diff)
}
