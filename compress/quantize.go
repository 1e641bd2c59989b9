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

	"github.com/ajroetker/go-wavecodec/wavelet"
)

// QuantizeRange clamps the quantization step to [Minimum, Maximum].
type QuantizeRange struct {
	Minimum float64
	Maximum float64
}

// Step returns the quantization step Quantize would use for threshold:
// round(threshold), clamped into r when r is not nil, and never below 1.
func Step(threshold float64, r *QuantizeRange) float64 {
	step := math.Round(threshold)
	if r != nil {
		step = min(r.Maximum, step)
		step = max(r.Minimum, step)
	}

	// A step below 1 would grow the coefficients instead of shrinking them.
	return max(step, 1.0)
}

// Quantize replaces every coefficient c of d by round(c / step), in place,
// and returns step. See Step for how step is derived from threshold.
func Quantize(d wavelet.Decomposed, threshold float64, r *QuantizeRange) float64 {
	step := Step(threshold, r)
	for _, row := range d {
		for i, value := range row {
			row[i] = math.Round(value / step)
		}
	}
	return step
}

// Dequantize multiplies every coefficient of d by step, in place. It is the
// approximate inverse of Quantize. Zeros stay zero, even for an infinite
// step.
func Dequantize(d wavelet.Decomposed, step float64) {
	for _, row := range d {
		for i, value := range row {
			if value != 0 {
				row[i] = value * step
			}
		}
	}
}
