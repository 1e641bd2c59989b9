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
	"errors"
	"fmt"
	"slices"

	"github.com/ajroetker/go-wavecodec/conv"
)

// Decomposed is the output of a multi-level decomposition. Row 0 is the
// coarsest approximation; rows 1..N are detail coefficients from the coarsest
// level to the finest. Each row is roughly twice as long as the one before.
type Decomposed [][]float64

var (
	// ErrTooFewRows is returned when recomposing fewer than two rows.
	ErrTooFewRows = errors.New("wavelet: decomposition needs an approximation and at least one detail row")

	// ErrRowLength is returned when a detail row does not match the length of
	// the approximation it is combined with.
	ErrRowLength = errors.New("wavelet: detail row length mismatch")

	// ErrTrimWindow is returned when a synthesis step would keep a negative,
	// empty or out of range window of the convolution.
	ErrTrimWindow = errors.New("wavelet: invalid trim window")
)

// Clone returns a deep copy of d.
func (d Decomposed) Clone() Decomposed {
	out := make(Decomposed, len(d))
	for i, row := range d {
		out[i] = slices.Clone(row)
	}
	return out
}

// Lengths returns the length of every row.
func (d Decomposed) Lengths() []int {
	lengths := make([]int, len(d))
	for i, row := range d {
		lengths[i] = len(row)
	}
	return lengths
}

// Decompose runs as many levels as the signal length allows. See
// DecomposeLevels.
func Decompose(w Wavelet[float64], signal []float64, reflect bool) Decomposed {
	return DecomposeLevels(w, signal, reflect, -1)
}

// DecomposeLevels runs at most levels analysis steps; a negative value means
// no limit. The level count never exceeds w.MaximumLevel(len(signal)), so a
// larger request is silently capped.
//
// Each step convolves the current signal with both decomposition filters and
// keeps every second sample starting at index 1. The low-pass half feeds the
// next step; the high-pass half is stored as that level's detail row.
func DecomposeLevels(w Wavelet[float64], signal []float64, reflect bool, levels int) Decomposed {
	levelCount := w.MaximumLevel(len(signal))
	if levels >= 0 {
		levelCount = min(levels, levelCount)
	}

	filterLow := slices.Clone(w.Decompose.Low)
	filterHigh := slices.Clone(w.Decompose.High)
	slices.Reverse(filterLow)
	slices.Reverse(filterHigh)

	current := slices.Clone(signal)
	result := make(Decomposed, 0, levelCount+1)

	for range levelCount {
		lowPass := conv.Correlate(current, filterLow, reflect)
		highPass := conv.Correlate(current, filterHigh, reflect)
		current = decimate(lowPass)
		result = append(result, decimate(highPass))
	}

	result = append(result, current)
	slices.Reverse(result)
	return result
}

// decimate keeps len(x)/2 samples starting at index 1 with a stride of 2.
// The odd phase is what lines up with the synthesis filters in Recompose.
func decimate(x []float64) []float64 {
	out := make([]float64, len(x)/2)
	for i := range out {
		out[i] = x[1+2*i]
	}
	return out
}

// upsample interleaves a zero after every sample.
func upsample(x []float64) []float64 {
	out := make([]float64, 2*len(x))
	for i, v := range x {
		out[2*i] = v
	}
	return out
}

// Recompose inverts Decompose. reflect must match the value used to
// decompose. Rows that were pruned or quantized give an approximate signal.
//
// The result has the original length for even-length signals; odd lengths
// come back one sample longer, see RecomposeLength.
func Recompose(w Wavelet[float64], d Decomposed, reflect bool) ([]float64, error) {
	if len(d) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewRows, len(d))
	}

	filterLow := slices.Clone(w.Recompose.Low)
	filterHigh := slices.Clone(w.Recompose.High)
	slices.Reverse(filterLow)
	slices.Reverse(filterHigh)

	approximation := d[0]
	for i := 1; i < len(d); i++ {
		count := len(approximation)
		if len(d[i]) != count {
			return nil, fmt.Errorf("%w: row %d has %d coefficients, approximation has %d",
				ErrRowLength, i, len(d[i]), count)
		}

		convolutionSize := 2*count + len(filterLow) - 1
		recomposedSize := w.RecomposedSize(count)

		// The start of the window is fixed by the filter length. Only the
		// kept length may shrink to match the next detail row.
		start := (convolutionSize - recomposedSize) / 2
		if i < len(d)-1 {
			recomposedSize = min(recomposedSize, len(d[i+1]))
		}
		if recomposedSize <= 0 || start < 0 || start+recomposedSize > convolutionSize {
			return nil, fmt.Errorf("%w: level %d keeps [%d, %d) of %d samples",
				ErrTrimWindow, i, start, start+recomposedSize, convolutionSize)
		}

		low := conv.Correlate(upsample(approximation), filterLow, reflect)
		high := conv.Correlate(upsample(d[i]), filterHigh, reflect)
		next := make([]float64, recomposedSize)
		for j := range next {
			next[j] = low[start+j] + high[start+j]
		}
		approximation = next
	}

	return approximation, nil
}

// RecomposeLength is Recompose followed by dropping trailing samples beyond
// length, the length of the signal that was decomposed.
func RecomposeLength(w Wavelet[float64], d Decomposed, reflect bool, length int) ([]float64, error) {
	signal, err := Recompose(w, d, reflect)
	if err != nil {
		return nil, err
	}
	if len(signal) < length {
		return nil, fmt.Errorf("%w: recomposed %d samples, want %d", ErrTrimWindow, len(signal), length)
	}
	return signal[:length], nil
}
