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

// Package conv provides full-length 1-D convolution of float64 rows with
// zero-padded or reflected boundaries.
//
// The result of convolving n samples with k taps always has n+k-1 samples.
// The first and last k-1 outputs overlap the signal edges; how the missing
// samples are filled is chosen by the reflect flag:
//
//	zero:    0  0  0 | s0 s1 s2 ... sn-1 |  0    0    0
//	reflect: s3 s2 s1 | s0 s1 s2 ... sn-1 | sn-2 sn-3 sn-4
//
// Reflection does not repeat the edge sample. Kernels longer than the signal
// fold back and forth across it.
//
// The inner product used for every output sample is dispatched at init time,
// see Dot.
package conv

// Correlate slides kernel over signal and returns n+k-1 inner products, where
// output i lines kernel[0] up with signal[i-(k-1)]. This is a convolution with
// the reverse of kernel, so callers pass kernels that are already reversed.
func Correlate(signal, kernel []float64, reflect bool) []float64 {
	n, k := len(signal), len(kernel)
	if k == 0 {
		return make([]float64, n)
	}
	result := make([]float64, n+k-1)
	if n == 0 {
		return result
	}

	if !reflect {
		for i := range result {
			// Restrict the kernel to the taps that overlap the signal.
			lo := max(0, k-1-i)
			hi := min(k, n+k-1-i)
			if hi <= lo {
				continue
			}
			start := i - (k - 1) + lo
			result[i] = Dot(kernel[lo:hi], signal[start:start+hi-lo])
		}
		return result
	}

	validStart := k - 1
	validEnd := n // first output whose window runs past the last sample
	for i := validStart; i < validEnd; i++ {
		start := i - (k - 1)
		result[i] = Dot(kernel, signal[start:start+k])
	}

	for i := range result {
		if i >= validStart && i < validEnd {
			continue
		}
		var sum float64
		for j, tap := range kernel {
			sum += tap * signal[reflectIndex(i-(k-1)+j, n)]
		}
		result[i] = sum
	}
	return result
}

// Convolve convolves signal with kernel. It is Correlate with the kernel
// reversed.
func Convolve(signal, kernel []float64, reflect bool) []float64 {
	reversed := make([]float64, len(kernel))
	for i, v := range kernel {
		reversed[len(kernel)-1-i] = v
	}
	return Correlate(signal, reversed, reflect)
}

// reflectIndex maps any integer position onto [0, n) by whole-sample
// symmetric reflection about the first and last samples.
func reflectIndex(m, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	m %= period
	if m < 0 {
		m += period
	}
	if m >= n {
		m = period - m
	}
	return m
}
