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

//go:generate go run ../cmd/wavegen -output coefficients_gen.go -max 20

// Package wavelet provides multi-level 1-D discrete wavelet transforms using
// the orthogonal Daubechies family db1 through db20.
//
// # Wavelets
//
// Each named wavelet carries four FIR filters of 2N taps (N is the index in
// dbN): a low/high pair for decomposition (analysis) and a low/high pair for
// recomposition (synthesis). The decomposition low-pass filters are stored in
// a generated table; the remaining three are derived from it exactly by
// reversal and alternating sign.
//
//	w := wavelet.Get(wavelet.DB4)       // float64 filters
//	f := wavelet.GetAs[float32](wavelet.DB4) // rounded to nearest float32
//
// Asking for a name outside DB1..DB20 is a programming error and panics.
// Use ParseName to validate names coming from user input.
//
// # Transform
//
// Decompose runs the analysis filter bank repeatedly, keeping the odd samples
// of every full-length convolution:
//
//	d := wavelet.Decompose(w, signal, false)
//	// d[0] is the coarsest approximation, d[1:] are details, coarsest first.
//	out, err := wavelet.Recompose(w, d, false)
//
// The reflect argument selects symmetric extension at the signal edges instead
// of zero padding, and must match between Decompose and Recompose.
//
// Recompose reproduces the original length exactly when the signal length is
// even. RecomposeLength trims to a known length for any input.
package wavelet
