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

// Package compress reduces wavelet coefficients to small integers before
// they are serialized by package codec.
//
// Two lossy stages are applied in place, in this order:
//
//  1. Pruning: PreserveHighest keeps the largest coefficients by magnitude
//     across all rows and sets every smaller one to zero.
//  2. Quantization: Quantize divides every coefficient by an integer step and
//     rounds it. The step is returned and must be kept by the caller; it is
//     not part of the codec stream.
//
// Neither stage can be undone exactly. They are expected precision losses,
// not errors, and none of the functions here fail.
//
// # Usage Example
//
//	d := wavelet.Decompose(w, signal, false)
//	threshold := compress.PreserveHighest(d, 0.1) // keep the top 10%
//	step := compress.Quantize(d, threshold, nil)
//	// ... codec.Encode(out, d, true) ...
//	compress.Dequantize(d, step)
package compress
