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


// Package codec serializes quantized wavelet coefficient rows into a compact
// byte stream and reads them back.
//
// The stream starts with a header: one byte holding the row count, then one
// little-endian uint16 per row holding its coefficient count. The row
// payloads follow, concatenated in row order.
//
// A payload is a sequence of tokens, read one byte at a time:
//
//	0b00svvvvv                  value in [-32, 31], sign moved to bit 5
//	0x41 | 0x42 | 0x44 | 0x48   control byte, then a 1, 2, 4 or 8 byte
//	                            little-endian signed value
//	0b1nnnnnnn                  run of n zero coefficients, n in [1, 127]
//	0b1hhhhhhh 0b1lllllll       run of h*128+l zeros (multibyte runs only)
//
// Runs saturate at 127 zeros (0xFF) in single-byte mode and at 16383 zeros
// (0xFF 0xFF) in multibyte mode; longer runs are split into several tokens.
// Whether multibyte runs are enabled is not recorded in the stream, so the
// decoder must be told the same value the encoder used.
//
// The codec is lossless for integer coefficients. Fractional values are
// truncated toward zero when encoded, which is why rows are expected to have
// gone through compress.Quantize first.
package codec
