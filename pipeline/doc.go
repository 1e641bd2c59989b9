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


// Package pipeline chains the wavelet transform, the lossy compress stages
// and the codec into a single signal compressor.
//
//	signal -> wavelet.DecomposeLevels -> compress.PreserveHighest
//	       -> compress.Quantize -> codec stream
//
// Decompress runs the inverse: codec.Decode, compress.Dequantize and
// wavelet.RecomposeLength. The codec stream alone does not carry the
// quantization step, the wavelet or the signal length, so a Compressed value
// keeps them next to the stream. WriteContainer and ReadContainer store all
// of it in one self-describing blob, optionally zstd compressed.
//
// # Usage Example
//
//	c, err := pipeline.NewCompressor(pipeline.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	cs, err := c.Compress(signal)
//	if err != nil {
//		return err
//	}
//	err = pipeline.WriteContainer(w, cs)
//	...
//	cs, err = pipeline.ReadContainer(r)
//	restored, err := pipeline.Decompress(cs)
package pipeline
