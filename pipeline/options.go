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


package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-wavecodec/compress"
	"github.com/ajroetker/go-wavecodec/wavelet"
)

// ErrInvalidOptions is wrapped by every error Options.Validate returns.
var ErrInvalidOptions = errors.New("pipeline: invalid options")

// Options configures a Compressor.
type Options struct {
	// Wavelet is the Daubechies family used for the transform.
	Wavelet wavelet.Name

	// Reflect selects mirrored boundary extension instead of zero padding.
	Reflect bool

	// Levels caps the number of decomposition levels. Zero runs as many
	// levels as the signal length allows.
	Levels int

	// KeepRatio is the fraction of coefficients, in [0, 1], that survive
	// pruning.
	KeepRatio float64

	// Range optionally clamps the quantization step.
	Range *compress.QuantizeRange

	// MultibyteZeros enables two byte zero run tokens.
	MultibyteZeros bool

	// Zstd compresses the codec stream when written with WriteContainer.
	Zstd bool

	// Workers is the number of goroutines encoding rows. Zero uses
	// GOMAXPROCS and one encodes on the calling goroutine.
	Workers int
}

// DefaultOptions returns the options used by the wavecodec command when no
// flags are given.
func DefaultOptions() Options {
	return Options{
		Wavelet:        wavelet.DB4,
		Reflect:        true,
		KeepRatio:      0.1,
		MultibyteZeros: true,
	}
}

// Validate reports the first problem found in o.
func (o Options) Validate() error {
	if !o.Wavelet.Valid() {
		return fmt.Errorf("%w: unknown wavelet %v", ErrInvalidOptions, o.Wavelet)
	}
	if o.Levels < 0 {
		return fmt.Errorf("%w: negative level count %d", ErrInvalidOptions, o.Levels)
	}
	if math.IsNaN(o.KeepRatio) || o.KeepRatio < 0 || o.KeepRatio > 1 {
		return fmt.Errorf("%w: keep ratio %v outside [0, 1]", ErrInvalidOptions, o.KeepRatio)
	}
	if r := o.Range; r != nil {
		if math.IsNaN(r.Minimum) || math.IsNaN(r.Maximum) || r.Minimum > r.Maximum {
			return fmt.Errorf("%w: quantize range [%v, %v]", ErrInvalidOptions, r.Minimum, r.Maximum)
		}
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidOptions, o.Workers)
	}
	return nil
}
