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
	"bytes"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/ajroetker/go-wavecodec/codec"
	"github.com/ajroetker/go-wavecodec/compress"
	"github.com/ajroetker/go-wavecodec/wavelet"
	"github.com/ajroetker/go-wavecodec/workerpool"
)

var (
	// ErrSignalTooShort is returned when a signal is too short for even one
	// decomposition level of the chosen wavelet.
	ErrSignalTooShort = errors.New("pipeline: signal too short for the wavelet")

	// ErrSignalTooLong is returned when a signal length does not fit the
	// container's 32 bit length field.
	ErrSignalTooLong = errors.New("pipeline: signal too long")
)

// Compressed is a compressed signal together with everything needed to
// restore it.
type Compressed struct {
	Wavelet        wavelet.Name
	Reflect        bool
	MultibyteZeros bool

	// Zstd requests zstd framing of Stream in WriteContainer.
	Zstd bool

	// Step is the quantization step; Threshold the pruning threshold.
	Step      float64
	Threshold float64

	// Length is the number of samples in the original signal.
	Length int

	// Stream is the codec encoding of the quantized coefficients.
	Stream []byte
}

// Compressor compresses signals with fixed Options. Rows of each signal are
// encoded concurrently on a pool owned by the Compressor. Methods may be
// called from several goroutines.
type Compressor struct {
	opts    Options
	wavelet wavelet.Wavelet[float64]
	pool    *workerpool.Pool
}

// NewCompressor validates opts and starts the worker pool. Call Close when
// done.
func NewCompressor(opts Options) (*Compressor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Compressor{
		opts:    opts,
		wavelet: wavelet.Get(opts.Wavelet),
	}
	if opts.Workers != 1 {
		c.pool = workerpool.New(opts.Workers)
	}
	return c, nil
}

// Options returns the options c was created with.
func (c *Compressor) Options() Options {
	return c.opts
}

// Close stops the worker pool. A closed Compressor still works, on the
// calling goroutine.
func (c *Compressor) Close() {
	c.pool.Close()
}

// Compress decomposes, prunes, quantizes and encodes signal. signal is not
// modified.
func (c *Compressor) Compress(signal []float64) (*Compressed, error) {
	if uint64(len(signal)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d samples", ErrSignalTooLong, len(signal))
	}
	if c.wavelet.MaximumLevel(len(signal)) == 0 {
		return nil, fmt.Errorf("%w: %d samples, %v needs at least %d",
			ErrSignalTooShort, len(signal), c.opts.Wavelet, 2*(c.wavelet.Taps()-1))
	}

	levels := -1
	if c.opts.Levels > 0 {
		levels = c.opts.Levels
	}
	d := wavelet.DecomposeLevels(c.wavelet, signal, c.opts.Reflect, levels)

	threshold := compress.PreserveHighest(d, c.opts.KeepRatio)
	step := compress.Quantize(d, threshold, c.opts.Range)

	stream, err := c.encode(d)
	if err != nil {
		return nil, err
	}

	return &Compressed{
		Wavelet:        c.opts.Wavelet,
		Reflect:        c.opts.Reflect,
		MultibyteZeros: c.opts.MultibyteZeros,
		Zstd:           c.opts.Zstd,
		Step:           step,
		Threshold:      threshold,
		Length:         len(signal),
		Stream:         stream,
	}, nil
}

// encode builds the same bytes as codec.Encode with every row payload
// produced on the pool.
func (c *Compressor) encode(d wavelet.Decomposed) ([]byte, error) {
	header, err := codec.AppendHeader(nil, d)
	if err != nil {
		return nil, err
	}

	parts := make([][]byte, len(d)+1)
	parts[0] = header
	err = c.pool.Run(len(d), func(i int) error {
		parts[i+1] = codec.AppendRow(nil, d[i], c.opts.MultibyteZeros)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Concat(parts...), nil
}

// Decompress restores the signal held by cs, dequantizing rows on c's pool.
func (c *Compressor) Decompress(cs *Compressed) ([]float64, error) {
	return decompress(cs, c.pool)
}

// Decompress restores the signal held by cs. The result approximates the
// original signal; pruning and quantization are not reversible.
func Decompress(cs *Compressed) ([]float64, error) {
	return decompress(cs, nil)
}

func decompress(cs *Compressed, pool *workerpool.Pool) ([]float64, error) {
	if !cs.Wavelet.Valid() {
		return nil, fmt.Errorf("pipeline: %w: %v", wavelet.ErrUnknownName, cs.Wavelet)
	}

	d, err := codec.Decode(bytes.NewReader(cs.Stream), cs.MultibyteZeros)
	if err != nil {
		return nil, fmt.Errorf("pipeline: decoding coefficients: %w", err)
	}

	pool.ParallelFor(len(d), func(start, end int) {
		compress.Dequantize(d[start:end], cs.Step)
	})

	signal, err := wavelet.RecomposeLength(wavelet.Get(cs.Wavelet), d, cs.Reflect, cs.Length)
	if err != nil {
		return nil, fmt.Errorf("pipeline: recomposing signal: %w", err)
	}
	return signal, nil
}
