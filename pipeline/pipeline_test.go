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
	"io"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-wavecodec/codec"
	"github.com/ajroetker/go-wavecodec/compress"
	"github.com/ajroetker/go-wavecodec/wavelet"
)

// testSignal is a slow sinusoid with a noisy high frequency burst in the
// middle.
func testSignal(length int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, 11))
	signal := make([]float64, length)
	for i := range signal {
		x := 2 * math.Pi * float64(i) / float64(length)
		signal[i] = 100 * math.Sin(2*x)
		if i > length/3 && i < length/2 {
			signal[i] += 40*math.Cos(60*x) + 5*rng.NormFloat64()
		}
	}
	return signal
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		ok     bool
	}{
		{name: "defaults", modify: func(*Options) {}, ok: true},
		{name: "db20", modify: func(o *Options) { o.Wavelet = wavelet.DB20 }, ok: true},
		{name: "bad wavelet", modify: func(o *Options) { o.Wavelet = wavelet.Name(wavelet.NameCount) }},
		{name: "negative levels", modify: func(o *Options) { o.Levels = -1 }},
		{name: "ratio above one", modify: func(o *Options) { o.KeepRatio = 1.5 }},
		{name: "negative ratio", modify: func(o *Options) { o.KeepRatio = -0.1 }},
		{name: "nan ratio", modify: func(o *Options) { o.KeepRatio = math.NaN() }},
		{name: "keep nothing", modify: func(o *Options) { o.KeepRatio = 0 }, ok: true},
		{name: "range", modify: func(o *Options) { o.Range = &compress.QuantizeRange{Minimum: 2, Maximum: 8} }, ok: true},
		{name: "inverted range", modify: func(o *Options) { o.Range = &compress.QuantizeRange{Minimum: 8, Maximum: 2} }},
		{name: "negative workers", modify: func(o *Options) { o.Workers = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			err := opts.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("Validate() = %v, want ErrInvalidOptions", err)
			}
		})
	}

	if _, err := NewCompressor(Options{Wavelet: wavelet.DB2, KeepRatio: 2}); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("NewCompressor with bad options: err = %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []wavelet.Name{wavelet.DB1, wavelet.DB4, wavelet.DB12} {
		for _, reflect := range []bool{false, true} {
			for _, length := range []int{1024, 777} {
				opts := Options{
					Wavelet:        name,
					Reflect:        reflect,
					KeepRatio:      1,
					Range:          &compress.QuantizeRange{Minimum: 1, Maximum: 1},
					MultibyteZeros: true,
				}
				c, err := NewCompressor(opts)
				if err != nil {
					t.Fatalf("NewCompressor: %v", err)
				}

				signal := testSignal(length, 1)
				cs, err := c.Compress(signal)
				if err != nil {
					t.Fatalf("%v reflect=%v n=%d: Compress: %v", name, reflect, length, err)
				}
				if cs.Step != 1 || cs.Length != length {
					t.Errorf("%v: step %v length %d, want 1 and %d", name, cs.Step, cs.Length, length)
				}

				restored, err := Decompress(cs)
				if err != nil {
					t.Fatalf("%v reflect=%v n=%d: Decompress: %v", name, reflect, length, err)
				}
				if len(restored) != length {
					t.Fatalf("%v: restored %d samples, want %d", name, len(restored), length)
				}
				if e := compress.ErrorRMS(signal, restored); e > 2 {
					t.Errorf("%v reflect=%v n=%d: RMS error %v", name, reflect, length, e)
				}

				fromPool, err := c.Decompress(cs)
				if err != nil {
					t.Fatalf("Compressor.Decompress: %v", err)
				}
				if diff := cmp.Diff(restored, fromPool); diff != "" {
					t.Errorf("pooled Decompress differs (-plain +pooled):\n%s", diff)
				}
				c.Close()
			}
		}
	}
}

func TestParallelEncodeMatchesCodec(t *testing.T) {
	signal := testSignal(4096, 7)
	for _, workers := range []int{1, 4} {
		opts := DefaultOptions()
		opts.Workers = workers
		opts.KeepRatio = 0.2
		c, err := NewCompressor(opts)
		if err != nil {
			t.Fatalf("NewCompressor: %v", err)
		}
		cs, err := c.Compress(signal)
		c.Close()
		if err != nil {
			t.Fatalf("Compress: %v", err)
		}

		d := wavelet.Decompose(wavelet.Get(opts.Wavelet), signal, opts.Reflect)
		threshold := compress.PreserveHighest(d, opts.KeepRatio)
		step := compress.Quantize(d, threshold, nil)
		var want bytes.Buffer
		if err := codec.Encode(&want, d, opts.MultibyteZeros); err != nil {
			t.Fatalf("codec.Encode: %v", err)
		}

		if step != cs.Step || threshold != cs.Threshold {
			t.Errorf("workers=%d: step/threshold %v/%v, want %v/%v", workers, cs.Step, cs.Threshold, step, threshold)
		}
		if !bytes.Equal(want.Bytes(), cs.Stream) {
			t.Errorf("workers=%d: stream differs from codec.Encode", workers)
		}
	}
}

func TestKeepRatioShrinksStream(t *testing.T) {
	// Loud noise puts nearly every coefficient above the pruning floor of 1.
	rng := rand.New(rand.NewPCG(3, 3))
	signal := make([]float64, 2048)
	for i := range signal {
		signal[i] = 50 * rng.NormFloat64()
	}
	sizes := make([]int, 0, 3)
	for _, ratio := range []float64{1, 0.25, 0.02} {
		opts := DefaultOptions()
		opts.KeepRatio = ratio
		opts.Range = &compress.QuantizeRange{Minimum: 1, Maximum: 1}
		c, err := NewCompressor(opts)
		if err != nil {
			t.Fatalf("NewCompressor: %v", err)
		}
		cs, err := c.Compress(signal)
		c.Close()
		if err != nil {
			t.Fatalf("Compress: %v", err)
		}
		sizes = append(sizes, len(cs.Stream))
	}
	if sizes[0] <= sizes[1] || sizes[1] <= sizes[2] {
		t.Errorf("stream sizes %v do not shrink with the keep ratio", sizes)
	}
}

func TestKeepNothing(t *testing.T) {
	opts := DefaultOptions()
	opts.KeepRatio = 0
	c, err := NewCompressor(opts)
	if err != nil {
		t.Fatalf("NewCompressor: %v", err)
	}
	defer c.Close()

	cs, err := c.Compress(testSignal(256, 1))
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if !math.IsInf(cs.Threshold, 1) {
		t.Errorf("threshold = %v, want +Inf", cs.Threshold)
	}

	var buf bytes.Buffer
	if err := WriteContainer(&buf, cs); err != nil {
		t.Fatalf("WriteContainer: %v", err)
	}
	cs, err = ReadContainer(&buf)
	if err != nil {
		t.Fatalf("ReadContainer: %v", err)
	}
	restored, err := Decompress(cs)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	for i, v := range restored {
		if v != 0 {
			t.Fatalf("restored[%d] = %v, want 0", i, v)
		}
	}
}

func TestLevels(t *testing.T) {
	signal := testSignal(1024, 2)
	opts := DefaultOptions()
	opts.Levels = 2
	opts.KeepRatio = 1
	c, err := NewCompressor(opts)
	if err != nil {
		t.Fatalf("NewCompressor: %v", err)
	}
	defer c.Close()

	cs, err := c.Compress(signal)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	lengths, err := codec.ReadHeader(bytes.NewReader(cs.Stream))
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if len(lengths) != 3 {
		t.Errorf("%d rows, want 3 for two levels", len(lengths))
	}
	if _, err := Decompress(cs); err != nil {
		t.Errorf("Decompress: %v", err)
	}
}

func TestSignalTooShort(t *testing.T) {
	c, err := NewCompressor(DefaultOptions())
	if err != nil {
		t.Fatalf("NewCompressor: %v", err)
	}
	defer c.Close()

	// db4 has 8 taps and needs 14 samples for one level.
	if _, err := c.Compress(make([]float64, 13)); !errors.Is(err, ErrSignalTooShort) {
		t.Errorf("13 samples: err = %v, want ErrSignalTooShort", err)
	}
	if _, err := c.Compress(make([]float64, 14)); err != nil {
		t.Errorf("14 samples: %v", err)
	}
}

func TestContainerRoundTrip(t *testing.T) {
	signal := testSignal(3000, 5)
	for _, zstd := range []bool{false, true} {
		opts := DefaultOptions()
		opts.Zstd = zstd
		opts.Wavelet = wavelet.DB6
		c, err := NewCompressor(opts)
		if err != nil {
			t.Fatalf("NewCompressor: %v", err)
		}
		cs, err := c.Compress(signal)
		c.Close()
		if err != nil {
			t.Fatalf("Compress: %v", err)
		}

		var buf bytes.Buffer
		if err := WriteContainer(&buf, cs); err != nil {
			t.Fatalf("zstd=%v: WriteContainer: %v", zstd, err)
		}
		raw := bytes.Clone(buf.Bytes())
		if flags := raw[6]; (flags&flagZstd != 0) != zstd {
			t.Errorf("zstd=%v: flags %#02x", zstd, flags)
		}

		got, err := ReadContainer(&buf)
		if err != nil {
			t.Fatalf("zstd=%v: ReadContainer: %v", zstd, err)
		}
		if diff := cmp.Diff(cs, got); diff != "" {
			t.Errorf("zstd=%v: container round trip mismatch (-want +got):\n%s", zstd, diff)
		}
		if buf.Len() != 0 {
			t.Errorf("zstd=%v: %d bytes left after the container", zstd, buf.Len())
		}

		want, err := Decompress(cs)
		if err != nil {
			t.Fatalf("Decompress: %v", err)
		}
		restored, err := Decompress(got)
		if err != nil {
			t.Fatalf("Decompress: %v", err)
		}
		if diff := cmp.Diff(want, restored); diff != "" {
			t.Errorf("zstd=%v: restored signal mismatch (-want +got):\n%s", zstd, diff)
		}
	}
}

func TestReadContainerErrors(t *testing.T) {
	cs := &Compressed{
		Wavelet: wavelet.DB2,
		Step:    3,
		Length:  10,
		Stream:  []byte{2, 1, 0, 1, 0, 0x01, 0x02},
	}
	var buf bytes.Buffer
	if err := WriteContainer(&buf, cs); err != nil {
		t.Fatalf("WriteContainer: %v", err)
	}
	valid := buf.Bytes()

	corrupt := func(offset int, value byte) []byte {
		b := bytes.Clone(valid)
		b[offset] = value
		return b
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty", data: nil, want: ErrBadMagic},
		{name: "magic", data: corrupt(0, 'X'), want: ErrBadMagic},
		{name: "version", data: corrupt(4, 9), want: ErrVersion},
		{name: "wavelet", data: corrupt(5, 200), want: ErrCorrupt},
		{name: "flags", data: corrupt(6, 0x80), want: ErrCorrupt},
		{name: "zstd flag on plain payload", data: corrupt(6, flagZstd), want: ErrCorrupt},
		{name: "short header", data: valid[:10], want: io.ErrUnexpectedEOF},
		{name: "short payload", data: valid[:len(valid)-1], want: io.ErrUnexpectedEOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadContainer(bytes.NewReader(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("ReadContainer err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecompressErrors(t *testing.T) {
	if _, err := Decompress(&Compressed{Wavelet: wavelet.Name(99)}); !errors.Is(err, wavelet.ErrUnknownName) {
		t.Errorf("bad wavelet: err = %v", err)
	}
	if _, err := Decompress(&Compressed{Wavelet: wavelet.DB1, Stream: []byte{1, 4}}); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("truncated stream: err = %v", err)
	}
	single := &Compressed{Wavelet: wavelet.DB1, Step: 1, Length: 1, Stream: []byte{1, 1, 0, 0x01}}
	if _, err := Decompress(single); !errors.Is(err, wavelet.ErrTooFewRows) {
		t.Errorf("single row: err = %v", err)
	}
}

func BenchmarkCompress(b *testing.B) {
	c, err := NewCompressor(DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	defer c.Close()

	signal := testSignal(1<<14, 1)
	for b.Loop() {
		if _, err := c.Compress(signal); err != nil {
			b.Fatal(err)
		}
	}
}
