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


package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ajroetker/go-wavecodec/codec"
	"github.com/ajroetker/go-wavecodec/compress"
	"github.com/ajroetker/go-wavecodec/conv"
	"github.com/ajroetker/go-wavecodec/pipeline"
	"github.com/ajroetker/go-wavecodec/wavelet"
)

type environment struct {
	stdin          io.Reader
	stdout, stderr io.Writer
}

func (env *environment) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	return fs
}

func (env *environment) compress(args []string) error {
	defaults := pipeline.DefaultOptions()

	fs := env.flagSet("compress")
	in := fs.String("in", "-", "Input text signal")
	out := fs.String("out", "-", "Output container")
	name := fs.String("wavelet", defaults.Wavelet.String(), "Wavelet, db1 through db20")
	keep := fs.Float64("keep", defaults.KeepRatio, "Fraction of coefficients to keep, in [0, 1]")
	qmin := fs.Float64("qmin", 1, "Smallest quantization step, used with -qmax")
	qmax := fs.Float64("qmax", 0, "Largest quantization step (0: unclamped)")
	reflect := fs.Bool("reflect", defaults.Reflect, "Mirror the signal at its edges instead of zero padding")
	multibyte := fs.Bool("multibyte", defaults.MultibyteZeros, "Allow two byte zero runs")
	zstd := fs.Bool("zstd", defaults.Zstd, "zstd compress the coefficient stream")
	levels := fs.Int("levels", defaults.Levels, "Maximum decomposition levels (0: as many as possible)")
	workers := fs.Int("workers", defaults.Workers, "Row encoding workers (0: GOMAXPROCS)")
	verbose := fs.Bool("v", false, "Print compression statistics to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	family, err := wavelet.ParseName(*name)
	if err != nil {
		return err
	}
	opts := pipeline.Options{
		Wavelet:        family,
		Reflect:        *reflect,
		Levels:         *levels,
		KeepRatio:      *keep,
		MultibyteZeros: *multibyte,
		Zstd:           *zstd,
		Workers:        *workers,
	}
	if *qmax > 0 {
		opts.Range = &compress.QuantizeRange{Minimum: *qmin, Maximum: *qmax}
	}

	r, err := env.openInput(*in)
	if err != nil {
		return err
	}
	signal, err := readSamples(r)
	r.Close()
	if err != nil {
		return fmt.Errorf("read %s: %w", *in, err)
	}

	c, err := pipeline.NewCompressor(opts)
	if err != nil {
		return err
	}
	defer c.Close()

	cs, err := c.Compress(signal)
	if err != nil {
		return err
	}

	var container bytes.Buffer
	if err := pipeline.WriteContainer(&container, cs); err != nil {
		return err
	}
	if err := env.writeOutput(*out, func(w io.Writer) error {
		_, err := w.Write(container.Bytes())
		return err
	}); err != nil {
		return err
	}

	if *verbose {
		restored, err := c.Decompress(cs)
		if err != nil {
			return err
		}
		d, err := codec.Decode(bytes.NewReader(cs.Stream), cs.MultibyteZeros)
		if err != nil {
			return err
		}
		fmt.Fprintf(env.stderr, "samples:      %d\n", len(signal))
		fmt.Fprintf(env.stderr, "rows:         %v\n", d.Lengths())
		fmt.Fprintf(env.stderr, "kept:         %d of %d coefficients\n", compress.NonZero(d), compress.Count(d))
		fmt.Fprintf(env.stderr, "threshold:    %g\n", cs.Threshold)
		fmt.Fprintf(env.stderr, "step:         %g\n", cs.Step)
		fmt.Fprintf(env.stderr, "stream:       %d bytes\n", len(cs.Stream))
		fmt.Fprintf(env.stderr, "container:    %d bytes (%.2f bytes/sample)\n",
			container.Len(), float64(container.Len())/float64(len(signal)))
		fmt.Fprintf(env.stderr, "signal RMS:   %g\n", compress.RMS(signal))
		fmt.Fprintf(env.stderr, "error RMS:    %g\n", compress.ErrorRMS(signal, restored))
	}
	return nil
}

func (env *environment) decompress(args []string) error {
	fs := env.flagSet("decompress")
	in := fs.String("in", "-", "Input container")
	out := fs.String("out", "-", "Output text signal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cs, err := env.readContainer(*in)
	if err != nil {
		return err
	}
	signal, err := pipeline.Decompress(cs)
	if err != nil {
		return err
	}
	return env.writeOutput(*out, func(w io.Writer) error {
		return writeSamples(w, signal)
	})
}

func (env *environment) inspect(args []string) error {
	fs := env.flagSet("inspect")
	in := fs.String("in", "-", "Input container")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cs, err := env.readContainer(*in)
	if err != nil {
		return err
	}
	d, err := codec.Decode(bytes.NewReader(cs.Stream), cs.MultibyteZeros)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(env.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "wavelet:\t%v\n", cs.Wavelet)
	fmt.Fprintf(tw, "reflect:\t%v\n", cs.Reflect)
	fmt.Fprintf(tw, "multibyte zeros:\t%v\n", cs.MultibyteZeros)
	fmt.Fprintf(tw, "zstd:\t%v\n", cs.Zstd)
	fmt.Fprintf(tw, "samples:\t%d\n", cs.Length)
	fmt.Fprintf(tw, "threshold:\t%g\n", cs.Threshold)
	fmt.Fprintf(tw, "step:\t%g\n", cs.Step)
	fmt.Fprintf(tw, "stream:\t%d bytes\n", len(cs.Stream))
	fmt.Fprintf(tw, "coefficients:\t%d kept of %d\n", compress.NonZero(d), compress.Count(d))
	for i, row := range d {
		label := "detail"
		if i == 0 {
			label = "approximation"
		}
		fmt.Fprintf(tw, "row %d:\t%d %s, %d nonzero\n", i, len(row), label, compress.NonZero(d[i:i+1]))
	}
	return tw.Flush()
}

func (env *environment) wavelets(args []string) error {
	fs := env.flagSet("wavelets")
	length := fs.Int("length", 1024, "Signal length used for the level column")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(env.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "NAME\tTAPS\tLEVELS(%d)\n", *length)
	for _, name := range wavelet.Names() {
		w := wavelet.Get(name)
		fmt.Fprintf(tw, "%v\t%d\t%d\n", name, w.Taps(), w.MaximumLevel(*length))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(env.stderr, "convolution kernel: %s\n", conv.CurrentKernel())
	return nil
}

func (env *environment) readContainer(name string) (*pipeline.Compressed, error) {
	r, err := env.openInput(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	cs, err := pipeline.ReadContainer(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return cs, nil
}
