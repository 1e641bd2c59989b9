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
	"bytes"
	"errors"
	"flag"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-wavecodec/compress"
)

func TestReadSamples(t *testing.T) {
	got, err := readSamples(strings.NewReader("1, 2\n3\t4.5\n\n-1e3,,7\n"))
	if err != nil {
		t.Fatalf("readSamples: %v", err)
	}
	if diff := cmp.Diff([]float64{1, 2, 3, 4.5, -1000, 7}, got); diff != "" {
		t.Errorf("readSamples mismatch (-want +got):\n%s", diff)
	}

	if _, err := readSamples(strings.NewReader("1 2\n3 x\n")); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("readSamples(bad) err = %v, want a line 2 error", err)
	}
}

func TestWriteSamples(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSamples(&buf, []float64{1, -0.5, 1e-7}); err != nil {
		t.Fatalf("writeSamples: %v", err)
	}
	if got, want := buf.String(), "1\n-0.5\n1e-07\n"; got != want {
		t.Errorf("writeSamples = %q, want %q", got, want)
	}
}

func TestCompressDecompress(t *testing.T) {
	dir := t.TempDir()
	signalPath := filepath.Join(dir, "signal.txt")
	containerPath := filepath.Join(dir, "signal.wvc")
	restoredPath := filepath.Join(dir, "restored.txt")

	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = 50*math.Sin(float64(i)/40) + 10*math.Cos(float64(i)/7)
	}
	var text bytes.Buffer
	if err := writeSamples(&text, signal); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(signalPath, text.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	err := run([]string{"compress", "-in", signalPath, "-out", containerPath,
		"-wavelet", "db6", "-keep", "1", "-qmin", "1", "-qmax", "1", "-zstd", "-v"}, nil, &stdout, &stderr)
	if err != nil {
		t.Fatalf("compress: %v\n%s", err, stderr.String())
	}
	if !strings.Contains(stderr.String(), "error RMS:") {
		t.Errorf("verbose output missing statistics:\n%s", stderr.String())
	}

	stdout.Reset()
	if err := run([]string{"inspect", "-in", containerPath}, nil, &stdout, &stderr); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"db6", "samples:", "1000", "zstd:", "approximation"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("inspect output missing %q:\n%s", want, stdout.String())
		}
	}

	if err := run([]string{"decompress", "-in", containerPath, "-out", restoredPath}, nil, &stdout, &stderr); err != nil {
		t.Fatalf("decompress: %v", err)
	}
	f, err := os.Open(restoredPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	restored, err := readSamples(f)
	if err != nil {
		t.Fatalf("readSamples: %v", err)
	}
	if len(restored) != len(signal) {
		t.Fatalf("restored %d samples, want %d", len(restored), len(signal))
	}
	if e := compress.ErrorRMS(signal, restored); e > 2 {
		t.Errorf("RMS error %v", e)
	}
}

func TestStdinStdout(t *testing.T) {
	var container, stderr bytes.Buffer
	input := strings.NewReader(strings.Repeat("4 8 15 16 23 42 ", 20))
	if err := run([]string{"compress", "-wavelet", "db2", "-keep", "1"}, input, &container, &stderr); err != nil {
		t.Fatalf("compress: %v", err)
	}

	var out bytes.Buffer
	if err := run([]string{"decompress"}, &container, &out, &stderr); err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if lines := strings.Count(out.String(), "\n"); lines != 120 {
		t.Errorf("decompress wrote %d samples, want 120", lines)
	}
}

func TestWavelets(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"wavelets"}, nil, &stdout, &stderr); err != nil {
		t.Fatalf("wavelets: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 21 {
		t.Fatalf("%d lines, want a header and 20 wavelets:\n%s", len(lines), stdout.String())
	}
	if fields := strings.Fields(lines[20]); len(fields) != 3 || fields[0] != "db20" || fields[1] != "40" || fields[2] != "4" {
		t.Errorf("db20 line = %q", lines[20])
	}
	if !strings.Contains(stderr.String(), "convolution kernel:") {
		t.Errorf("missing kernel line: %q", stderr.String())
	}
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	tests := [][]string{
		nil,
		{"frobnicate"},
		{"compress", "-wavelet", "db21"},
		{"compress", "-keep", "2"},
		{"compress", "-in", filepath.Join(t.TempDir(), "missing.txt")},
		{"decompress", "-in", filepath.Join(t.TempDir(), "missing.wvc")},
	}
	for _, args := range tests {
		if err := run(args, strings.NewReader("1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16"), &stdout, &stderr); err == nil {
			t.Errorf("run(%q) succeeded", args)
		}
	}

	if err := run([]string{"inspect", "-h"}, nil, &stdout, &stderr); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("inspect -h: err = %v, want flag.ErrHelp", err)
	}
	if err := run([]string{"decompress"}, strings.NewReader("not a container"), &stdout, &stderr); err == nil {
		t.Error("decompress of garbage succeeded")
	}
}
