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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// readSamples parses numbers separated by whitespace or commas.
func readSamples(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var samples []float64
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.FieldsFunc(scanner.Text(), func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			samples = append(samples, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

// writeSamples writes one sample per line.
func writeSamples(w io.Writer, samples []float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, v := range samples {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// openInput returns the named file, or stdin for "-".
func (env *environment) openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(env.stdin), nil
	}
	return os.Open(name)
}

// writeOutput calls write with the named file, or stdout for "-". The file
// is only kept if write succeeds.
func (env *environment) writeOutput(name string, write func(io.Writer) error) error {
	if name == "-" {
		return write(env.stdout)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	return f.Close()
}
