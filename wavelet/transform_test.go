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

package wavelet

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"
)

// makeTestSignal returns 1024 samples: a slow sine with three bursts of
// high-frequency cosines between 135 and 300, silence elsewhere, plus uniform
// noise in [-5, 5].
func makeTestSignal(seed uint64) []float64 {
	const length = 1024
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	x := make([]float64, length)
	for i := range x {
		x[i] = 2 * math.Pi * float64(i) / float64(length-1)
	}

	y := make([]float64, length)
	for i := range y {
		y[i] = 100 * math.Sin(2*x[i]-math.Pi/8)
	}

	bursts := []struct {
		start, width int
		amplitude    float64
		frequency    float64
	}{
		{135, 357, 900, 300},
		{195, 212, 75, 101},
		{240, 250, 50, 72},
	}
	for _, b := range bursts {
		for i := b.start; i < b.start+b.width; i++ {
			y[i] += b.amplitude * math.Cos(b.frequency*x[i])
		}
	}

	for i := range y {
		if i < 150 || i >= 300 {
			y[i] = 0
		}
		y[i] += rng.Float64()*10 - 5
	}
	return y
}

// relativeError returns ||a-b|| / ||a||.
func relativeError(a, b []float64) float64 {
	var diff, norm float64
	for i := range a {
		d := a[i] - b[i]
		diff += d * d
		norm += a[i] * a[i]
	}
	if norm == 0 {
		return math.Sqrt(diff)
	}
	return math.Sqrt(diff / norm)
}

func TestDecomposeSimpleSignal(t *testing.T) {
	signal := []float64{0, 1, 2, 3, 4, 5, 4, 3, 2, 1}
	w := Get(DB1)

	decomposed := Decompose(w, signal, false)
	recomposed, err := Recompose(w, decomposed, false)
	if err != nil {
		t.Fatalf("Recompose: %v", err)
	}
	if len(recomposed) != len(signal) {
		t.Fatalf("len = %d, want %d", len(recomposed), len(signal))
	}
	if e := relativeError(signal, recomposed); e > 1e-12 {
		t.Errorf("relative error = %g", e)
	}
}

func TestDecomposeHaarValues(t *testing.T) {
	// Two levels of db1 on [0, 1, 2, 3].
	decomposed := Decompose(Get(DB1), []float64{0, 1, 2, 3}, false)
	want := [][]float64{{3}, {-2}, {-math.Sqrt2 / 2, -math.Sqrt2 / 2}}
	if len(decomposed) != len(want) {
		t.Fatalf("got %d rows, want %d", len(decomposed), len(want))
	}
	for i := range want {
		if relativeError(want[i], decomposed[i]) > 1e-12 {
			t.Errorf("row %d = %v, want %v", i, decomposed[i], want[i])
		}
	}
}

var roundTripNames = []Name{DB1, DB2, DB4, DB10, DB12, DB20}

func TestDecomposeRoundTrip(t *testing.T) {
	for _, reflect := range []bool{false, true} {
		for _, name := range roundTripNames {
			t.Run(fmt.Sprintf("%v/reflect=%v", name, reflect), func(t *testing.T) {
				w := Get(name)
				for seed := range uint64(10) {
					signal := makeTestSignal(seed)
					decomposed := Decompose(w, signal, reflect)
					recomposed, err := Recompose(w, decomposed, reflect)
					if err != nil {
						t.Fatalf("seed %d: Recompose: %v", seed, err)
					}
					if len(recomposed) != len(signal) {
						t.Fatalf("seed %d: len = %d, want %d", seed, len(recomposed), len(signal))
					}
					if e := relativeError(signal, recomposed); e > 1e-10 {
						t.Errorf("seed %d: relative error = %g", seed, e)
					}
				}
			})
		}
	}
}

// Every family survives a worst-case signal built from its own filters.
func TestDecomposeWorstCase(t *testing.T) {
	for _, name := range Names() {
		t.Run(name.String(), func(t *testing.T) {
			w := Get(name)
			signal := make([]float64, 1024)
			taps := w.Taps()
			for i := range taps {
				for j, v := range w.Decompose.Low {
					signal[350+i+j] += v
				}
				for j, v := range w.Decompose.High {
					signal[700+i+j] += v
				}
			}
			lo, hi := signal[0], signal[0]
			for _, v := range signal {
				lo = min(lo, v)
				hi = max(hi, v)
			}
			for i := range signal {
				signal[i] = (signal[i] - lo) * 1023 / (hi - lo)
			}

			decomposed := Decompose(w, signal, true)
			recomposed, err := Recompose(w, decomposed, true)
			if err != nil {
				t.Fatalf("Recompose: %v", err)
			}
			if len(recomposed) != len(signal) {
				t.Fatalf("len = %d, want %d", len(recomposed), len(signal))
			}
			if e := relativeError(signal, recomposed); e > 1e-10 {
				t.Errorf("relative error = %g", e)
			}
		})
	}
}

func TestDecomposeRowLengths(t *testing.T) {
	w := Get(DB20)
	decomposed := Decompose(w, makeTestSignal(1), false)
	want := []int{100, 100, 162, 285, 531}
	got := decomposed.Lengths()
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Lengths() = %v, want %v", got, want)
	}
}

func TestDecomposeLevels(t *testing.T) {
	w := Get(DB4)
	signal := makeTestSignal(7)
	maxLevel := w.MaximumLevel(len(signal))

	tests := []struct {
		levels   int
		wantRows int
	}{
		{levels: -1, wantRows: maxLevel + 1},
		{levels: 0, wantRows: 1},
		{levels: 3, wantRows: 4},
		{levels: maxLevel, wantRows: maxLevel + 1},
		{levels: maxLevel + 50, wantRows: maxLevel + 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.levels), func(t *testing.T) {
			decomposed := DecomposeLevels(w, signal, false, tt.levels)
			if len(decomposed) != tt.wantRows {
				t.Fatalf("got %d rows, want %d", len(decomposed), tt.wantRows)
			}
			if tt.wantRows < 2 {
				if relativeError(signal, decomposed[0]) != 0 {
					t.Errorf("zero levels should return the signal unchanged")
				}
				return
			}
			recomposed, err := Recompose(w, decomposed, false)
			if err != nil {
				t.Fatalf("Recompose: %v", err)
			}
			if e := relativeError(signal, recomposed); e > 1e-10 {
				t.Errorf("relative error = %g", e)
			}
		})
	}
}

func TestDecomposeDoesNotModifySignal(t *testing.T) {
	signal := makeTestSignal(3)
	before := append([]float64(nil), signal...)
	Decompose(Get(DB8), signal, true)
	if relativeError(before, signal) != 0 {
		t.Errorf("Decompose modified its input")
	}
}

func TestRecomposeErrors(t *testing.T) {
	tests := []struct {
		name       string
		wavelet    Name
		decomposed Decomposed
		want       error
	}{
		{name: "nil", wavelet: DB1, decomposed: nil, want: ErrTooFewRows},
		{name: "single row", wavelet: DB1, decomposed: Decomposed{{1, 2, 3}}, want: ErrTooFewRows},
		{name: "length mismatch", wavelet: DB1, decomposed: Decomposed{{1, 2}, {1, 2, 3}}, want: ErrRowLength},
		{name: "detail shorter than filter", wavelet: DB20, decomposed: Decomposed{{1}, {1}}, want: ErrTrimWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Recompose(Get(tt.wavelet), tt.decomposed, false)
			if !errors.Is(err, tt.want) {
				t.Errorf("Recompose() error = %v, want %v", err, tt.want)
			}
			if got != nil {
				t.Errorf("Recompose() returned %d samples alongside an error", len(got))
			}
		})
	}
}

func TestRecomposeLengthOddSignal(t *testing.T) {
	signal := []float64{3, -1, 4, 1, -5}
	w := Get(DB1)
	for _, reflect := range []bool{false, true} {
		decomposed := Decompose(w, signal, reflect)
		plain, err := Recompose(w, decomposed, reflect)
		if err != nil {
			t.Fatalf("reflect=%v: Recompose: %v", reflect, err)
		}
		if len(plain) != len(signal)+1 {
			t.Errorf("reflect=%v: Recompose len = %d, want %d", reflect, len(plain), len(signal)+1)
		}

		trimmed, err := RecomposeLength(w, decomposed, reflect, len(signal))
		if err != nil {
			t.Fatalf("reflect=%v: RecomposeLength: %v", reflect, err)
		}
		if e := relativeError(signal, trimmed); e > 1e-12 {
			t.Errorf("reflect=%v: relative error = %g (%v)", reflect, e, trimmed)
		}
	}

	if _, err := RecomposeLength(w, Decompose(w, signal, false), false, 100); !errors.Is(err, ErrTrimWindow) {
		t.Errorf("RecomposeLength past the end: error = %v, want ErrTrimWindow", err)
	}
}

func TestDecomposedClone(t *testing.T) {
	d := Decomposed{{1, 2}, {3, 4}}
	c := d.Clone()
	c[0][0] = 99
	if d[0][0] != 1 {
		t.Errorf("Clone shares storage with the original")
	}
}
