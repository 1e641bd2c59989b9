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

package conv

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// BaseDot computes the inner product with gonum, which uses its own assembly
// kernels where available.
func BaseDot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// FMADot computes the inner product with fused multiply-add over four
// independent accumulators. It is only fast on CPUs with hardware FMA; see
// the z_conv_*.go files.
func FMADot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("conv: slice lengths do not match")
	}

	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= len(a); i += 4 {
		s0 = math.FMA(a[i], b[i], s0)
		s1 = math.FMA(a[i+1], b[i+1], s1)
		s2 = math.FMA(a[i+2], b[i+2], s2)
		s3 = math.FMA(a[i+3], b[i+3], s3)
	}
	for ; i < len(a); i++ {
		s0 = math.FMA(a[i], b[i], s0)
	}
	return (s0 + s1) + (s2 + s3)
}
