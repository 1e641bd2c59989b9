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
	"os"
	"strconv"
)

// Dot returns the inner product of two equal-length slices.
//
// It is initialized to BaseDot and may be replaced by an architecture-specific
// kernel in init() of z_conv_*.go files.
var Dot func(a, b []float64) float64

// currentKernel names the implementation behind Dot.
var currentKernel string

func init() {
	Dot = BaseDot
	currentKernel = "gonum"
}

// CurrentKernel returns the name of the inner product kernel in use, either
// "gonum" or "fma".
func CurrentKernel() string {
	return currentKernel
}

// NoFMAEnv reports whether the WAVECODEC_NO_FMA environment variable is set.
// When set, the portable kernel is kept regardless of CPU capabilities.
func NoFMAEnv() bool {
	val := os.Getenv("WAVECODEC_NO_FMA")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
