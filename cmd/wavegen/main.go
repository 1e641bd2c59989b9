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


// Command wavegen computes the Daubechies filter table used by package
// wavelet.
//
// Usage:
//
//	wavegen -output coefficients_gen.go -max 20
//
// Or via go:generate, from package wavelet:
//
//	//go:generate go run ../cmd/wavegen -output coefficients_gen.go -max 20
//
// Each dbN low-pass filter comes from a spectral factorization: the roots of
// the Daubechies polynomial are located with a double precision eigenvalue
// solve, polished with Newton steps in 256 bit floating point, and the
// minimum phase half is expanded back into filter taps.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "coefficients_gen.go", "Output Go file")
	maxOrder   = flag.Int("max", 20, fmt.Sprintf("Highest order N to generate, in [1, %d]", maxSupportedOrder))
	pkgName    = flag.String("pkg", "wavelet", "Package name of the generated file")
)

func main() {
	flag.Parse()

	if *maxOrder < 1 || *maxOrder > maxSupportedOrder {
		fmt.Fprintf(os.Stderr, "Error: -max must be in [1, %d], got %d\n\n", maxSupportedOrder, *maxOrder)
		flag.Usage()
		os.Exit(1)
	}

	src, err := generate(*outputFile, *pkgName, *maxOrder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated db1 through db%d in %s\n", *maxOrder, *outputFile)
}
