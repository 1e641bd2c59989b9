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
	"fmt"
	"strconv"

	"golang.org/x/tools/imports"
)

// generate returns the formatted source of the filter table for db1 through
// dbMax.
func generate(filename, pkg string, dbMax int) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by wavegen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "\npackage %s\n\n", pkg)
	fmt.Fprintf(&buf, "// daubechies holds the decomposition low-pass filter of db1 through db%d,\n", dbMax)
	fmt.Fprintf(&buf, "// indexed by N-1. Each filter has 2N taps and sums to sqrt(2).\n")
	fmt.Fprintf(&buf, "var daubechies = [...][]float64{\n")

	for n := 1; n <= dbMax; n++ {
		taps, err := lowPass(n)
		if err != nil {
			return nil, fmt.Errorf("db%d: %w", n, err)
		}
		fmt.Fprintf(&buf, "\t// db%d\n\t{\n", n)
		for _, v := range taps {
			fmt.Fprintf(&buf, "\t\t%s,\n", strconv.FormatFloat(v, 'g', -1, 64))
		}
		fmt.Fprintf(&buf, "\t},\n")
	}
	fmt.Fprintf(&buf, "}\n")

	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return formatted, nil
}
