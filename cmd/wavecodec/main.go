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


// Command wavecodec compresses numeric signals with a Daubechies wavelet
// transform and the coefficient codec.
//
// Usage:
//
//	wavecodec compress -in signal.txt -out signal.wvc -wavelet db4 -keep 0.1
//	wavecodec decompress -in signal.wvc -out restored.txt
//	wavecodec inspect -in signal.wvc
//	wavecodec wavelets
//
// Signals are text: numbers separated by whitespace or commas. "-" stands for
// standard input or output and is the default for -in and -out.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

const usage = `Usage: wavecodec <command> [flags]

Commands:
  compress     compress a text signal into a container
  decompress   restore a text signal from a container
  inspect      describe a container
  wavelets     list the available wavelets

Run "wavecodec <command> -h" for the flags of a command.
`

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes one command. It is main without the process exits.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errors.New("no command given")
	}

	env := &environment{stdin: stdin, stdout: stdout, stderr: stderr}
	switch args[0] {
	case "compress":
		return env.compress(args[1:])
	case "decompress":
		return env.decompress(args[1:])
	case "inspect":
		return env.inspect(args[1:])
	case "wavelets":
		return env.wavelets(args[1:])
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
