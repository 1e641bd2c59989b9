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

//go:build amd64

package conv

import "golang.org/x/sys/cpu"

// The compiler lowers math.FMA to VFMADD231SD behind a runtime check, and to
// a slow software routine on CPUs without FMA3. Only switch kernels when the
// instruction is present.
//
// The z_ prefix makes this init() run after the one in dispatch.go.
func init() {
	if NoFMAEnv() {
		return
	}
	if cpu.X86.HasFMA {
		Dot = FMADot
		currentKernel = "fma"
	}
}
