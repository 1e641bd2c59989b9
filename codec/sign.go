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


package codec

import "fmt"

func checkWidth(width uint) {
	if width < 1 || width > 8 {
		panic(fmt.Sprintf("codec: sign bit width %d out of range [1, 8]", width))
	}
}

// MoveSignBit packs value into its low width bits: bit 7 of the two's
// complement byte is copied to bit width-1 and bits 0..width-2 are kept. The
// result is only reversible for values that fit in width bits. It panics if
// width is not in [1, 8].
func MoveSignBit(value int8, width uint) uint8 {
	checkWidth(width)
	mask := uint8(1)<<(width-1) - 1
	signBit := (uint8(value) & 0x80) >> (8 - width)
	return signBit | (uint8(value) & mask)
}

// ExtendSignBit is the inverse of MoveSignBit. Bits above width are ignored.
func ExtendSignBit(value uint8, width uint) int8 {
	checkWidth(width)
	result := int(value) & (1<<width - 1)
	signExtend := 1 << (width - 1)
	return int8((result ^ signExtend) - signExtend)
}
