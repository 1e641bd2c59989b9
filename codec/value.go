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

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	runFlag       = 0x80
	extensionFlag = 0x40
	widthMask     = 0x3F

	packedWidth = 6
	packedMin   = -1 << (packedWidth - 1)
	packedMax   = 1<<(packedWidth-1) - 1
)

// AppendValue appends the value token for value to dst, using the smallest
// representation that holds it exactly.
func AppendValue(dst []byte, value int64) []byte {
	switch {
	case value >= packedMin && value <= packedMax:
		return append(dst, MoveSignBit(int8(value), packedWidth))
	case value >= math.MinInt8 && value <= math.MaxInt8:
		return append(dst, extensionFlag|1, byte(int8(value)))
	case value >= math.MinInt16 && value <= math.MaxInt16:
		dst = append(dst, extensionFlag|2)
		return binary.LittleEndian.AppendUint16(dst, uint16(int16(value)))
	case value >= math.MinInt32 && value <= math.MaxInt32:
		dst = append(dst, extensionFlag|4)
		return binary.LittleEndian.AppendUint32(dst, uint32(int32(value)))
	default:
		dst = append(dst, extensionFlag|8)
		return binary.LittleEndian.AppendUint64(dst, uint64(value))
	}
}

// WriteValue writes the value token for value to w.
func WriteValue(w io.Writer, value int64) error {
	var buf [9]byte
	_, err := w.Write(AppendValue(buf[:0], value))
	return err
}

// ReadValue decodes a value token whose first byte has already been read.
// Any extra bytes the token declares are read from r.
func ReadValue(first byte, r io.Reader) (int64, error) {
	if first&extensionFlag == 0 {
		return int64(ExtendSignBit(first, packedWidth)), nil
	}

	width := int(first & widthMask)
	switch width {
	case 1, 2, 4, 8:
	default:
		return 0, fmt.Errorf("%w: %d bytes (control byte %#02x)", ErrUnsupportedWidth, width, first)
	}

	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:width]); err != nil {
		return 0, unexpected(err)
	}
	switch width {
	case 1:
		return int64(int8(buf[0])), nil
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(buf[:]))), nil
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(buf[:]))), nil
	default:
		return int64(binary.LittleEndian.Uint64(buf[:])), nil
	}
}
