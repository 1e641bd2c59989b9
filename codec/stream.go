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

	"github.com/ajroetker/go-wavecodec/wavelet"
)

// AppendHeader appends the stream header describing d to dst: the row count
// and the length of every row.
func AppendHeader(dst []byte, d wavelet.Decomposed) ([]byte, error) {
	if len(d) > MaxRows {
		return nil, fmt.Errorf("%w: %d rows, maximum is %d", ErrTooManyRows, len(d), MaxRows)
	}
	dst = append(dst, byte(len(d)))
	for i, row := range d {
		if len(row) > MaxRowLength {
			return nil, fmt.Errorf("%w: row %d has %d coefficients, maximum is %d",
				ErrRowTooLong, i, len(row), MaxRowLength)
		}
		dst = binary.LittleEndian.AppendUint16(dst, uint16(len(row)))
	}
	return dst, nil
}

// Append appends the complete encoding of d to dst.
func Append(dst []byte, d wavelet.Decomposed, multibyte bool) ([]byte, error) {
	dst, err := AppendHeader(dst, d)
	if err != nil {
		return nil, err
	}
	for _, row := range d {
		dst = AppendRow(dst, row, multibyte)
	}
	return dst, nil
}

// Encode writes the complete encoding of d to w. Nothing is written if d
// cannot be encoded.
func Encode(w io.Writer, d wavelet.Decomposed, multibyte bool) error {
	buf, err := Append(nil, d, multibyte)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// ReadHeader reads a stream header and returns the length of every row.
func ReadHeader(r io.Reader) ([]int, error) {
	var count [1]byte
	if _, err := io.ReadFull(r, count[:]); err != nil {
		return nil, unexpected(err)
	}

	raw := make([]byte, 2*int(count[0]))
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, unexpected(err)
	}
	lengths := make([]int, count[0])
	for i := range lengths {
		lengths[i] = int(binary.LittleEndian.Uint16(raw[2*i:]))
	}
	return lengths, nil
}

// Decode reads a stream written by Encode. multibyte must match the value
// used to encode. If r does not implement Reader it is wrapped in a
// bufio.Reader, which may consume bytes past the end of the stream.
//
// On error no rows are returned.
func Decode(r io.Reader, multibyte bool) (wavelet.Decomposed, error) {
	br := asReader(r)
	lengths, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}

	d := make(wavelet.Decomposed, len(lengths))
	for i, length := range lengths {
		row, err := DecodeRow(br, length, multibyte)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		d[i] = row
	}
	return d, nil
}
