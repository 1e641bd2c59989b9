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
	"errors"
	"io"
)

const (
	// MaxRows is the largest number of rows a stream can hold.
	MaxRows = 255

	// MaxRowLength is the largest number of coefficients in one row.
	MaxRowLength = 65535

	singleByteMaxRun = 127
	multibyteMaxRun  = 16383 // 2^14 - 1
)

var (
	// ErrTooManyRows is returned when encoding more than MaxRows rows.
	ErrTooManyRows = errors.New("codec: too many rows")

	// ErrRowTooLong is returned when a row holds more than MaxRowLength
	// coefficients.
	ErrRowTooLong = errors.New("codec: row too long")

	// ErrUnsupportedWidth is returned when a control byte declares a value
	// width other than 1, 2, 4 or 8 bytes.
	ErrUnsupportedWidth = errors.New("codec: unsupported value width")

	// ErrRunOverflow is returned when a zero run extends past the end of its
	// row.
	ErrRunOverflow = errors.New("codec: zero run overflows row")

	// ErrEmptyRun is returned for a run token of zero length.
	ErrEmptyRun = errors.New("codec: empty zero run")
)

// unexpected turns a clean end of input in the middle of a stream into
// io.ErrUnexpectedEOF.
func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
