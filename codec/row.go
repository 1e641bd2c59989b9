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
	"bufio"
	"fmt"
	"io"
)

// Reader is the input DecodeRow reads from. Multibyte runs need to peek one
// byte ahead, hence UnreadByte. *bufio.Reader and *bytes.Reader implement it.
type Reader interface {
	io.Reader
	io.ByteScanner
}

// asReader returns r itself if it already implements Reader, and a buffered
// wrapper otherwise. The wrapper may read past the end of the stream.
func asReader(r io.Reader) Reader {
	if br, ok := r.(Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// AppendRow appends the encoded payload of row to dst. Coefficients are
// truncated to integers: anything that truncates to zero joins a zero run.
func AppendRow(dst []byte, row []float64, multibyte bool) []byte {
	maxRun := singleByteMaxRun
	if multibyte {
		maxRun = multibyteMaxRun
	}

	run := 0
	for _, value := range row {
		if int64(value) == 0 {
			run++
			if run == maxRun {
				dst = appendRun(dst, run)
				run = 0
			}
			continue
		}

		if run > 0 {
			dst = appendRun(dst, run)
			run = 0
		}
		dst = AppendValue(dst, int64(value))
	}

	if run > 0 {
		dst = appendRun(dst, run)
	}
	return dst
}

// appendRun appends a run token. Runs above 127 only occur with multibyte
// runs enabled. A saturated multibyte run comes out as 0xFF 0xFF.
func appendRun(dst []byte, count int) []byte {
	if count <= singleByteMaxRun {
		return append(dst, runFlag|byte(count))
	}
	return append(dst, runFlag|byte(count/128), runFlag|byte(count%128))
}

// EncodeRow writes the encoded payload of row to w. See AppendRow.
func EncodeRow(w io.Writer, row []float64, multibyte bool) error {
	_, err := w.Write(AppendRow(nil, row, multibyte))
	return err
}

// readRun returns the length of the run whose first byte has been read.
//
// With multibyte runs a one byte run can be followed by a value token, so
// the second byte is only taken when it is a run byte too. A one byte run
// that exactly fills the rest of the row is final and the next byte is left
// alone, since it belongs to the next row.
func readRun(first byte, r Reader, multibyte bool, needed int) (int, error) {
	count := int(first &^ runFlag)
	if !multibyte || count == needed {
		return count, nil
	}

	second, err := r.ReadByte()
	if err == io.EOF {
		return count, nil
	}
	if err != nil {
		return 0, err
	}
	if second&runFlag == 0 {
		if err := r.UnreadByte(); err != nil {
			return 0, err
		}
		return count, nil
	}
	return count*128 + int(second&^runFlag), nil
}

// DecodeRow reads one row payload of length coefficients from r. A run that
// would extend past the end of the row is an error; on any error the partial
// row is discarded.
func DecodeRow(r Reader, length int, multibyte bool) ([]float64, error) {
	if length < 0 || length > MaxRowLength {
		return nil, fmt.Errorf("%w: %d coefficients", ErrRowTooLong, length)
	}

	row := make([]float64, length)
	decoded := 0
	for decoded < length {
		entry, err := r.ReadByte()
		if err != nil {
			return nil, unexpected(err)
		}

		if entry&runFlag == 0 {
			value, err := ReadValue(entry, r)
			if err != nil {
				return nil, err
			}
			row[decoded] = float64(value)
			decoded++
			continue
		}

		count, err := readRun(entry, r, multibyte, length-decoded)
		if err != nil {
			return nil, unexpected(err)
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: at coefficient %d", ErrEmptyRun, decoded)
		}
		if decoded+count > length {
			return nil, fmt.Errorf("%w: %d zeros at coefficient %d of %d",
				ErrRunOverflow, count, decoded, length)
		}
		// row is zero initialized.
		decoded += count
	}
	return row, nil
}
