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


package pipeline

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/ajroetker/go-wavecodec/wavelet"
)

const (
	// ContainerVersion is the container layout written by WriteContainer.
	ContainerVersion = 1

	flagReflect   = 1 << 0
	flagMultibyte = 1 << 1
	flagZstd      = 1 << 2
	knownFlags    = flagReflect | flagMultibyte | flagZstd

	// maxPayload bounds what ReadContainer will allocate or inflate.
	maxPayload = 1 << 30
)

var containerMagic = [4]byte{'W', 'V', 'C', '1'}

var (
	// ErrBadMagic is returned when the input is not a container.
	ErrBadMagic = errors.New("pipeline: not a wavecodec container")

	// ErrVersion is returned for a container layout this package cannot
	// read.
	ErrVersion = errors.New("pipeline: unsupported container version")

	// ErrCorrupt is returned for a container whose header is inconsistent.
	ErrCorrupt = errors.New("pipeline: corrupt container")
)

// containerHeader is the fixed size, little-endian prefix of a container.
type containerHeader struct {
	Magic         [4]byte
	Version       uint8
	Wavelet       uint8
	Flags         uint8
	Step          float64
	Threshold     float64
	Length        uint32
	PayloadLength uint32
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, _ := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
		return enc
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, _ := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(maxPayload))
		return dec
	},
}

func compressZstd(data []byte) []byte {
	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)
	return enc.EncodeAll(data, make([]byte, 0, len(data)))
}

func decompressZstd(data []byte) ([]byte, error) {
	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)
	return dec.DecodeAll(data, nil)
}

// WriteContainer writes cs to w as a self-describing container. The codec
// stream is zstd compressed when cs.Zstd is set.
func WriteContainer(w io.Writer, cs *Compressed) error {
	if !cs.Wavelet.Valid() {
		return fmt.Errorf("pipeline: %w: %v", wavelet.ErrUnknownName, cs.Wavelet)
	}
	if cs.Length < 0 || uint64(cs.Length) > math.MaxUint32 {
		return fmt.Errorf("%w: %d samples", ErrSignalTooLong, cs.Length)
	}

	h := containerHeader{
		Magic:     containerMagic,
		Version:   ContainerVersion,
		Wavelet:   uint8(cs.Wavelet),
		Step:      cs.Step,
		Threshold: cs.Threshold,
		Length:    uint32(cs.Length),
	}
	if cs.Reflect {
		h.Flags |= flagReflect
	}
	if cs.MultibyteZeros {
		h.Flags |= flagMultibyte
	}

	payload := cs.Stream
	if cs.Zstd {
		h.Flags |= flagZstd
		payload = compressZstd(payload)
	}
	if len(payload) > maxPayload {
		return fmt.Errorf("%w: payload of %d bytes", ErrSignalTooLong, len(payload))
	}
	h.PayloadLength = uint32(len(payload))

	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// ReadContainer reads a container written by WriteContainer. The returned
// Stream is always the plain codec stream; Zstd reports how it was stored.
func ReadContainer(r io.Reader) (*Compressed, error) {
	var h containerHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrBadMagic
		}
		return nil, err
	}
	if h.Magic != containerMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadMagic, h.Magic[:])
	}
	if h.Version != ContainerVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	name := wavelet.Name(h.Wavelet)
	if !name.Valid() {
		return nil, fmt.Errorf("%w: wavelet %d", ErrCorrupt, h.Wavelet)
	}
	if h.Flags&^knownFlags != 0 {
		return nil, fmt.Errorf("%w: flags %#02x", ErrCorrupt, h.Flags)
	}
	if h.PayloadLength > maxPayload {
		return nil, fmt.Errorf("%w: payload of %d bytes", ErrCorrupt, h.PayloadLength)
	}

	payload := make([]byte, h.PayloadLength)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("pipeline: reading payload: %w", err)
	}

	cs := &Compressed{
		Wavelet:        name,
		Reflect:        h.Flags&flagReflect != 0,
		MultibyteZeros: h.Flags&flagMultibyte != 0,
		Zstd:           h.Flags&flagZstd != 0,
		Step:           h.Step,
		Threshold:      h.Threshold,
		Length:         int(h.Length),
		Stream:         payload,
	}
	if cs.Zstd {
		stream, err := decompressZstd(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrCorrupt, err)
		}
		cs.Stream = stream
	}
	return cs, nil
}
