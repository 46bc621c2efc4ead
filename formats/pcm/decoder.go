// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/capturelab/primview/audio"
)

// header is the transient parse state of one container. Offsets point
// into the original buffer; chunk payloads are never copied.
type header struct {
	formatTag     uint16
	channels      int
	sampleRate    int
	bitsPerSample int
	dataOffset    int
	dataSize      int
}

// parse scans the chunk list of a RIFF buffer and locates the single
// fmt and data chunks. Layout: 12-byte master header, then sequential
// [4-byte id][4-byte little-endian size][payload] chunks.
func parse(data []byte) (header, error) {
	var h header

	if len(data) < 12 || string(data[0:4]) != "RIFF" {
		return h, ErrNotRIFF
	}

	var haveFmt, haveData bool
	off := 12
	for off+8 <= len(data) && !(haveFmt && haveData) {
		id := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		body := off + 8

		switch id {
		case "fmt ":
			if haveFmt {
				break
			}
			if size < 16 || body+16 > len(data) {
				return h, ErrMissingChunk
			}
			h.formatTag = binary.LittleEndian.Uint16(data[body : body+2])
			h.channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			h.sampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			h.bitsPerSample = int(binary.LittleEndian.Uint16(data[body+14 : body+16]))
			haveFmt = true
		case "data":
			if haveData {
				break
			}
			h.dataOffset = body
			h.dataSize = size
			// A declared size past the end of the buffer shows up in
			// truncated captures; clamp rather than reject.
			if h.dataOffset+h.dataSize > len(data) {
				h.dataSize = len(data) - h.dataOffset
			}
			haveData = true
		}

		off = body + size
	}

	if !haveFmt || !haveData {
		return h, ErrMissingChunk
	}
	return h, nil
}

// source streams the first channel of the located data chunk.
type source struct {
	data       []byte // interleaved int16 frames, dataOffset already applied
	channels   int
	sampleRate int
	frames     int
	pos        int // next frame index
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return 1 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst), s.frames-s.pos)
	for i := range n {
		off := (s.pos + i) * s.channels * 2
		v := int16(binary.LittleEndian.Uint16(s.data[off : off+2]))
		dst[i] = float32(v) / 32768.0
	}
	s.pos += n

	if s.pos >= s.frames {
		return n, io.EOF
	}
	return n, nil
}

// Decoder is the minimal uncompressed PCM fallback. It accepts only
// format tag 1 with 16 bits per sample and extracts the first channel.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	h, err := parse(data)
	if err != nil {
		return nil, err
	}

	if h.formatTag != 1 || h.bitsPerSample != 16 {
		return nil, ErrOnlyPCM16
	}
	if h.channels < 1 || h.sampleRate <= 0 {
		return nil, ErrMissingChunk
	}

	return &source{
		data:       data[h.dataOffset : h.dataOffset+h.dataSize],
		channels:   h.channels,
		sampleRate: h.sampleRate,
		frames:     h.dataSize / 2 / h.channels,
	}, nil
}
