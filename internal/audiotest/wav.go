// SPDX-License-Identifier: EPL-2.0

package audiotest

import "encoding/binary"

// WAVBytes builds an in-memory 16-bit PCM WAV file with interleaved
// samples. Fixture helper only; it writes the canonical 44-byte layout.
func WAVBytes(sampleRate, channels int, samples []int16) []byte {
	dataSize := uint32(len(samples) * 2)
	buf := make([]byte, 44+len(samples)*2)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], 36+dataSize)
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // integer PCM
	binary.LittleEndian.PutUint16(buf[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	byteRate := uint32(sampleRate) * uint32(channels) * 2
	binary.LittleEndian.PutUint32(buf[28:32], byteRate)
	binary.LittleEndian.PutUint16(buf[32:34], uint16(channels)*2)
	binary.LittleEndian.PutUint16(buf[34:36], 16)

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], dataSize)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[44+i*2:46+i*2], uint16(s))
	}

	return buf
}

// Chunk appends one [id][little-endian size][payload] chunk to b.
// Used to assemble containers with unusual chunk lists.
func Chunk(b []byte, id string, payload []byte) []byte {
	b = append(b, id[:4]...)
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(payload)))
	b = append(b, size[:]...)
	return append(b, payload...)
}

// RIFFHeader returns the 12-byte master header for hand-built containers.
func RIFFHeader() []byte {
	b := make([]byte, 12)
	copy(b[0:4], "RIFF")
	binary.LittleEndian.PutUint32(b[4:8], 4)
	copy(b[8:12], "WAVE")
	return b
}

// FmtChunkPayload builds a 16-byte fmt chunk payload.
func FmtChunkPayload(formatTag, channels uint16, sampleRate uint32, bitsPerSample uint16) []byte {
	p := make([]byte, 16)
	binary.LittleEndian.PutUint16(p[0:2], formatTag)
	binary.LittleEndian.PutUint16(p[2:4], channels)
	binary.LittleEndian.PutUint32(p[4:8], sampleRate)
	byteRate := sampleRate * uint32(channels) * uint32(bitsPerSample) / 8
	binary.LittleEndian.PutUint32(p[8:12], byteRate)
	binary.LittleEndian.PutUint16(p[12:14], channels*uint16(bitsPerSample)/8)
	binary.LittleEndian.PutUint16(p[14:16], bitsPerSample)
	return p
}

// Int16Bytes encodes samples as little-endian int16 data payload.
func Int16Bytes(samples []int16) []byte {
	p := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(p[i*2:i*2+2], uint16(s))
	}
	return p
}
