// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// SampleSet holds the fully decoded first channel of an audio resource.
// Samples are normalized float32 values in [-1, 1]. A SampleSet is
// immutable after creation and safe to share between goroutines.
type SampleSet struct {
	Samples    []float32
	SampleRate int
}

// Duration of the decoded channel.
func (s *SampleSet) Duration() time.Duration {
	if s == nil || s.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(s.Samples)) / float64(s.SampleRate) * float64(time.Second))
}

// Source is a streaming PCM reader produced by a format decoder.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns the number of float32 values written. When n == 0 with
	// err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}
