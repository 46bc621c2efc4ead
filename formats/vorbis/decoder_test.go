// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"testing"

	"github.com/capturelab/primview/audio"
)

func TestDecoder_NotOgg(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an ogg stream at all")))
	if err == nil {
		t.Fatal("Decode() of garbage should fail")
	}
	if !errors.Is(err, audio.ErrFormat) {
		t.Errorf("Decode() error = %v, want audio.ErrFormat kind", err)
	}
}

// fakeOgg feeds canned interleaved float32 samples.
type fakeOgg struct {
	data []float32
	pos  int
}

func (r *fakeOgg) SampleRate() int { return 48000 }
func (r *fakeOgg) Channels() int   { return 2 }

func (r *fakeOgg) Read(p []float32) (int, error) {
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func TestSource_FrameAlignment(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeOgg{data: []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}},
		sampleRate: 48000,
		channels:   2,
	}

	// An odd destination length must be trimmed to whole frames.
	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() err = %v", err)
	}
	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4 (whole frames only)", n)
	}
	for i, want := range []float32{0.1, 0.2, 0.3, 0.4} {
		if dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}
