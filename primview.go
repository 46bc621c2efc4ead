// SPDX-License-Identifier: EPL-2.0

package primview

import (
	"io"

	"github.com/capturelab/primview/audio"
	"github.com/capturelab/primview/formats/aiff"
	"github.com/capturelab/primview/formats/mp3"
	"github.com/capturelab/primview/formats/pcm"
	"github.com/capturelab/primview/formats/vorbis"
	"github.com/capturelab/primview/formats/wav"
	"github.com/capturelab/primview/waveform"
)

// DefaultChain builds the standard decode chain: full library decoders
// first, the minimal uncompressed PCM parser as the final fallback.
func DefaultChain() *audio.Chain {
	return audio.NewChain(
		audio.Strategy{Name: "wav", Dec: wav.Decoder{}},
		audio.Strategy{Name: "aiff", Dec: aiff.Decoder{}},
		audio.Strategy{Name: "mp3", Dec: mp3.Decoder{}},
		audio.Strategy{Name: "vorbis", Dec: vorbis.Decoder{}},
		audio.Strategy{Name: "pcm", Dec: pcm.Decoder{}},
	)
}

// Decode runs the default chain over raw audio bytes and returns the
// decoded first channel.
func Decode(data []byte) (*audio.SampleSet, error) {
	return DefaultChain().Decode(data)
}

// WaveformPNG decodes raw audio bytes and writes their min/max
// envelope as a width x height PNG.
func WaveformPNG(w io.Writer, data []byte, width, height int) error {
	set, err := Decode(data)
	if err != nil {
		return err
	}
	return waveform.EncodePNG(w, set.Samples, width, height)
}
