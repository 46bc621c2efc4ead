// SPDX-License-Identifier: EPL-2.0

package primview_test

import (
	"bytes"
	"fmt"

	"github.com/capturelab/primview"
	"github.com/capturelab/primview/internal/audiotest"
	"github.com/capturelab/primview/waveform"
)

// Example_basicUsage demonstrates the most common use case: decoding
// an audio file and rendering its min/max envelope.
func Example_basicUsage() {
	// Create a simple WAV file in memory for demonstration
	data := audiotest.WAVBytes(8000, 1, []int16{100, -100, 200, -200, 300, -300})

	set, err := primview.Decode(data)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	cols := waveform.Columns(set.Samples, 3)
	fmt.Printf("Decoded %d samples at %d Hz into %d columns\n",
		len(set.Samples), set.SampleRate, len(cols))
	// Output: Decoded 6 samples at 8000 Hz into 3 columns
}

// Example_waveformPNG renders a PNG envelope directly from raw bytes.
func Example_waveformPNG() {
	samples := make([]int16, 8000)
	for i := range samples {
		samples[i] = int16((i % 200) * 100)
	}
	data := audiotest.WAVBytes(8000, 1, samples)

	var buf bytes.Buffer
	if err := primview.WaveformPNG(&buf, data, 320, 48); err != nil {
		fmt.Printf("render error: %v\n", err)
		return
	}

	fmt.Printf("PNG written: %v\n", buf.Len() > 0)
	// Output: PNG written: true
}
