// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

const drainBufSize = 4096

// FirstChannel drains src and collects channel 0 into a SampleSet.
//
// Channels beyond the first are discarded rather than mixed; the
// capture rigs store each microphone as its own file.
func FirstChannel(src Source) (*SampleSet, error) {
	channels := src.Channels()
	if channels < 1 {
		channels = 1
	}

	set := &SampleSet{
		Samples:    make([]float32, 0, drainBufSize),
		SampleRate: src.SampleRate(),
	}

	buf := make([]float32, drainBufSize)
	// Absolute index of the next interleaved sample; samples whose
	// index is a multiple of the channel count belong to channel 0.
	// Tracking it across reads keeps the picker correct even when a
	// decoder returns a count that is not frame-aligned.
	idx := 0

	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			if (idx+i)%channels == 0 {
				set.Samples = append(set.Samples, buf[i])
			}
		}
		idx += n

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return set, nil
}
