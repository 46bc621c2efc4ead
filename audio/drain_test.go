// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"

	"github.com/capturelab/primview/internal/audiotest"
)

func TestFirstChannel_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(16000, 1, 1000, 100)
	set, err := FirstChannel(src)
	if err != nil {
		t.Fatalf("FirstChannel() error = %v", err)
	}

	if len(set.Samples) != 1000 {
		t.Errorf("got %d samples, want 1000", len(set.Samples))
	}
	if set.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", set.SampleRate)
	}
}

func TestFirstChannel_PicksChannelZero(t *testing.T) {
	t.Parallel()

	for _, channels := range []int{2, 4, 5} {
		src := audiotest.NewChannelTagSource(8000, channels, 300)
		set, err := FirstChannel(src)
		if err != nil {
			t.Fatalf("channels=%d: FirstChannel() error = %v", channels, err)
		}

		if len(set.Samples) != 300 {
			t.Errorf("channels=%d: got %d samples, want 300", channels, len(set.Samples))
		}

		want := float32(1) / float32(channels+1)
		for i, s := range set.Samples {
			if math.Abs(float64(s-want)) > 1e-6 {
				t.Fatalf("channels=%d: sample %d = %v, want channel-0 tag %v", channels, i, s, want)
			}
		}
	}
}

func TestFirstChannel_EmptySource(t *testing.T) {
	t.Parallel()

	set, err := FirstChannel(audiotest.NewSilentSource(44100, 2, 0))
	if err != nil {
		t.Fatalf("FirstChannel() error = %v", err)
	}
	if len(set.Samples) != 0 {
		t.Errorf("got %d samples, want 0", len(set.Samples))
	}
}

func TestSampleSet_Duration(t *testing.T) {
	t.Parallel()

	set := &SampleSet{Samples: make([]float32, 8000), SampleRate: 16000}
	if got := set.Duration().Seconds(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Duration = %vs, want 0.5s", got)
	}

	var nilSet *SampleSet
	if nilSet.Duration() != 0 {
		t.Error("nil SampleSet Duration should be 0")
	}
	if (&SampleSet{SampleRate: 0}).Duration() != 0 {
		t.Error("zero-rate SampleSet Duration should be 0")
	}
}
