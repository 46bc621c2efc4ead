// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/capturelab/primview/internal/audiotest"
)

type stubDecoder struct {
	src Source
	err error
}

func (d stubDecoder) Decode(io.Reader) (Source, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.src, nil
}

func TestChain_FirstSuccessWins(t *testing.T) {
	t.Parallel()

	chain := NewChain(
		Strategy{Name: "a", Dec: stubDecoder{src: audiotest.NewSineSource(44100, 1, 64, 440)}},
		Strategy{Name: "b", Dec: stubDecoder{err: errors.New("never reached")}},
	)

	set, err := chain.Decode([]byte("payload"))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(set.Samples) != 64 {
		t.Errorf("got %d samples, want 64", len(set.Samples))
	}
	if set.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", set.SampleRate)
	}
}

func TestChain_FallsThroughFailures(t *testing.T) {
	t.Parallel()

	chain := NewChain(
		Strategy{Name: "broken", Dec: stubDecoder{err: errors.New("cannot decode")}},
		Strategy{Name: "fallback", Dec: stubDecoder{src: audiotest.NewSilentSource(16000, 1, 10)}},
	)

	set, err := chain.Decode(nil)
	if err != nil {
		t.Fatalf("Decode() error = %v, want fallback success", err)
	}
	if len(set.Samples) != 10 {
		t.Errorf("got %d samples, want 10", len(set.Samples))
	}
}

func TestChain_PropagatesLastError(t *testing.T) {
	t.Parallel()

	first := errors.New("first failure")
	last := errors.New("fallback failure")

	chain := NewChain(
		Strategy{Name: "a", Dec: stubDecoder{err: first}},
		Strategy{Name: "b", Dec: stubDecoder{err: last}},
	)

	_, err := chain.Decode(nil)
	if !errors.Is(err, last) {
		t.Errorf("Decode() error = %v, want the last strategy's error", err)
	}
	if errors.Is(err, first) {
		t.Errorf("Decode() error = %v, earlier failures must be absorbed", err)
	}
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	_, err := NewChain().Decode([]byte{1, 2, 3})
	if !errors.Is(err, ErrNoDecoder) {
		t.Errorf("Decode() error = %v, want ErrNoDecoder", err)
	}
}

func TestChain_EachStrategyGetsFreshReader(t *testing.T) {
	t.Parallel()

	// A strategy that drains its reader before failing must not affect
	// the strategy after it.
	drainThenFail := decoderFunc(func(r io.Reader) (Source, error) {
		_, _ = io.ReadAll(r)
		return nil, errors.New("consumed and failed")
	})
	wantLen := decoderFunc(func(r io.Reader) (Source, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if len(data) != 5 {
			return nil, errors.New("reader was not fresh")
		}
		return audiotest.NewSilentSource(8000, 1, len(data)), nil
	})

	chain := NewChain(
		Strategy{Name: "drainer", Dec: drainThenFail},
		Strategy{Name: "checker", Dec: wantLen},
	)

	set, err := chain.Decode([]byte{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(set.Samples) != 5 {
		t.Errorf("got %d samples, want 5", len(set.Samples))
	}
}

type decoderFunc func(io.Reader) (Source, error)

func (f decoderFunc) Decode(r io.Reader) (Source, error) { return f(r) }
