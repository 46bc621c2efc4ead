// SPDX-License-Identifier: EPL-2.0

package audio

import "bytes"

// Strategy is one named entry in a decode chain.
type Strategy struct {
	Name string
	Dec  Decoder
}

// Chain tries an ordered list of decode strategies until one succeeds.
//
// The usual arrangement puts full decoders first (they can handle
// compressed data and PCM variants the minimal parser rejects) and the
// minimal uncompressed PCM parser last as the fallback. Each strategy
// gets its own reader over the shared byte slice, so a strategy that
// consumes its input cannot starve the ones after it.
type Chain struct {
	strategies []Strategy
}

// NewChain builds a chain that tries strategies in the given order.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// Decode runs the chain over data and collects the first channel of the
// first strategy that succeeds. Failures of earlier strategies are
// absorbed; if every strategy fails, the error of the last one (the
// fallback) is returned.
func (c *Chain) Decode(data []byte) (*SampleSet, error) {
	var lastErr error

	for _, st := range c.strategies {
		src, err := st.Dec.Decode(bytes.NewReader(data))
		if err != nil {
			lastErr = err
			continue
		}

		set, err := FirstChannel(src)
		_ = src.Close()
		if err != nil {
			lastErr = err
			continue
		}

		return set, nil
	}

	if lastErr == nil {
		return nil, ErrNoDecoder
	}
	return nil, lastErr
}
