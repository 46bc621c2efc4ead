// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core decoding primitives of the viewer.
//
// The building blocks are:
//   - Source, the streaming PCM interface all format decoders produce
//   - Chain, an ordered list of decode strategies tried until one succeeds
//   - FirstChannel, which drains a Source into an immutable SampleSet
//   - Loader, a memoizing single-flight cache keyed by source identifier
//
// # Sample Format
//
// Samples are float32 values in [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 / -1.0 represent maximum amplitude
//
// # Decode Chain
//
// The chain realises a capability-probe-with-fallback: full library
// decoders run first and may handle compressed or high-resolution data,
// the minimal PCM parser runs last so plain captures still decode when
// nothing else can.
//
//	chain := audio.NewChain(
//	    audio.Strategy{Name: "wav", Dec: wav.Decoder{}},
//	    audio.Strategy{Name: "pcm", Dec: pcm.Decoder{}},
//	)
//	set, err := chain.Decode(raw)
//
// # Error Kinds
//
// Decode failures fall into three kinds matched with errors.Is:
// ErrFormat (the container itself cannot be parsed), ErrUnsupportedFormat
// (a recognized container with an encoding nothing can decode) and
// ErrTransport (the bytes could not be retrieved at all). All of them
// are per-resource: the caller renders an unavailable state and moves on.
package audio
