// SPDX-License-Identifier: EPL-2.0

// Package pcm is a minimal uncompressed PCM container parser.
//
// It exists as the last entry of the decode chain: when no full decoder
// is available (or all of them reject the data), raw 16-bit captures
// must still render. The parser scans the chunk list itself instead of
// delegating to a library so that its failure modes stay exact:
//
//   - a buffer without the RIFF magic fails with ErrNotRIFF
//   - a buffer missing its fmt or data chunk fails with ErrMissingChunk
//   - anything but format tag 1 at 16 bits fails with ErrOnlyPCM16
//
// Only the first channel is extracted. Compressed formats never reach a
// successful parse here; they are the job of the decoders earlier in
// the chain.
package pcm
