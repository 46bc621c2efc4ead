// SPDX-License-Identifier: EPL-2.0

// Package primview is a local viewer backend for capture datasets of
// 3D meshes, photo previews and room-impulse-response (RIR) recordings.
//
// The module has two halves:
//
//   - A decoding/rendering library: format decoders under formats/, the
//     decode chain and memoizing loader in audio, and the min/max
//     envelope rasterizer in waveform.
//   - A small HTTP viewer (cmd/primview) that scans a dataset directory
//     for mesh.obj captures and serves a JSON index, the raw assets and
//     server-rendered waveform thumbnails to an embedded browser UI.
//
// # Quick Start
//
// Decode and render a waveform with the high-level helpers:
//
//	data, _ := os.ReadFile("rir.wav")
//	set, err := primview.Decode(data)
//	if err != nil {
//	    // render an unavailable state; decode errors are per-file
//	}
//	cols := waveform.Columns(set.Samples, 640)
//
// Or write a PNG directly:
//
//	out, _ := os.Create("rir.png")
//	err := primview.WaveformPNG(out, data, 640, 96)
//
// # Decode Chain
//
// Decoding is a capability probe with a fallback: go-audio's WAV and
// AIFF decoders, go-mp3 and oggvorbis run first; a minimal 16-bit PCM
// container parser runs last so plain captures always work even where
// no full decoder applies. See the audio package for the chain and the
// per-identifier single-flight cache.
package primview
