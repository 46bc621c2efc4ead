// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV files through github.com/go-audio/wav.
//
// This is the preferred WAV path of the decode chain. It handles the
// bit depths and float layouts the minimal fallback parser refuses,
// at the cost of depending on a full library decoder.
package wav
