// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrFormat marks data whose container layout cannot be parsed
	// (wrong magic, missing required chunks).
	ErrFormat = errors.New("unrecognized audio container")
	// ErrUnsupportedFormat marks a valid container holding an encoding
	// no available decoder can handle.
	ErrUnsupportedFormat = errors.New("unsupported audio encoding")
	// ErrTransport marks a failure to retrieve the raw bytes at all.
	ErrTransport = errors.New("audio data unavailable")
	// ErrNoDecoder is returned by an empty decode chain.
	ErrNoDecoder = errors.New("no decoder accepted the data")
)
