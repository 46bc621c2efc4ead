// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"

	"github.com/capturelab/primview/audio"
)

var (
	ErrNotRIFF      = fmt.Errorf("%w: missing RIFF magic", audio.ErrFormat)
	ErrMissingChunk = fmt.Errorf("%w: missing fmt/data chunk", audio.ErrFormat)
	ErrOnlyPCM16    = fmt.Errorf("%w: only 16-bit integer PCM", audio.ErrUnsupportedFormat)
)
