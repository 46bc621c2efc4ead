// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/capturelab/primview/audio"
)

var (
	ErrNotWavFile           = fmt.Errorf("%w: not a WAV file", audio.ErrFormat)
	ErrUnsupportedWavLayout = fmt.Errorf("%w: unsupported WAV layout", audio.ErrUnsupportedFormat)
)
