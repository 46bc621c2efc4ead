// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/capturelab/primview/audio"
)

var (
	ErrNotAiffFile           = fmt.Errorf("%w: not an AIFF file", audio.ErrFormat)
	ErrUnsupportedAiffLayout = fmt.Errorf("%w: unsupported AIFF layout", audio.ErrUnsupportedFormat)
)
