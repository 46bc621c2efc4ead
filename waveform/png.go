// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

var (
	background = color.NRGBA{R: 0x12, G: 0x14, B: 0x18, A: 0xff}
	baseline   = color.NRGBA{R: 0x2c, G: 0x31, B: 0x3a, A: 0xff}
	trace      = color.NRGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}
)

// Render draws the envelope of samples into a width x height image.
// Positive amplitude extends upward from the vertical center (screen Y
// grows downward). Pixels past the end of a short clip stay blank.
func Render(samples []float32, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, background)
		}
	}

	mid := height / 2
	for x := 0; x < width; x++ {
		img.SetNRGBA(x, mid, baseline)
	}

	half := float32(height) / 2
	for x, col := range Columns(samples, width) {
		top := int(half - col.Max*half)
		bot := int(half - col.Min*half)
		top = clamp(top, 0, height-1)
		bot = clamp(bot, 0, height-1)
		for y := top; y <= bot; y++ {
			img.SetNRGBA(x, y, trace)
		}
	}

	return img
}

// EncodePNG renders the envelope and writes it as PNG.
func EncodePNG(w io.Writer, samples []float32, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("waveform: invalid size %dx%d", width, height)
	}
	if err := png.Encode(w, Render(samples, width, height)); err != nil {
		return fmt.Errorf("encoding waveform: %w", err)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
