// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"bytes"
	"image/png"
	"math"
	"testing"
)

func TestRender_Dimensions(t *testing.T) {
	t.Parallel()

	img := Render(make([]float32, 500), 320, 64)
	bounds := img.Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 64 {
		t.Errorf("image is %dx%d, want 320x64", bounds.Dx(), bounds.Dy())
	}
}

func TestRender_TraceReachesEdges(t *testing.T) {
	t.Parallel()

	// A full-scale alternating signal should paint the trace color at
	// the top and bottom rows of every covered column.
	samples := make([]float32, 1000)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = 1
		} else {
			samples[i] = -1
		}
	}

	const w, h = 100, 64
	img := Render(samples, w, h)

	for _, x := range []int{0, w / 2, w - 1} {
		if img.NRGBAAt(x, 0) != trace {
			t.Errorf("x=%d: top row not painted", x)
		}
		if img.NRGBAAt(x, h-1) != trace {
			t.Errorf("x=%d: bottom row not painted", x)
		}
	}
}

func TestRender_ShortClipLeavesTrailingBlank(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 10)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i)))
	}

	const w, h = 100, 64
	img := Render(samples, w, h)

	// Pixel column 50 is past the 10 emitted columns: only background
	// and the baseline may appear there.
	for y := 0; y < h; y++ {
		got := img.NRGBAAt(50, y)
		if got == trace {
			t.Fatalf("trailing pixel (50, %d) painted with trace color", y)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 2048)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) / 9))
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, samples, 640, 96); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 96 {
		t.Errorf("PNG is %dx%d, want 640x96", cfg.Width, cfg.Height)
	}
}

func TestEncodePNG_InvalidSize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := EncodePNG(&buf, nil, 0, 64); err == nil {
		t.Error("EncodePNG() with zero width should fail")
	}
	if err := EncodePNG(&buf, nil, 64, -1); err == nil {
		t.Error("EncodePNG() with negative height should fail")
	}
}
