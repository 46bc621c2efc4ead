// SPDX-License-Identifier: EPL-2.0

// Package waveform turns decoded samples into min/max envelope plots.
//
// An envelope plot keeps, per output pixel, the minimum and maximum
// normalized sample value of that pixel's time slice. Unlike plain
// subsampling it never loses a transient between samples, which matters
// for the short, sharp impulse responses this viewer displays.
package waveform

import "math"

// peakFloor is the smallest full-scan peak that still normalizes.
// Anything quieter counts as silence; dividing by it would blow noise
// up to full scale.
const peakFloor = 1e-9

// Column is the per-pixel aggregate of one time slice. Min and Max are
// normalized to [-1, 1] and satisfy Min <= Max.
type Column struct {
	Min float32
	Max float32
}

// Columns reduces samples to at most width columns, one per leading
// horizontal pixel. When the input is shorter than the requested width
// the trailing pixels get no column at all, so the result may be
// shorter than width; it is never longer. Zero samples yield zero
// columns, never an error.
func Columns(samples []float32, width int) []Column {
	if width <= 0 || len(samples) == 0 {
		return nil
	}

	maxAbs := peak(samples)
	if maxAbs < peakFloor {
		maxAbs = 1
	}

	step := max(1, len(samples)/width)
	cols := make([]Column, 0, min(width, (len(samples)+step-1)/step))

	for x := 0; x < width; x++ {
		lo := x * step
		hi := min(lo+step, len(samples))
		if lo >= hi {
			break
		}

		// Seeds guarantee min <= max even for a single-sample slice.
		col := Column{Min: 1, Max: -1}
		for _, s := range samples[lo:hi] {
			v := s / maxAbs
			if v < col.Min {
				col.Min = v
			}
			if v > col.Max {
				col.Max = v
			}
		}
		cols = append(cols, col)
	}

	return cols
}

// peak returns the maximum absolute sample value over a full scan.
func peak(samples []float32) float32 {
	var m float32
	for _, s := range samples {
		if a := float32(math.Abs(float64(s))); a > m {
			m = a
		}
	}
	return m
}
