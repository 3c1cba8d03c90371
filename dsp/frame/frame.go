// Package frame cuts sample buffers into overlapping analysis frames.
//
// A Policy describes framing in the seconds domain; Realize converts it to a
// sample-domain Geometry at a concrete rate, flagging inexact conversions so
// callers can surface a warning. Slice produces the framed matrix in one of
// three modes: unpadded, padded, or padded and centered.
package frame

import (
	"math"

	"github.com/cwbudde/algo-speech/dsp/core"
)

// Rounding selects how the half-window offset of centered frames is derived
// from the frame width.
type Rounding int

const (
	// HalfFloor uses integer floor division for width/2, so a centered frame
	// covers [start-width/2, start-width/2+width).
	HalfFloor Rounding = iota
	// HalfRound rounds width/2 to the nearest sample instead, shifting odd
	// widths one sample earlier.
	HalfRound
)

// Policy holds framing parameters in the seconds domain.
type Policy struct {
	Shift    float64
	Width    float64
	Pad      bool
	Centered bool
	Rounding Rounding
}

// DefaultPolicy returns the standard speech-analysis framing: 5 ms shift,
// 25 ms width, padded and centered.
func DefaultPolicy() Policy {
	return Policy{
		Shift:    0.005,
		Width:    0.025,
		Pad:      true,
		Centered: true,
	}
}

// Geometry is the sample-domain realization of a Policy at a given rate.
type Geometry struct {
	Shift      int
	Width      int
	ShiftExact bool
	WidthExact bool
}

// Realize converts the policy to sample counts at the given rate.
//
// Non-integral second-to-sample products are rounded to the nearest sample
// and the matching exactness flag is cleared. A policy whose shift or width
// rounds below one sample cannot frame anything and is rejected.
func (p Policy) Realize(rate float64) (Geometry, error) {
	if rate <= 0 {
		return Geometry{}, errRate(rate)
	}
	if p.Shift <= 0 {
		return Geometry{}, errShift(p.Shift)
	}
	if p.Width <= 0 {
		return Geometry{}, errWidth(p.Width)
	}

	var g Geometry
	g.Shift, g.ShiftExact = toSamples(p.Shift, rate)
	g.Width, g.WidthExact = toSamples(p.Width, rate)

	if g.Shift <= 0 {
		return Geometry{}, errShiftRounds(p.Shift, rate)
	}
	if g.Width <= 0 {
		return Geometry{}, errWidthRounds(p.Width, rate)
	}

	return g, nil
}

func toSamples(seconds, rate float64) (int, bool) {
	v := seconds * rate
	n := math.Round(v)

	return int(n), n == v
}

// Count returns the number of frames Slice produces for n samples.
func Count(n int, g Geometry, pad bool) int {
	if n <= 0 || g.Shift <= 0 || g.Width <= 0 {
		return 0
	}

	if !pad {
		if n < g.Width {
			return 0
		}

		return (n-g.Width)/g.Shift + 1
	}

	return (n-1)/g.Shift + 1
}

// Slice cuts samples into frames according to the policy and geometry.
//
// Every row is exactly g.Width samples long. Without padding, only frames
// that fit entirely inside the buffer are produced. With padding, frame
// starts advance while they remain inside the buffer and missing samples
// are zero; centered mode shifts each frame back by the half-window so the
// frame surrounds its start index, zero-filling both edges as needed.
//
// Rows share one backing array; callers that hold on to the result should
// treat it as read-only.
func Slice(samples []float64, p Policy, g Geometry) [][]float64 {
	rows := Count(len(samples), g, p.Pad)
	out := make([][]float64, rows)
	if rows == 0 {
		return out
	}

	half := 0
	if p.Pad && p.Centered {
		half = g.Width / 2
		if p.Rounding == HalfRound {
			half = (g.Width + 1) / 2
		}
	}

	backing := make([]float64, rows*g.Width)
	for i := range out {
		row := backing[i*g.Width : (i+1)*g.Width]

		lo := i*g.Shift - half
		off := 0
		if lo < 0 {
			off = -lo
			lo = 0
		}

		if lo < len(samples) {
			core.CopyInto(row[off:], samples[lo:])
		}

		out[i] = row
	}

	return out
}
