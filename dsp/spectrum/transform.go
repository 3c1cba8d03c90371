package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrFFTLength reports a non-positive FFT length.
var ErrFFTLength = errors.New("fft length must be > 0")

// Transform computes one-sided spectra of framed samples at a fixed FFT
// length.
//
// Lengths the FFT planner accepts run through an algo-fft plan. Other
// lengths are evaluated per bin with the Goertzel recurrence, which matches
// the DFT bin powers exactly, so any positive length works.
type Transform struct {
	length int
	bins   int

	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128

	// coeffs holds per-bin Goertzel coefficients for the direct path.
	coeffs []float64
}

// NewTransform prepares a transform for the given FFT length.
func NewTransform(fftLen int) (*Transform, error) {
	if fftLen <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrFFTLength, fftLen)
	}

	t := &Transform{
		length: fftLen,
		bins:   fftLen/2 + 1,
	}

	plan, err := algofft.NewPlan64(fftLen)
	if err == nil {
		t.plan = plan
		t.in = make([]complex128, fftLen)
		t.out = make([]complex128, fftLen)

		return t, nil
	}

	t.coeffs = goertzelCoeffs(fftLen)

	return t, nil
}

// Length returns the FFT length.
func (t *Transform) Length() int {
	return t.length
}

// Bins returns the one-sided bin count, fftLen/2+1.
func (t *Transform) Bins() int {
	return t.bins
}

// MagnitudeFrames returns the one-sided magnitude spectrum |X[k]| of every
// frame. Rows shorter than the FFT length are zero padded; longer rows are
// truncated.
func (t *Transform) MagnitudeFrames(frames [][]float64) ([][]float64, error) {
	return t.transformFrames(frames, false)
}

// PowerFrames returns the one-sided power spectrum |X[k]|^2 of every frame,
// with the same padding rules as MagnitudeFrames.
func (t *Transform) PowerFrames(frames [][]float64) ([][]float64, error) {
	return t.transformFrames(frames, true)
}

func (t *Transform) transformFrames(frames [][]float64, power bool) ([][]float64, error) {
	out := make([][]float64, len(frames))
	if len(frames) == 0 {
		return out, nil
	}

	backing := make([]float64, len(frames)*t.bins)

	if t.plan != nil {
		re, im, buf := getScratch(t.bins)
		defer putScratch(buf)

		for i, row := range frames {
			dst := backing[i*t.bins : (i+1)*t.bins]

			if err := t.forward(row, re, im); err != nil {
				return nil, err
			}

			if power {
				vecmath.Power(dst, re, im)
			} else {
				vecmath.Magnitude(dst, re, im)
			}

			out[i] = dst
		}

		return out, nil
	}

	for i, row := range frames {
		dst := backing[i*t.bins : (i+1)*t.bins]
		t.directPower(row, dst)

		if !power {
			for k, v := range dst {
				dst[k] = math.Sqrt(v)
			}
		}

		out[i] = dst
	}

	return out, nil
}

func (t *Transform) forward(row []float64, re, im []float64) error {
	n := len(row)
	if n > t.length {
		n = t.length
	}

	for i := 0; i < n; i++ {
		t.in[i] = complex(row[i], 0)
	}

	for i := n; i < t.length; i++ {
		t.in[i] = 0
	}

	if err := t.plan.Forward(t.out, t.in); err != nil {
		return err
	}

	for k := 0; k < t.bins; k++ {
		re[k] = real(t.out[k])
		im[k] = imag(t.out[k])
	}

	return nil
}

// directPower evaluates one-sided bin powers with the Goertzel recurrence.
// Processing the zero tail keeps the recurrence equivalent to a DFT of the
// zero-padded row.
func (t *Transform) directPower(row, dst []float64) {
	n := len(row)
	if n > t.length {
		n = t.length
	}

	zeros := t.length - n

	for k, coeff := range t.coeffs {
		s0, s1 := 0.0, 0.0

		for _, x := range row[:n] {
			s := x + coeff*s0 - s1
			s1 = s0
			s0 = s
		}

		for j := 0; j < zeros; j++ {
			s := coeff*s0 - s1
			s1 = s0
			s0 = s
		}

		dst[k] = s0*s0 + s1*s1 - coeff*s0*s1
	}
}

func goertzelCoeffs(fftLen int) []float64 {
	coeffs := make([]float64, fftLen/2+1)
	for k := range coeffs {
		coeffs[k] = 2 * math.Cos(2*math.Pi*float64(k)/float64(fftLen))
	}

	return coeffs
}
