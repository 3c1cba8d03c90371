package mel

import (
	"errors"
	"fmt"
)

var (
	// ErrOrder reports a non-positive filter count.
	ErrOrder = errors.New("mel filter order must be > 0")
	// ErrFFTLength reports a non-positive FFT length.
	ErrFFTLength = errors.New("fft length must be > 0")
	// ErrRate reports a non-positive sample rate.
	ErrRate = errors.New("sample rate must be > 0")
	// ErrBand reports an invalid low/high frequency band.
	ErrBand = errors.New("invalid mel frequency band")
)

func errOrder(order int) error {
	return fmt.Errorf("%w: %d", ErrOrder, order)
}

func errFFTLength(fftLen int) error {
	return fmt.Errorf("%w: %d", ErrFFTLength, fftLen)
}

func errRate(rate float64) error {
	return fmt.Errorf("%w: %g", ErrRate, rate)
}

func errBandLow(low float64) error {
	return fmt.Errorf("%w: low frequency must be >= 0: %g", ErrBand, low)
}

func errBandEmpty(low, high float64) error {
	return fmt.Errorf("%w: high %g must be above low %g", ErrBand, high, low)
}

func errBins(got, want int) error {
	return fmt.Errorf("spectrum has %d bins, bank expects %d", got, want)
}
