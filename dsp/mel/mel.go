// Package mel implements the mel frequency scale and triangular mel filter
// banks laid out over one-sided FFT bins.
package mel

import (
	"math"

	"github.com/cwbudde/algo-speech/dsp/core"
)

// FromHz converts a frequency in Hz to mel.
func FromHz(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

// ToHz converts a mel value back to Hz.
func ToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}

// Bank is a triangular mel filter bank over fftLen/2+1 spectrum bins.
type Bank struct {
	filters [][]float64
	centers []int
	bins    int
}

// NewBank builds a bank of order triangular filters between low and high Hz.
//
// The order+2 band edges are spaced equally on the mel scale, converted back
// to Hz, and snapped to FFT bins by round(fftLen*hz/rate), clamping to the
// one-sided range. Filter k rises from zero at edge k to one at edge k+1 and
// falls back to zero at edge k+2. A band whose edges collapse onto a single
// bin produces an all-zero filter.
func NewBank(order int, low, high float64, fftLen int, rate float64) (*Bank, error) {
	if order <= 0 {
		return nil, errOrder(order)
	}

	if fftLen <= 0 {
		return nil, errFFTLength(fftLen)
	}

	if rate <= 0 {
		return nil, errRate(rate)
	}

	if low < 0 {
		return nil, errBandLow(low)
	}

	if high <= low {
		return nil, errBandEmpty(low, high)
	}

	bins := fftLen/2 + 1
	melLow := FromHz(low)
	melStep := (FromHz(high) - melLow) / float64(order+1)

	centers := make([]int, order+2)
	for i := range centers {
		hz := core.Clamp(ToHz(melLow+float64(i)*melStep), 0, rate/2)

		bin := int(math.Round(float64(fftLen) * hz / rate))
		if bin > fftLen/2 {
			bin = fftLen / 2
		}

		centers[i] = bin
	}

	filters := make([][]float64, order)
	for k := range filters {
		f := make([]float64, bins)
		lo, mid, hi := centers[k], centers[k+1], centers[k+2]

		for b := lo; b < mid; b++ {
			f[b] = float64(b-lo) / float64(mid-lo)
		}

		if hi > lo {
			f[mid] = 1
		}

		for b := mid + 1; b <= hi; b++ {
			f[b] = 1 - float64(b-mid)/float64(hi-mid)
		}

		filters[k] = f
	}

	return &Bank{filters: filters, centers: centers, bins: bins}, nil
}

// Order returns the number of filters in the bank.
func (b *Bank) Order() int {
	return len(b.filters)
}

// Bins returns the spectrum length the bank expects.
func (b *Bank) Bins() int {
	return b.bins
}

// Filter returns the coefficient vector of filter k. The slice is shared
// with the bank and must not be modified.
func (b *Bank) Filter(k int) []float64 {
	return b.filters[k]
}

// Apply projects one spectrum row onto every filter in the bank.
func (b *Bank) Apply(spectrum []float64) ([]float64, error) {
	if len(spectrum) != b.bins {
		return nil, errBins(len(spectrum), b.bins)
	}

	out := make([]float64, len(b.filters))

	for k, f := range b.filters {
		lo, hi := b.centers[k], b.centers[k+2]

		sum := 0.0
		for i := lo; i <= hi; i++ {
			sum += f[i] * spectrum[i]
		}

		out[k] = sum
	}

	return out, nil
}

// ApplyFrames projects every row of the spectrum matrix onto the bank.
func (b *Bank) ApplyFrames(frames [][]float64) ([][]float64, error) {
	out := make([][]float64, len(frames))

	for i, row := range frames {
		proj, err := b.Apply(row)
		if err != nil {
			return nil, err
		}

		out[i] = proj
	}

	return out, nil
}
