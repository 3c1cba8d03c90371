package window

import "math"

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients
// using numerical DFT evaluation.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	dcRef := dftMagSq(coeffs, 0)
	if dcRef == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0

	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	// Scallop loss: response half a bin off center, relative to DC.
	halfBinMagSq := dftMagSq(coeffs, 0.5/float64(n))
	scallopLoss := math.Inf(-1)
	if halfBinMagSq > 0 {
		scallopLoss = 10 * math.Log10(halfBinMagSq/dcRef)
	}

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              float64(n) * sumSq / (sum * sum),
		HighestSidelobedB: highestSidelobe(coeffs, dcRef, n),
		ScallopLossdB:     scallopLoss,
	}
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency [0,1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq

	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}

	return re*re + im*im
}

// highestSidelobe scans the magnitude response beyond the main lobe for its
// peak level in dB relative to DC.
func highestSidelobe(coeffs []float64, dcRef float64, n int) float64 {
	step := 1.0 / (float64(n) * 8)

	// Walk out of the main lobe: descend well below DC, then turn upward.
	// The 10% threshold avoids false turnarounds on wide plateaus.
	threshold := dcRef * 0.1
	prev := dcRef
	freq := step

	for ; freq < 0.5; freq += step {
		val := dftMagSq(coeffs, freq)
		if prev < threshold && val > prev {
			break
		}

		prev = val
	}

	peak := 0.0

	for ; freq < 0.5; freq += step {
		if val := dftMagSq(coeffs, freq); val > peak {
			peak = val
		}
	}

	if peak <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(peak/dcRef)
}
