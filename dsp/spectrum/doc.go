// Package spectrum computes one-sided magnitude and power spectra of framed
// samples, plus the discrete cosine transform used for cepstral features.
//
// Transform plans the forward FFT through algo-fft; lengths the planner
// rejects are evaluated directly per bin, so any positive FFT length works.
// The complex-to-real conversions run through algo-vecmath with pooled
// scratch memory.
package spectrum
