package feature

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-speech/dsp/mel"
	"github.com/cwbudde/algo-speech/dsp/spectrum"
)

// DefaultMFCCOrder is the number of cepstral coefficients computed when no
// order has been configured.
const DefaultMFCCOrder = 60

// MFCC returns mel-frequency cepstral coefficients of the source, one row
// of order values per frame.
//
// The pipeline runs on pre-emphasized samples: a plain source is emphasized
// for the duration of the call and restored before returning. Each windowed
// frame is transformed to its one-sided magnitude spectrum at the FFT
// length, projected onto a triangular mel filterbank between low and high
// Hz, log-compressed, and passed through an orthonormal DCT-II.
//
// Parameters not overridden keep their values from the previous call; on
// the first call, order defaults to DefaultMFCCOrder, the FFT length to the
// realized frame width, and the band to 0..rate/2. When the resolved
// parameters match the cached matrix's provenance, the cached matrix is
// returned as is. Parameters are validated before any state changes, so a
// failed call leaves the extractor exactly as it was.
func (e *Extractor) MFCC(opts ...MFCCOption) ([][]float64, error) {
	if err := e.checkSource(); err != nil {
		return nil, err
	}

	params, err := e.mfccDefaults()
	if err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&params)
		}
	}

	rate := e.src.Rate()
	if err := validateMFCC(params, rate); err != nil {
		return nil, err
	}

	if !e.src.PreEmphasized() {
		e.src.PreEmphasize()
		defer e.src.Deemphasize()
	}

	windowed, err := e.Window()
	if err != nil {
		return nil, err
	}

	prov := mfccProv{
		windowing: e.windowCache.prov,
		order:     params.order,
		fftLen:    params.fftLen,
		low:       params.low,
		high:      params.high,
	}
	if m := e.mfccCache; m != nil && m.prov == prov {
		return m.coeffs, nil
	}

	coeffs, err := computeMFCC(windowed, params, rate)
	if err != nil {
		return nil, err
	}

	e.mfccOrder = params.order
	e.mfccFFT = params.fftLen
	e.mfccLow = params.low
	e.mfccHigh = params.high
	e.mfccResolved = true
	e.mfccCache = &mfccMemo{prov: prov, coeffs: coeffs}

	return coeffs, nil
}

// mfccDefaults resolves the starting parameters for an MFCC call: the
// values committed by the previous call, or the documented defaults before
// any call has succeeded. Once resolved, the FFT length stays fixed even if
// the frame width changes later; pass WithFFTLength to follow a new width.
func (e *Extractor) mfccDefaults() (mfccParams, error) {
	if e.mfccResolved {
		return mfccParams{
			order:  e.mfccOrder,
			fftLen: e.mfccFFT,
			low:    e.mfccLow,
			high:   e.mfccHigh,
		}, nil
	}

	geom, err := e.policy.Realize(e.src.Rate())
	if err != nil {
		return mfccParams{}, err
	}

	return mfccParams{
		order:  DefaultMFCCOrder,
		fftLen: geom.Width,
		low:    0,
		high:   e.src.Rate() / 2,
	}, nil
}

func validateMFCC(p mfccParams, rate float64) error {
	if p.order <= 0 {
		return fmt.Errorf("mfcc: %w: %d", mel.ErrOrder, p.order)
	}

	if p.fftLen <= 0 {
		return fmt.Errorf("mfcc: %w: %d", spectrum.ErrFFTLength, p.fftLen)
	}

	if p.low < 0 {
		return fmt.Errorf("mfcc: %w: low frequency must be >= 0: %g", mel.ErrBand, p.low)
	}

	if p.high <= p.low {
		return fmt.Errorf("mfcc: %w: high %g must be above low %g", mel.ErrBand, p.high, p.low)
	}

	if nyquist := rate / 2; p.high > nyquist {
		return fmt.Errorf("mfcc: %w: high %g above nyquist %g", mel.ErrBand, p.high, nyquist)
	}

	return nil
}

// computeMFCC runs the spectral stages of the pipeline over the windowed
// frames. Filters that collect no spectral energy yield -Inf after the log;
// the DCT spreads such values over the whole row.
func computeMFCC(windowed [][]float64, p mfccParams, rate float64) ([][]float64, error) {
	tr, err := spectrum.NewTransform(p.fftLen)
	if err != nil {
		return nil, err
	}

	mags, err := tr.MagnitudeFrames(windowed)
	if err != nil {
		return nil, err
	}

	bank, err := mel.NewBank(p.order, p.low, p.high, p.fftLen, rate)
	if err != nil {
		return nil, err
	}

	banded, err := bank.ApplyFrames(mags)
	if err != nil {
		return nil, err
	}

	for _, row := range banded {
		for i, v := range row {
			row[i] = math.Log(v)
		}
	}

	dct, err := spectrum.NewDCT(p.order)
	if err != nil {
		return nil, err
	}

	return dct.Frames(banded)
}
