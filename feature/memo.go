package feature

import (
	"github.com/cwbudde/algo-speech/dsp/frame"
	"github.com/cwbudde/algo-speech/dsp/window"
)

// Cached results carry an explicit provenance record: the full set of
// parameters that produced them. A request reuses a cache entry exactly when
// its resolved parameters compare equal to the entry's provenance, so the
// reuse decision never depends on which parameters happened to be spelled
// out in the call.

// frameProv identifies one framed matrix: the policy it was sliced under and
// whether the source samples were pre-emphasized at the time.
type frameProv struct {
	policy     frame.Policy
	emphasized bool
}

// windowProv identifies one windowed matrix. For non-Kaiser windows beta is
// recorded as zero so that an irrelevant beta never splits the cache.
type windowProv struct {
	framing frameProv
	typ     window.Type
	norm    window.Normalization
	beta    float64
}

// mfccProv identifies one cepstral matrix.
type mfccProv struct {
	windowing windowProv
	order     int
	fftLen    int
	low       float64
	high      float64
}

// coeffKey identifies one generated coefficient vector. Width lives here
// rather than a full framing record because the coefficients depend on the
// realized frame width only.
type coeffKey struct {
	typ   window.Type
	norm  window.Normalization
	beta  float64
	width int
}

type frameMemo struct {
	prov   frameProv
	frames [][]float64
}

type coeffMemo struct {
	key    coeffKey
	coeffs []float64
}

type windowMemo struct {
	prov   windowProv
	frames [][]float64
}

type energyMemo struct {
	prov      windowProv
	energy    []float64
	logEnergy []float64
}

type mfccMemo struct {
	prov   mfccProv
	coeffs [][]float64
}
