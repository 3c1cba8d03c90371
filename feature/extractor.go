package feature

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-speech/audio"
	"github.com/cwbudde/algo-speech/dsp/frame"
	"github.com/cwbudde/algo-speech/dsp/window"
)

// Extractor derives framed, windowed and cepstral representations from one
// audio source, caching each per-stage result with its provenance.
type Extractor struct {
	src  audio.Source
	warn func(string)

	policy  frame.Policy
	winType window.Type
	winNorm window.Normalization
	winBeta float64

	mfccOrder    int
	mfccFFT      int
	mfccLow      float64
	mfccHigh     float64
	mfccResolved bool

	frameCache  *frameMemo
	coeffCache  *coeffMemo
	windowCache *windowMemo
	energyCache *energyMemo
	mfccCache   *mfccMemo
}

// New returns an Extractor over src. The source must already be loaded.
func New(src audio.Source, opts ...Option) (*Extractor, error) {
	e := &Extractor{
		warn:    func(string) {},
		policy:  frame.DefaultPolicy(),
		winType: window.TypeHanning,
		winNorm: window.NormNone,
		winBeta: math.NaN(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	if err := e.SetSource(src); err != nil {
		return nil, err
	}

	return e, nil
}

// SetSource replaces the audio source and drops every cached result. The
// extractor keeps its parameter state, so the next request recomputes with
// the established configuration.
func (e *Extractor) SetSource(src audio.Source) error {
	if src == nil {
		return errNilSource()
	}

	if !src.Loaded() {
		return errUnreadSource()
	}

	e.src = src
	e.frameCache = nil
	e.coeffCache = nil
	e.windowCache = nil
	e.energyCache = nil
	e.mfccCache = nil

	return nil
}

// Source returns the current audio source.
func (e *Extractor) Source() audio.Source {
	return e.src
}

// Policy returns the current framing policy.
func (e *Extractor) Policy() frame.Policy {
	return e.policy
}

// Geometry returns the sample-domain realization of the current framing
// policy at the source rate.
func (e *Extractor) Geometry() (frame.Geometry, error) {
	if err := e.checkSource(); err != nil {
		return frame.Geometry{}, err
	}

	return e.policy.Realize(e.src.Rate())
}

// Frame cuts the source into overlapping frames.
//
// Parameters not overridden keep their values from the previous call. When
// the resolved parameters match the cached matrix's provenance, the cached
// matrix is returned as is. On error, neither parameters nor caches change.
//
// Rows of the returned matrix share one backing array; treat it as
// read-only.
func (e *Extractor) Frame(opts ...FrameOption) ([][]float64, error) {
	if err := e.checkSource(); err != nil {
		return nil, err
	}

	policy := e.policy
	for _, opt := range opts {
		if opt != nil {
			opt(&policy)
		}
	}

	geom, err := policy.Realize(e.src.Rate())
	if err != nil {
		return nil, err
	}

	return e.sliceFrames(policy, geom), nil
}

// Window returns the framed source with the window applied.
//
// Parameters not overridden keep their values from the previous call;
// framing overrides pass through WithFraming. When the resolved parameters
// match the cached matrix's provenance, the cached matrix is returned as is.
// On error, neither parameters nor caches change.
func (e *Extractor) Window(opts ...WindowOption) ([][]float64, error) {
	if err := e.checkSource(); err != nil {
		return nil, err
	}

	params := windowParams{typ: e.winType, norm: e.winNorm, beta: e.winBeta}
	for _, opt := range opts {
		if opt != nil {
			opt(&params)
		}
	}

	policy := e.policy
	for _, opt := range params.framing {
		if opt != nil {
			opt(&policy)
		}
	}

	geom, err := policy.Realize(e.src.Rate())
	if err != nil {
		return nil, err
	}

	coeffs, err := e.windowCoefficients(params, geom.Width)
	if err != nil {
		return nil, err
	}

	frames := e.sliceFrames(policy, geom)

	prov := windowProv{
		framing: frameProv{policy: policy, emphasized: e.src.PreEmphasized()},
		typ:     params.typ,
		norm:    params.norm,
		beta:    provBeta(params.typ, params.beta),
	}
	if m := e.windowCache; m != nil && m.prov == prov {
		e.commitWindowParams(params)

		return m.frames, nil
	}

	windowed, err := window.Apply(frames, coeffs)
	if err != nil {
		return nil, err
	}

	e.commitWindowParams(params)
	e.windowCache = &windowMemo{prov: prov, frames: windowed}

	return windowed, nil
}

// commitWindowParams makes resolved windowing parameters the defaults for
// later calls. Committing on cache hits too keeps an explicitly passed but
// currently ignored beta sticky.
func (e *Extractor) commitWindowParams(p windowParams) {
	e.winType = p.typ
	e.winNorm = p.norm
	e.winBeta = p.beta
}

func (e *Extractor) checkSource() error {
	if e.src == nil {
		return errNilSource()
	}

	if !e.src.Loaded() {
		return errUnreadSource()
	}

	return nil
}

// sliceFrames returns the framed matrix for the given policy, reusing the
// cache when its provenance matches. On recompute it commits the policy,
// emitting one warning per inexactly realized parameter.
func (e *Extractor) sliceFrames(p frame.Policy, g frame.Geometry) [][]float64 {
	prov := frameProv{policy: p, emphasized: e.src.PreEmphasized()}
	if m := e.frameCache; m != nil && m.prov == prov {
		return m.frames
	}

	rate := e.src.Rate()
	if !g.ShiftExact {
		e.warn(fmt.Sprintf("frame shift %gs is %g samples at %g Hz, rounded to %d",
			p.Shift, p.Shift*rate, rate, g.Shift))
	}

	if !g.WidthExact {
		e.warn(fmt.Sprintf("frame width %gs is %g samples at %g Hz, rounded to %d",
			p.Width, p.Width*rate, rate, g.Width))
	}

	frames := frame.Slice(e.src.Samples(), p, g)

	e.policy = p
	e.frameCache = &frameMemo{prov: prov, frames: frames}

	return frames
}

// windowCoefficients returns the coefficient vector for the given window
// parameters at the realized width, generating and caching it on first use.
func (e *Extractor) windowCoefficients(p windowParams, width int) ([]float64, error) {
	key := coeffKey{typ: p.typ, norm: p.norm, beta: provBeta(p.typ, p.beta), width: width}
	if m := e.coeffCache; m != nil && m.key == key {
		return m.coeffs, nil
	}

	coeffs, err := window.Generate(p.typ, width, window.WithBeta(p.beta), window.WithNormalization(p.norm))
	if err != nil {
		return nil, err
	}

	e.coeffCache = &coeffMemo{key: key, coeffs: coeffs}

	return coeffs, nil
}

// provBeta is the beta value recorded in provenance: the actual value for
// Kaiser windows, zero for every type that ignores it.
func provBeta(t window.Type, beta float64) float64 {
	if t == window.TypeKaiser {
		return beta
	}

	return 0
}
