package feature

import (
	"github.com/cwbudde/algo-speech/dsp/frame"
	"github.com/cwbudde/algo-speech/dsp/window"
)

// Option configures an Extractor at construction time.
type Option func(*Extractor)

// WithWarnHandler installs a handler for recoverable warnings, such as
// framing parameters that round inexactly at the source rate. The default
// handler discards warnings.
func WithWarnHandler(fn func(string)) Option {
	return func(e *Extractor) {
		if fn != nil {
			e.warn = fn
		}
	}
}

// WithPolicy sets the initial framing policy, replacing frame.DefaultPolicy.
func WithPolicy(p frame.Policy) Option {
	return func(e *Extractor) {
		e.policy = p
	}
}

// FrameOption overrides one framing parameter for a call. Overridden values
// become the defaults for later calls once the request succeeds.
type FrameOption func(*frame.Policy)

// WithShift sets the frame shift in seconds.
func WithShift(seconds float64) FrameOption {
	return func(p *frame.Policy) {
		p.Shift = seconds
	}
}

// WithWidth sets the frame width in seconds.
func WithWidth(seconds float64) FrameOption {
	return func(p *frame.Policy) {
		p.Width = seconds
	}
}

// WithPadding selects whether frames past the buffer end are zero-padded.
func WithPadding(pad bool) FrameOption {
	return func(p *frame.Policy) {
		p.Pad = pad
	}
}

// WithCentered selects whether padded frames surround their start index.
func WithCentered(centered bool) FrameOption {
	return func(p *frame.Policy) {
		p.Centered = centered
	}
}

// WithRounding selects how the half-window offset of centered frames is
// derived from the width.
func WithRounding(r frame.Rounding) FrameOption {
	return func(p *frame.Policy) {
		p.Rounding = r
	}
}

type windowParams struct {
	typ     window.Type
	norm    window.Normalization
	beta    float64
	framing []FrameOption
}

// WindowOption overrides one windowing parameter for a call. Overridden
// values become the defaults for later calls once the request succeeds.
type WindowOption func(*windowParams)

// WithType selects the window function.
func WithType(t window.Type) WindowOption {
	return func(p *windowParams) {
		p.typ = t
	}
}

// WithNormalization selects how window coefficients are scaled.
func WithNormalization(n window.Normalization) WindowOption {
	return func(p *windowParams) {
		p.norm = n
	}
}

// WithBeta sets the Kaiser shape parameter. Other window types ignore it.
func WithBeta(beta float64) WindowOption {
	return func(p *windowParams) {
		p.beta = beta
	}
}

// WithFraming forwards framing overrides through a windowing call.
func WithFraming(opts ...FrameOption) WindowOption {
	return func(p *windowParams) {
		p.framing = append(p.framing, opts...)
	}
}

type mfccParams struct {
	order  int
	fftLen int
	low    float64
	high   float64
}

// MFCCOption overrides one cepstrum parameter for a call. Overridden values
// become the defaults for later calls once the request succeeds.
type MFCCOption func(*mfccParams)

// WithOrder sets the number of cepstral coefficients per frame.
func WithOrder(order int) MFCCOption {
	return func(p *mfccParams) {
		p.order = order
	}
}

// WithFFTLength sets the transform length. Frames shorter than the length
// are zero-padded, longer ones truncated.
func WithFFTLength(n int) MFCCOption {
	return func(p *mfccParams) {
		p.fftLen = n
	}
}

// WithLowFreq sets the lower edge of the mel filterbank in Hz.
func WithLowFreq(hz float64) MFCCOption {
	return func(p *mfccParams) {
		p.low = hz
	}
}

// WithHighFreq sets the upper edge of the mel filterbank in Hz.
func WithHighFreq(hz float64) MFCCOption {
	return func(p *mfccParams) {
		p.high = hz
	}
}
