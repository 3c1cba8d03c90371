package audio

// DefaultEmphasis is the standard pre-emphasis coefficient.
const DefaultEmphasis = 0.97

// Source is any provider of mono samples at a known rate.
//
// PreEmphasize and Deemphasize toggle the first-difference emphasis filter
// in place; both are no-ops when the source is already in the requested
// state, so callers can toggle freely without tracking it themselves.
type Source interface {
	Samples() []float64
	Rate() float64
	Loaded() bool
	PreEmphasized() bool
	PreEmphasize()
	Deemphasize()
}

// sourceState carries the sample buffer and emphasis bookkeeping shared by
// Buffer and File.
type sourceState struct {
	samples    []float64
	rate       float64
	emphasis   float64
	emphasized bool
}

// Samples returns the sample buffer. The slice is owned by the source;
// treat it as read-only.
func (s *sourceState) Samples() []float64 {
	return s.samples
}

// Rate returns the sample rate in Hz.
func (s *sourceState) Rate() float64 {
	return s.rate
}

// Loaded reports whether the source holds any samples.
func (s *sourceState) Loaded() bool {
	return len(s.samples) > 0
}

// PreEmphasized reports whether the emphasis filter is currently applied.
func (s *sourceState) PreEmphasized() bool {
	return s.emphasized
}

// EmphasisCoefficient returns the coefficient used by PreEmphasize.
func (s *sourceState) EmphasisCoefficient() float64 {
	return s.emphasis
}

// SetEmphasisCoefficient replaces the emphasis coefficient. It does not
// touch sample data; callers should deemphasize first if the filter is
// applied.
func (s *sourceState) SetEmphasisCoefficient(a float64) {
	s.emphasis = a
}

// PreEmphasize applies y[n] = x[n] - a*x[n-1] in place, keeping y[0] = x[0].
func (s *sourceState) PreEmphasize() {
	if s.emphasized {
		return
	}

	emphasize(s.samples, s.emphasis)
	s.emphasized = true
}

// Deemphasize inverts PreEmphasize with the forward recurrence
// x[n] = y[n] + a*x[n-1].
func (s *sourceState) Deemphasize() {
	if !s.emphasized {
		return
	}

	deemphasize(s.samples, s.emphasis)
	s.emphasized = false
}

// emphasize walks backward so every step still reads the original previous
// sample.
func emphasize(x []float64, a float64) {
	for n := len(x) - 1; n > 0; n-- {
		x[n] -= a * x[n-1]
	}
}

func deemphasize(y []float64, a float64) {
	for n := 1; n < len(y); n++ {
		y[n] += a * y[n-1]
	}
}
