package audio

// Buffer is an in-memory Source over a sample slice.
type Buffer struct {
	sourceState
}

// NewBuffer wraps samples at the given rate. The slice is used directly,
// not copied, so the buffer sees later mutations.
func NewBuffer(samples []float64, rate float64) (*Buffer, error) {
	if rate <= 0 {
		return nil, errRate(rate)
	}

	b := &Buffer{}
	b.samples = samples
	b.rate = rate
	b.emphasis = DefaultEmphasis

	return b, nil
}
