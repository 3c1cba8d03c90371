package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrRate reports a non-positive sample rate.
	ErrRate = errors.New("sample rate must be > 0")
	// ErrShift reports a frame shift that is non-positive or under one sample.
	ErrShift = errors.New("frame shift must be > 0")
	// ErrWidth reports a frame width that is non-positive or under one sample.
	ErrWidth = errors.New("frame width must be > 0")
)

func errRate(rate float64) error {
	return fmt.Errorf("%w: %g", ErrRate, rate)
}

func errShift(shift float64) error {
	return fmt.Errorf("%w: %g s", ErrShift, shift)
}

func errWidth(width float64) error {
	return fmt.Errorf("%w: %g s", ErrWidth, width)
}

func errShiftRounds(shift, rate float64) error {
	return fmt.Errorf("%w: %g s is under one sample at %g Hz", ErrShift, shift, rate)
}

func errWidthRounds(width, rate float64) error {
	return fmt.Errorf("%w: %g s is under one sample at %g Hz", ErrWidth, width, rate)
}
