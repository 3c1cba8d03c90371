package window

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType reports a window type outside the supported set.
	ErrUnknownType = errors.New("unknown window type")
	// ErrUnknownNormalization reports a normalization outside the supported set.
	ErrUnknownNormalization = errors.New("unknown window normalization")
	// ErrBetaRequired reports a Kaiser window generated without WithBeta.
	ErrBetaRequired = errors.New("kaiser window requires a beta parameter")
	// ErrZeroNorm reports a normalization request on all-zero coefficients.
	ErrZeroNorm = errors.New("window coefficients sum to zero")

	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func errLength(length int) error {
	return fmt.Errorf("window length must be > 0: %d", length)
}

func errBeta(beta float64) error {
	return fmt.Errorf("kaiser beta must be >= 0: %f", beta)
}

func errUnknownType(t Type) error {
	return fmt.Errorf("%w: %d", ErrUnknownType, int(t))
}

func errUnknownTypeName(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownType, name)
}

func errUnknownNorm(n Normalization) error {
	return fmt.Errorf("%w: %d", ErrUnknownNormalization, int(n))
}

func errUnknownNormName(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownNormalization, name)
}
