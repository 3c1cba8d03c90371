package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrRate reports a non-positive sample rate.
	ErrRate = errors.New("sample rate must be > 0")
	// ErrBitDepth reports a bit depth the encoding cannot carry.
	ErrBitDepth = errors.New("unsupported bit depth")
	// ErrUnknownEncoding reports an encoding outside the supported set.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

func errRate(rate float64) error {
	return fmt.Errorf("%w: %g", ErrRate, rate)
}

func errBitDepth(enc Encoding, bits int) error {
	return fmt.Errorf("%w: %d bits for %s samples", ErrBitDepth, bits, enc)
}

func errEncoding(enc Encoding) error {
	return fmt.Errorf("%w: %d", ErrUnknownEncoding, int(enc))
}

func errUnknownEncoding(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}
