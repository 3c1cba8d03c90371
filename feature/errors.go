package feature

import (
	"errors"
	"fmt"
)

// ErrNoSource reports feature extraction without a readable audio source.
var ErrNoSource = errors.New("no readable audio source")

func errNilSource() error {
	return fmt.Errorf("%w: source is nil", ErrNoSource)
}

func errUnreadSource() error {
	return fmt.Errorf("%w: source holds no samples", ErrNoSource)
}
