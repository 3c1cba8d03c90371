package spectrum

import (
	"errors"
	"fmt"
	"math"
)

// ErrDCTLength reports a non-positive DCT length.
var ErrDCTLength = errors.New("dct length must be > 0")

// DCT applies the orthonormal type-II discrete cosine transform.
type DCT struct {
	n     int
	basis [][]float64
}

// NewDCT precomputes the orthonormal DCT-II basis for length n:
// b[k][i] = s(k)*cos(pi*k*(2i+1)/(2n)) with s(0)=sqrt(1/n), s(k)=sqrt(2/n).
// Orthonormality makes the transform energy preserving.
func NewDCT(n int) (*DCT, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrDCTLength, n)
	}

	s0 := math.Sqrt(1 / float64(n))
	s := math.Sqrt(2 / float64(n))

	basis := make([][]float64, n)
	for k := range basis {
		scale := s
		if k == 0 {
			scale = s0
		}

		row := make([]float64, n)
		for i := range row {
			row[i] = scale * math.Cos(math.Pi*float64(k)*(2*float64(i)+1)/(2*float64(n)))
		}

		basis[k] = row
	}

	return &DCT{n: n, basis: basis}, nil
}

// Len returns the transform length.
func (d *DCT) Len() int {
	return d.n
}

// Transform returns the DCT of one row.
func (d *DCT) Transform(row []float64) ([]float64, error) {
	if len(row) != d.n {
		return nil, fmt.Errorf("dct input has %d values, want %d", len(row), d.n)
	}

	out := make([]float64, d.n)

	for k, b := range d.basis {
		sum := 0.0
		for i, v := range row {
			sum += b[i] * v
		}

		out[k] = sum
	}

	return out, nil
}

// Frames applies the transform to every row of the matrix.
func (d *DCT) Frames(frames [][]float64) ([][]float64, error) {
	out := make([][]float64, len(frames))

	for i, row := range frames {
		c, err := d.Transform(row)
		if err != nil {
			return nil, err
		}

		out[i] = c
	}

	return out, nil
}
