package spectrum

import (
	"errors"
	"math"
	"testing"
)

func TestDCTConstant(t *testing.T) {
	d, err := NewDCT(8)
	if err != nil {
		t.Fatalf("NewDCT failed: %v", err)
	}

	row := make([]float64, 8)
	for i := range row {
		row[i] = 1
	}

	out, err := d.Transform(row)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	// A constant input has all its energy in the first coefficient.
	if math.Abs(out[0]-math.Sqrt(8)) > 1e-12 {
		t.Fatalf("c0 = %g, want sqrt(8)", out[0])
	}

	for k := 1; k < 8; k++ {
		if math.Abs(out[k]) > 1e-12 {
			t.Fatalf("c%d = %g, want 0", k, out[k])
		}
	}
}

func TestDCTParseval(t *testing.T) {
	d, err := NewDCT(12)
	if err != nil {
		t.Fatalf("NewDCT failed: %v", err)
	}

	row := []float64{1, -2, 3.5, 0.25, -0.75, 2, -1.25, 0.5, 1.75, -3, 0.125, 2.5}

	out, err := d.Transform(row)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	inEnergy := 0.0
	for _, v := range row {
		inEnergy += v * v
	}

	outEnergy := 0.0
	for _, v := range out {
		outEnergy += v * v
	}

	if math.Abs(inEnergy-outEnergy) > 1e-10 {
		t.Fatalf("energy not preserved: in %g, out %g", inEnergy, outEnergy)
	}
}

func TestDCTOrthonormalBasis(t *testing.T) {
	d, err := NewDCT(6)
	if err != nil {
		t.Fatalf("NewDCT failed: %v", err)
	}

	for a := 0; a < 6; a++ {
		for b := 0; b < 6; b++ {
			dot := 0.0
			for i := 0; i < 6; i++ {
				dot += d.basis[a][i] * d.basis[b][i]
			}

			want := 0.0
			if a == b {
				want = 1
			}

			if math.Abs(dot-want) > 1e-12 {
				t.Fatalf("basis[%d].basis[%d] = %g, want %g", a, b, dot, want)
			}
		}
	}
}

func TestDCTFrames(t *testing.T) {
	d, err := NewDCT(4)
	if err != nil {
		t.Fatalf("NewDCT failed: %v", err)
	}

	frames := [][]float64{
		{1, 1, 1, 1},
		{1, 0, -1, 0},
	}

	out, err := d.Frames(frames)
	if err != nil {
		t.Fatalf("Frames failed: %v", err)
	}

	if len(out) != 2 || len(out[0]) != 4 {
		t.Fatalf("unexpected shape %dx%d", len(out), len(out[0]))
	}

	single, err := d.Transform(frames[1])
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	for k := range single {
		if out[1][k] != single[k] {
			t.Fatalf("row/frames mismatch at %d: %g != %g", k, out[1][k], single[k])
		}
	}
}

func TestDCTValidation(t *testing.T) {
	if _, err := NewDCT(0); !errors.Is(err, ErrDCTLength) {
		t.Fatalf("NewDCT(0) error = %v, want ErrDCTLength", err)
	}

	d, err := NewDCT(4)
	if err != nil {
		t.Fatalf("NewDCT failed: %v", err)
	}

	if _, err := d.Transform([]float64{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
