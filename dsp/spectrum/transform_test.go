package spectrum

import (
	"errors"
	"math"
	"testing"
)

func TestNewTransformShape(t *testing.T) {
	tr, err := NewTransform(16)
	if err != nil {
		t.Fatalf("NewTransform failed: %v", err)
	}

	if tr.Length() != 16 || tr.Bins() != 9 {
		t.Fatalf("Length/Bins = %d/%d, want 16/9", tr.Length(), tr.Bins())
	}
}

func TestNewTransformValidation(t *testing.T) {
	if _, err := NewTransform(0); !errors.Is(err, ErrFFTLength) {
		t.Fatalf("NewTransform(0) error = %v, want ErrFFTLength", err)
	}
}

func TestMagnitudeFramesConstant(t *testing.T) {
	tr, err := NewTransform(16)
	if err != nil {
		t.Fatalf("NewTransform failed: %v", err)
	}

	row := make([]float64, 16)
	for i := range row {
		row[i] = 1
	}

	mags, err := tr.MagnitudeFrames([][]float64{row})
	if err != nil {
		t.Fatalf("MagnitudeFrames failed: %v", err)
	}

	if len(mags) != 1 || len(mags[0]) != 9 {
		t.Fatalf("unexpected shape %dx%d", len(mags), len(mags[0]))
	}

	if math.Abs(mags[0][0]-16) > 1e-9 {
		t.Fatalf("DC bin = %g, want 16", mags[0][0])
	}

	for k := 1; k < 9; k++ {
		if mags[0][k] > 1e-9 {
			t.Fatalf("bin %d = %g, want 0", k, mags[0][k])
		}
	}
}

func TestFramesSine(t *testing.T) {
	const n = 32

	tr, err := NewTransform(n)
	if err != nil {
		t.Fatalf("NewTransform failed: %v", err)
	}

	row := make([]float64, n)
	for j := range row {
		row[j] = math.Sin(2 * math.Pi * 4 * float64(j) / n)
	}

	mags, err := tr.MagnitudeFrames([][]float64{row})
	if err != nil {
		t.Fatalf("MagnitudeFrames failed: %v", err)
	}

	for k, v := range mags[0] {
		want := 0.0
		if k == 4 {
			want = n / 2
		}

		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("magnitude bin %d = %g, want %g", k, v, want)
		}
	}

	pows, err := tr.PowerFrames([][]float64{row})
	if err != nil {
		t.Fatalf("PowerFrames failed: %v", err)
	}

	if math.Abs(pows[0][4]-n*n/4) > 1e-6 {
		t.Fatalf("power bin 4 = %g, want %g", pows[0][4], float64(n*n/4))
	}
}

func TestNonPowerOfTwoLength(t *testing.T) {
	// 12 is not a power of two; the transform must still deliver exact DFT
	// bins through whichever path it takes.
	tr, err := NewTransform(12)
	if err != nil {
		t.Fatalf("NewTransform(12) failed: %v", err)
	}

	row := make([]float64, 12)
	for j := range row {
		row[j] = math.Sin(2 * math.Pi * 3 * float64(j) / 12)
	}

	mags, err := tr.MagnitudeFrames([][]float64{row})
	if err != nil {
		t.Fatalf("MagnitudeFrames failed: %v", err)
	}

	for k, v := range mags[0] {
		want := 0.0
		if k == 3 {
			want = 6
		}

		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("bin %d = %g, want %g", k, v, want)
		}
	}
}

func TestZeroPadding(t *testing.T) {
	tr, err := NewTransform(8)
	if err != nil {
		t.Fatalf("NewTransform failed: %v", err)
	}

	short := []float64{1, 2, 3, 4}
	padded := []float64{1, 2, 3, 4, 0, 0, 0, 0}

	a, err := tr.MagnitudeFrames([][]float64{short})
	if err != nil {
		t.Fatalf("MagnitudeFrames failed: %v", err)
	}

	b, err := tr.MagnitudeFrames([][]float64{padded})
	if err != nil {
		t.Fatalf("MagnitudeFrames failed: %v", err)
	}

	for k := range a[0] {
		if math.Abs(a[0][k]-b[0][k]) > 1e-12 {
			t.Fatalf("bin %d: short %g != padded %g", k, a[0][k], b[0][k])
		}
	}
}

func TestTruncation(t *testing.T) {
	tr, err := NewTransform(8)
	if err != nil {
		t.Fatalf("NewTransform failed: %v", err)
	}

	long := make([]float64, 20)
	for i := range long {
		long[i] = float64(i + 1)
	}

	a, err := tr.MagnitudeFrames([][]float64{long})
	if err != nil {
		t.Fatalf("MagnitudeFrames failed: %v", err)
	}

	b, err := tr.MagnitudeFrames([][]float64{long[:8]})
	if err != nil {
		t.Fatalf("MagnitudeFrames failed: %v", err)
	}

	for k := range a[0] {
		if a[0][k] != b[0][k] {
			t.Fatalf("bin %d: truncated %g != exact %g", k, a[0][k], b[0][k])
		}
	}
}

func TestDirectMatchesPlan(t *testing.T) {
	const n = 16

	tr, err := NewTransform(n)
	if err != nil {
		t.Fatalf("NewTransform failed: %v", err)
	}

	row := []float64{0.5, -1.25, 3, 0.75, -2, 1.5, 0.25, -0.5,
		2.25, -1, 0.125, 1.75, -0.25, 0.625, -1.5, 2}

	want, err := tr.MagnitudeFrames([][]float64{row})
	if err != nil {
		t.Fatalf("MagnitudeFrames failed: %v", err)
	}

	direct := &Transform{length: n, bins: n/2 + 1, coeffs: goertzelCoeffs(n)}

	got, err := direct.MagnitudeFrames([][]float64{row})
	if err != nil {
		t.Fatalf("direct MagnitudeFrames failed: %v", err)
	}

	for k := range want[0] {
		if math.Abs(got[0][k]-want[0][k]) > 1e-8 {
			t.Fatalf("bin %d: direct %g, plan %g", k, got[0][k], want[0][k])
		}
	}
}

func TestFramesEmpty(t *testing.T) {
	tr, err := NewTransform(8)
	if err != nil {
		t.Fatalf("NewTransform failed: %v", err)
	}

	out, err := tr.MagnitudeFrames(nil)
	if err != nil {
		t.Fatalf("MagnitudeFrames failed: %v", err)
	}

	if len(out) != 0 {
		t.Fatalf("expected no rows, got %d", len(out))
	}
}
