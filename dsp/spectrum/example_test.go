package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-speech/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleTransform_MagnitudeFrames() {
	tr, err := spectrum.NewTransform(8)
	if err != nil {
		fmt.Println(err)
		return
	}

	frames := [][]float64{{1, 1, 1, 1, 1, 1, 1, 1}}

	mags, err := tr.MagnitudeFrames(frames)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d bins, DC %.0f\n", len(mags[0]), mags[0][0])
	// Output:
	// 5 bins, DC 8
}

func ExampleNewDCT() {
	d, err := spectrum.NewDCT(4)
	if err != nil {
		fmt.Println(err)
		return
	}

	c, err := d.Transform([]float64{1, 1, 1, 1})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.1f\n", c[0])
	// Output:
	// 2.0
}
