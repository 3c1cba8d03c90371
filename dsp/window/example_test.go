package window

import "fmt"

func ExampleGenerate() {
	w, err := Generate(TypeHanning, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleApply() {
	frames := [][]float64{{1, 1, 1, 1}}

	coeffs, err := Generate(TypeHanning, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	out, err := Apply(frames, coeffs)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.2f %.2f %.2f %.2f\n", out[0][0], out[0][1], out[0][2], out[0][3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleParseType() {
	t, err := ParseType("blackman")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(t)
	// Output:
	// blackman
}
