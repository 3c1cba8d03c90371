package audio_test

import (
	"fmt"

	"github.com/cwbudde/algo-speech/audio"
)

func ExampleNewBuffer() {
	b, err := audio.NewBuffer([]float64{0, 1, 0, -1}, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(b.Rate(), b.Loaded())
	// Output:
	// 4 true
}

func ExampleParseEncoding() {
	enc, bits, err := audio.ParseEncoding("short")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(enc, bits)
	// Output:
	// unsigned 16
}
