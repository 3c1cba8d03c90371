package feature

import (
	"testing"

	"github.com/cwbudde/algo-speech/audio"
	"github.com/cwbudde/algo-speech/internal/testutil"
)

func benchExtractor(b *testing.B) *Extractor {
	b.Helper()

	buf, err := audio.NewBuffer(testutil.DeterministicSine(1000, 16000, 1, 16000), 16000)
	if err != nil {
		b.Fatal(err)
	}

	e, err := New(buf)
	if err != nil {
		b.Fatal(err)
	}

	return e
}

func BenchmarkWindowRecompute(b *testing.B) {
	e := benchExtractor(b)

	b.ReportAllocs()
	b.ResetTimer()

	// Alternating the shift defeats the cache, so every iteration reslices
	// and rewindows the second of audio.
	for i := range b.N {
		shift := 0.005
		if i%2 == 1 {
			shift = 0.004
		}

		if _, err := e.Window(WithFraming(WithShift(shift))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMFCCRecompute(b *testing.B) {
	e := benchExtractor(b)

	b.ReportAllocs()
	b.ResetTimer()

	for i := range b.N {
		order := 13
		if i%2 == 1 {
			order = 14
		}

		if _, err := e.MFCC(WithOrder(order)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMFCCCached(b *testing.B) {
	e := benchExtractor(b)

	if _, err := e.MFCC(WithOrder(13)); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		if _, err := e.MFCC(); err != nil {
			b.Fatal(err)
		}
	}
}
