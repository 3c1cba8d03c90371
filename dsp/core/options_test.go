package core

import "testing"

func TestApplyStreamOptions(t *testing.T) {
	cfg := ApplyStreamOptions(WithSampleRate(96000))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate = %v, want 96000", cfg.SampleRate)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyStreamOptions(WithSampleRate(0), nil)
	def := DefaultStreamConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
