package core

// StreamConfig describes the sample stream a processing stage operates on.
type StreamConfig struct {
	SampleRate float64
}

// StreamOption mutates a StreamConfig.
type StreamOption func(*StreamConfig)

// DefaultStreamConfig returns the default stream settings.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		SampleRate: 48000,
	}
}

// WithSampleRate sets the stream sample rate.
func WithSampleRate(sampleRate float64) StreamOption {
	return func(cfg *StreamConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyStreamOptions applies zero or more options to the default config.
func ApplyStreamOptions(opts ...StreamOption) StreamConfig {
	cfg := DefaultStreamConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
