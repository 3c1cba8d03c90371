// Package feature orchestrates speech feature extraction over one audio
// source: framing, windowing, per-frame energy and mel-frequency cepstral
// coefficients.
//
// Every derived artifact is memoized together with the parameters that
// produced it. Repeating a request with unchanged parameters returns the
// cached result; changing any governing parameter recomputes from the stage
// that changed onward. Parameters left out of a call keep their values from
// the previous call, so a plain Frame(), Window() or MFCC() always refers to
// the current configuration. Replacing the source drops every cache.
//
// An Extractor is not safe for concurrent use. Callers that need parallelism
// should give each goroutine its own Extractor over its own source, or guard
// every call with a single mutex — two goroutines that both observe a stale
// cache would both recompute it.
package feature
