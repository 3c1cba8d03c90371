// Package audio loads mono sample data from raw PCM and ASCII files and
// provides in-memory buffers behind the same Source interface, including
// the in-place pre-emphasis filter that feature extraction relies on.
package audio
