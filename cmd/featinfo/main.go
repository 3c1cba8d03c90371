// Command featinfo prints a speech-feature summary of an audio source:
// realized framing geometry, window properties, per-frame energy statistics
// and the shape of the cepstrum.
//
// Usage:
//
//	featinfo [flags]
//
// The source is either a file given with -in or a generated demo signal.
//
// Examples:
//
//	featinfo -in speech.raw -rate 16000 -encoding integer -bits 16
//	featinfo -in samples.txt -format ascii -rate 8000
//	featinfo -demo sine -freq 440 -seconds 2
//	featinfo -demo noise -window hamming -norm squareSum -order 13
//	featinfo -list-windows
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-speech/audio"
	"github.com/cwbudde/algo-speech/dsp/core"
	"github.com/cwbudde/algo-speech/dsp/frame"
	"github.com/cwbudde/algo-speech/dsp/signal"
	"github.com/cwbudde/algo-speech/dsp/window"
	"github.com/cwbudde/algo-speech/feature"
)

func main() {
	var (
		in       = flag.String("in", "", "audio file to analyze")
		format   = flag.String("format", "", "file format override: raw or ascii")
		rate     = flag.Float64("rate", 48000, "sample rate in Hz")
		encoding = flag.String("encoding", "float", "raw sample encoding: float, double, integer, unsigned, short, char or ascii")
		bits     = flag.Int("bits", 32, "raw sample bit depth")
		big      = flag.Bool("big", false, "raw samples are big-endian")

		demo    = flag.String("demo", "", "generate a demo source instead of reading a file: sine or noise")
		freq    = flag.Float64("freq", 1000, "demo sine frequency in Hz")
		seconds = flag.Float64("seconds", 1, "demo signal duration in seconds")

		shift    = flag.Float64("shift", 0.005, "frame shift in seconds")
		width    = flag.Float64("width", 0.025, "frame width in seconds")
		pad      = flag.Bool("pad", true, "zero-pad trailing frames")
		centered = flag.Bool("centered", true, "center frames on their start index")

		winName  = flag.String("window", "hanning", "window type (see -list-windows)")
		normName = flag.String("norm", "none", "window normalization: none, sum or squareSum")
		beta     = flag.Float64("beta", math.NaN(), "kaiser shape parameter")

		order  = flag.Int("order", 13, "number of cepstral coefficients per frame")
		fftLen = flag.Int("fft", 0, "fft length; 0 uses the realized frame width")
		low    = flag.Float64("low", 0, "mel filterbank lower edge in Hz")
		high   = flag.Float64("high", 0, "mel filterbank upper edge in Hz; 0 uses rate/2")

		listWindows = flag.Bool("list-windows", false, "list window type names and exit")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: featinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints a speech-feature summary of an audio source.\n")
		fmt.Fprintf(os.Stderr, "The source is a file (-in) or a generated demo signal (-demo).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  featinfo -in speech.raw -rate 16000 -encoding integer -bits 16\n")
		fmt.Fprintf(os.Stderr, "  featinfo -demo sine -freq 440 -seconds 2\n")
		fmt.Fprintf(os.Stderr, "  featinfo -demo noise -window hamming -norm squareSum\n")
	}
	flag.Parse()

	if *listWindows {
		for _, t := range window.Types() {
			fmt.Println(t)
		}

		return
	}

	warn := func(msg string) {
		fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
	}

	src, label, err := openSource(sourceConfig{
		path:     *in,
		format:   *format,
		rate:     *rate,
		encoding: *encoding,
		bits:     *bits,
		big:      *big,
		demo:     *demo,
		freq:     *freq,
		seconds:  *seconds,
		warn:     warn,
	})
	if err != nil {
		fatalf("%v", err)
	}

	winType, err := window.ParseType(*winName)
	if err != nil {
		fatalf("%v", err)
	}

	norm, err := window.ParseNormalization(*normName)
	if err != nil {
		fatalf("%v", err)
	}

	policy := frame.Policy{Shift: *shift, Width: *width, Pad: *pad, Centered: *centered}

	e, err := feature.New(src, feature.WithPolicy(policy), feature.WithWarnHandler(warn))
	if err != nil {
		fatalf("%v", err)
	}

	winOpts := []feature.WindowOption{
		feature.WithType(winType),
		feature.WithNormalization(norm),
	}
	if !math.IsNaN(*beta) {
		winOpts = append(winOpts, feature.WithBeta(*beta))
	}

	_, logEnergy, err := e.Energy(winOpts...)
	if err != nil {
		fatalf("%v", err)
	}

	mfccOpts := []feature.MFCCOption{
		feature.WithOrder(*order),
		feature.WithLowFreq(*low),
	}
	if *fftLen > 0 {
		mfccOpts = append(mfccOpts, feature.WithFFTLength(*fftLen))
	}
	if *high > 0 {
		mfccOpts = append(mfccOpts, feature.WithHighFreq(*high))
	}

	coeffs, err := e.MFCC(mfccOpts...)
	if err != nil {
		fatalf("%v", err)
	}

	geom, err := e.Geometry()
	if err != nil {
		fatalf("%v", err)
	}

	printSummary(src, label, policy, geom, winType, norm, *beta, logEnergy, coeffs)
}

type sourceConfig struct {
	path     string
	format   string
	rate     float64
	encoding string
	bits     int
	big      bool

	demo    string
	freq    float64
	seconds float64

	warn func(string)
}

func openSource(cfg sourceConfig) (audio.Source, string, error) {
	if cfg.demo != "" {
		return demoSource(cfg)
	}

	if cfg.path == "" {
		return nil, "", fmt.Errorf("either -in or -demo is required")
	}

	enc, encBits, err := audio.ParseEncoding(cfg.encoding)
	if err != nil {
		cfg.warn(fmt.Sprintf("%v; falling back to float", err))
	}

	if encBits == 0 {
		encBits = cfg.bits
	}

	opts := []audio.FileOption{
		audio.WithRate(cfg.rate),
		audio.WithEncoding(enc),
		audio.WithBitDepth(encBits),
		audio.WithWarnHandler(cfg.warn),
	}

	if cfg.big {
		opts = append(opts, audio.WithBigEndian())
	}

	if cfg.format != "" {
		switch strings.ToLower(cfg.format) {
		case "raw":
			opts = append(opts, audio.WithFormat(audio.FormatRaw))
		case "ascii":
			opts = append(opts, audio.WithFormat(audio.FormatASCII))
		default:
			return nil, "", fmt.Errorf("unknown format %q (raw or ascii)", cfg.format)
		}
	}

	f, err := audio.Open(cfg.path, opts...)
	if err != nil {
		return nil, "", err
	}

	label := fmt.Sprintf("%s (%s", f.Name(), f.Format())
	if f.Format() == audio.FormatRaw {
		label += fmt.Sprintf(", %s %d bit", f.Encoding(), f.BitDepth())
	}

	return f, label + ")", nil
}

func demoSource(cfg sourceConfig) (audio.Source, string, error) {
	n := int(cfg.seconds * cfg.rate)

	g := signal.NewGenerator(core.WithSampleRate(cfg.rate))

	var (
		samples []float64
		label   string
		err     error
	)

	switch strings.ToLower(cfg.demo) {
	case "sine":
		samples, err = g.Sine(cfg.freq, 1, n)
		label = fmt.Sprintf("demo sine %g Hz", cfg.freq)
	case "noise":
		samples, err = g.WhiteNoise(1, n)
		label = "demo white noise"
	default:
		return nil, "", fmt.Errorf("unknown demo signal %q (sine or noise)", cfg.demo)
	}

	if err != nil {
		return nil, "", err
	}

	buf, err := audio.NewBuffer(samples, cfg.rate)
	if err != nil {
		return nil, "", err
	}

	return buf, label, nil
}

func printSummary(src audio.Source, label string, policy frame.Policy, geom frame.Geometry,
	winType window.Type, norm window.Normalization, beta float64,
	logEnergy []float64, coeffs [][]float64,
) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	row(tw, "Source", "%s", label)
	row(tw, "Rate", "%g Hz", src.Rate())
	row(tw, "Samples", "%d (%.3f s)", len(src.Samples()), float64(len(src.Samples()))/src.Rate())
	row(tw, "Shift", "%g s = %d samples%s", policy.Shift, geom.Shift, exactMark(geom.ShiftExact))
	row(tw, "Width", "%g s = %d samples%s", policy.Width, geom.Width, exactMark(geom.WidthExact))
	row(tw, "Framing", "pad %v, centered %v", policy.Pad, policy.Centered)
	row(tw, "Frames", "%d", len(logEnergy))

	winLabel := fmt.Sprintf("%s, normalization %s", winType, norm)
	if winType == window.TypeKaiser {
		winLabel = fmt.Sprintf("%s (beta %g), normalization %s", winType, beta, norm)
	}

	row(tw, "Window", "%s", winLabel)

	if geom.Width > 0 {
		genOpts := []window.Option{window.WithNormalization(norm)}
		if !math.IsNaN(beta) {
			genOpts = append(genOpts, window.WithBeta(beta))
		}

		if wc, err := window.Generate(winType, geom.Width, genOpts...); err == nil {
			a := window.Analyze(wc)
			row(tw, "Coherent gain", "%.6f", a.CoherentGain)
			row(tw, "ENBW", "%.4f bins", a.ENBW)
		}
	}

	if len(logEnergy) > 0 {
		lo, mean, hi := stats(logEnergy)
		row(tw, "Log energy", "min %.3f, mean %.3f, max %.3f", lo, mean, hi)
	}

	if len(coeffs) > 0 {
		mid := len(coeffs) / 2
		row(tw, "MFCC", "%d frames x %d coefficients", len(coeffs), len(coeffs[0]))
		row(tw, fmt.Sprintf("MFCC frame %d", mid), "%s", formatRow(coeffs[mid], 6))
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func row(tw *tabwriter.Writer, key, format string, args ...any) {
	_, _ = fmt.Fprintf(tw, key+"\t"+format+"\n", args...)
}

func exactMark(exact bool) string {
	if exact {
		return ""
	}

	return " (rounded)"
}

func stats(v []float64) (lo, mean, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)

	sum := 0.0
	for _, x := range v {
		if x < lo {
			lo = x
		}

		if x > hi {
			hi = x
		}

		sum += x
	}

	return lo, sum / float64(len(v)), hi
}

func formatRow(values []float64, limit int) string {
	if len(values) < limit {
		limit = len(values)
	}

	parts := make([]string, limit)
	for i := range parts {
		parts[i] = fmt.Sprintf("%.3f", values[i])
	}

	s := strings.Join(parts, " ")
	if limit < len(values) {
		s += " ..."
	}

	return s
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
