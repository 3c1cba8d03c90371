package audio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Format identifies the on-disk layout of an audio file.
type Format int

const (
	// FormatRaw is headerless PCM.
	FormatRaw Format = iota
	// FormatASCII is whitespace-separated decimal sample values.
	FormatASCII
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatASCII:
		return "ascii"
	}

	return "unknown"
}

// Encoding identifies how raw samples are stored.
type Encoding int

const (
	// EncFloat is IEEE floating point, 32 or 64 bit.
	EncFloat Encoding = iota
	// EncSigned is two's-complement integer, 8 to 64 bit.
	EncSigned
	// EncUnsigned is unsigned integer, 8 to 64 bit.
	EncUnsigned
	// EncASCII routes decoding through the ASCII reader regardless of the
	// inferred format.
	EncASCII
)

func (e Encoding) String() string {
	switch e {
	case EncFloat:
		return "float"
	case EncSigned:
		return "integer"
	case EncUnsigned:
		return "unsigned"
	case EncASCII:
		return "ascii"
	}

	return "unknown"
}

// ParseEncoding maps an encoding name or its single-letter alias to an
// Encoding and, where the name implies one, a bit depth (0 keeps the
// configured depth). "short" and "char" mean unsigned 16 and 8 bit;
// "double" means 64-bit float.
//
// Unknown names return EncFloat together with an error wrapping
// ErrUnknownEncoding, so callers can report the name and continue with the
// float fallback.
func ParseEncoding(name string) (Encoding, int, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "f", "float":
		return EncFloat, 0, nil
	case "d", "double":
		return EncFloat, 64, nil
	case "s", "short":
		return EncUnsigned, 16, nil
	case "c", "char":
		return EncUnsigned, 8, nil
	case "u", "uint", "unsigned", "unsigned integer":
		return EncUnsigned, 0, nil
	case "i", "integer":
		return EncSigned, 0, nil
	case "a", "ascii":
		return EncASCII, 0, nil
	}

	return EncFloat, 0, errUnknownEncoding(name)
}

type fileConfig struct {
	rate      float64
	encoding  Encoding
	bits      int
	bigEndian bool
	format    Format
	formatSet bool
	emphasis  float64
	warn      func(string)
}

// FileOption configures Open.
type FileOption func(*fileConfig)

// WithRate sets the sample rate recorded for the file.
func WithRate(hz float64) FileOption {
	return func(c *fileConfig) {
		c.rate = hz
	}
}

// WithEncoding sets the raw sample encoding.
func WithEncoding(enc Encoding) FileOption {
	return func(c *fileConfig) {
		c.encoding = enc
	}
}

// WithBitDepth sets the raw bits per sample.
func WithBitDepth(bits int) FileOption {
	return func(c *fileConfig) {
		c.bits = bits
	}
}

// WithBigEndian reads raw samples big endian instead of little endian.
func WithBigEndian() FileOption {
	return func(c *fileConfig) {
		c.bigEndian = true
	}
}

// WithFormat overrides the extension-based format inference.
func WithFormat(f Format) FileOption {
	return func(c *fileConfig) {
		c.format = f
		c.formatSet = true
	}
}

// WithEmphasisCoefficient sets the pre-emphasis coefficient the file will
// use, replacing DefaultEmphasis.
func WithEmphasisCoefficient(a float64) FileOption {
	return func(c *fileConfig) {
		c.emphasis = a
	}
}

// WithWarnHandler routes recoverable decode warnings to fn. The default
// discards them.
func WithWarnHandler(fn func(string)) FileOption {
	return func(c *fileConfig) {
		if fn != nil {
			c.warn = fn
		}
	}
}

// File is a file-backed Source.
type File struct {
	sourceState

	name     string
	format   Format
	encoding Encoding
	bits     int
}

// Open reads and decodes the file at path.
//
// The format comes from the extension unless WithFormat overrides it:
// ".raw" is raw PCM, ".txt" and ".ascii" are ASCII, and any other extension
// is reported through the warning handler and read as raw. Raw decoding
// defaults to 32-bit little-endian floats at 48 kHz. A trailing partial
// sample is dropped with a warning.
func Open(path string, opts ...FileOption) (*File, error) {
	cfg := fileConfig{
		rate:     48000,
		encoding: EncFloat,
		bits:     32,
		emphasis: DefaultEmphasis,
		warn:     func(string) {},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.rate <= 0 {
		return nil, errRate(cfg.rate)
	}

	if !cfg.formatSet {
		ext := strings.ToLower(filepath.Ext(path))
		switch ext {
		case ".raw":
			cfg.format = FormatRaw
		case ".txt", ".ascii":
			cfg.format = FormatASCII
		default:
			cfg.warn(fmt.Sprintf("unknown extension %q; assuming raw", ext))
			cfg.format = FormatRaw
		}
	}

	if cfg.encoding == EncASCII {
		cfg.format = FormatASCII
	}

	if cfg.format == FormatRaw {
		if err := validateRawLayout(cfg.encoding, cfg.bits); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	f := &File{
		name:     path,
		format:   cfg.format,
		encoding: cfg.encoding,
		bits:     cfg.bits,
	}
	f.rate = cfg.rate
	f.emphasis = cfg.emphasis

	if cfg.format == FormatASCII {
		f.encoding = EncASCII
		f.bits = 0

		f.samples, err = decodeASCII(data)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		return f, nil
	}

	f.samples = decodeRaw(data, cfg.encoding, cfg.bits, cfg.bigEndian, cfg.warn)

	return f, nil
}

// Name returns the path the file was opened from.
func (f *File) Name() string {
	return f.name
}

// Format returns the decoded format.
func (f *File) Format() Format {
	return f.format
}

// Encoding returns the sample encoding.
func (f *File) Encoding() Encoding {
	return f.encoding
}

// BitDepth returns the bits per sample, or 0 for ASCII files.
func (f *File) BitDepth() int {
	return f.bits
}

// Duration returns the decoded length in seconds.
func (f *File) Duration() float64 {
	if f.rate <= 0 {
		return 0
	}

	return float64(len(f.samples)) / f.rate
}

// Clear drops the decoded samples and resets all bookkeeping; the file
// reports unloaded afterwards.
func (f *File) Clear() {
	f.sourceState = sourceState{}
	f.name = ""
	f.format = FormatRaw
	f.encoding = EncFloat
	f.bits = 0
}

// Close is an alias for Clear.
func (f *File) Close() error {
	f.Clear()

	return nil
}

func validateRawLayout(enc Encoding, bits int) error {
	switch enc {
	case EncFloat:
		if bits != 32 && bits != 64 {
			return errBitDepth(enc, bits)
		}
	case EncSigned, EncUnsigned:
		switch bits {
		case 8, 16, 32, 64:
		default:
			return errBitDepth(enc, bits)
		}
	default:
		return errEncoding(enc)
	}

	return nil
}

// decodeRaw reads fixed-size samples at face value; integers are not
// rescaled.
func decodeRaw(data []byte, enc Encoding, bits int, bigEndian bool, warn func(string)) []float64 {
	size := bits / 8

	n := len(data) / size
	if rem := len(data) % size; rem != 0 {
		warn(fmt.Sprintf("dropping %d trailing bytes (partial sample)", rem))
	}

	var order binary.ByteOrder = binary.LittleEndian
	if bigEndian {
		order = binary.BigEndian
	}

	out := make([]float64, n)
	for i := range out {
		chunk := data[i*size : (i+1)*size]

		switch enc {
		case EncFloat:
			if bits == 32 {
				out[i] = float64(math.Float32frombits(order.Uint32(chunk)))
			} else {
				out[i] = math.Float64frombits(order.Uint64(chunk))
			}
		case EncSigned:
			switch bits {
			case 8:
				out[i] = float64(int8(chunk[0]))
			case 16:
				out[i] = float64(int16(order.Uint16(chunk)))
			case 32:
				out[i] = float64(int32(order.Uint32(chunk)))
			default:
				out[i] = float64(int64(order.Uint64(chunk)))
			}
		case EncUnsigned:
			switch bits {
			case 8:
				out[i] = float64(chunk[0])
			case 16:
				out[i] = float64(order.Uint16(chunk))
			case 32:
				out[i] = float64(order.Uint32(chunk))
			default:
				out[i] = float64(order.Uint64(chunk))
			}
		}
	}

	return out
}

func decodeASCII(data []byte) ([]float64, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Split(bufio.ScanWords)

	var out []float64

	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("ascii sample %d: %w", len(out), err)
		}

		out = append(out, v)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
