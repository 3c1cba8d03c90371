// Package window generates analysis window coefficients and applies them to
// framed sample matrices.
package window

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeBartlett
	TypeBlackman
	TypeHamming
	TypeHanning
	TypeKaiser
	TypeTrapezoid
)

var typeNames = map[Type]string{
	TypeRectangular: "rectangular",
	TypeBartlett:    "bartlett",
	TypeBlackman:    "blackman",
	TypeHamming:     "hamming",
	TypeHanning:     "hanning",
	TypeKaiser:      "kaiser",
	TypeTrapezoid:   "trapezoid",
}

// Types returns all supported window types in declaration order.
func Types() []Type {
	return []Type{
		TypeRectangular,
		TypeBartlett,
		TypeBlackman,
		TypeHamming,
		TypeHanning,
		TypeKaiser,
		TypeTrapezoid,
	}
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "unknown"
}

// ParseType maps a lowercase window name to its Type.
func ParseType(name string) (Type, error) {
	for _, t := range Types() {
		if strings.EqualFold(name, typeNames[t]) {
			return t, nil
		}
	}

	return 0, errUnknownTypeName(name)
}

// Normalization selects how generated coefficients are scaled.
type Normalization int

const (
	// NormNone leaves coefficients as generated.
	NormNone Normalization = iota
	// NormSum divides by the coefficient sum, so the result sums to one.
	NormSum
	// NormSquareSum divides by the root of the squared-coefficient sum, so
	// the squared result sums to one.
	NormSquareSum
)

var normNames = map[Normalization]string{
	NormNone:      "none",
	NormSum:       "sum",
	NormSquareSum: "squareSum",
}

func (n Normalization) String() string {
	if name, ok := normNames[n]; ok {
		return name
	}

	return "unknown"
}

// ParseNormalization maps a normalization name to its value.
func ParseNormalization(name string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return NormNone, nil
	case "sum":
		return NormSum, nil
	case "squaresum", "square_sum", "square sum":
		return NormSquareSum, nil
	}

	return 0, errUnknownNormName(name)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	beta float64
	norm Normalization
}

func defaultConfig() config {
	return config{beta: math.NaN()}
}

// WithBeta sets the Kaiser shape parameter.
func WithBeta(v float64) Option {
	return func(c *config) {
		c.beta = v
	}
}

// WithNormalization selects coefficient scaling.
func WithNormalization(n Normalization) Option {
	return func(c *config) {
		c.norm = n
	}
}

// Generate returns window coefficients of the given length.
//
// Windows are evaluated in symmetric form over x = n/(length-1). Kaiser
// windows require WithBeta; all other types ignore it.
func Generate(t Type, length int, opts ...Option) ([]float64, error) {
	if length <= 0 {
		return nil, errLength(length)
	}

	if _, ok := typeNames[t]; !ok {
		return nil, errUnknownType(t)
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if t == TypeKaiser {
		if math.IsNaN(cfg.beta) {
			return nil, ErrBetaRequired
		}

		if cfg.beta < 0 {
			return nil, errBeta(cfg.beta)
		}
	}

	out := make([]float64, length)
	for i := range out {
		x := samplePosition(i, length)
		out[i] = evalWindow(t, x, cfg)
	}

	if err := Normalize(out, cfg.norm); err != nil {
		return nil, err
	}

	return out, nil
}

// Normalize rescales coeffs in place according to the selected normalization.
// An all-zero vector cannot be normalized.
func Normalize(coeffs []float64, norm Normalization) error {
	switch norm {
	case NormNone:
		return nil
	case NormSum:
		sum := 0.0
		for _, c := range coeffs {
			sum += c
		}

		if sum == 0 {
			return ErrZeroNorm
		}

		vecmath.ScaleBlock(coeffs, coeffs, 1/sum)

		return nil
	case NormSquareSum:
		sumSquares := 0.0
		for _, c := range coeffs {
			sumSquares += c * c
		}

		if sumSquares == 0 {
			return ErrZeroNorm
		}

		vecmath.ScaleBlock(coeffs, coeffs, 1/math.Sqrt(sumSquares))

		return nil
	default:
		return errUnknownNorm(norm)
	}
}

// Apply multiplies every frame elementwise by the coefficient vector and
// returns the result as a new matrix. The input frames are not modified.
func Apply(frames [][]float64, coeffs []float64) ([][]float64, error) {
	out := make([][]float64, len(frames))
	if len(frames) == 0 {
		return out, nil
	}

	width := len(coeffs)
	backing := make([]float64, len(frames)*width)

	for i, row := range frames {
		if len(row) != width {
			return nil, errMismatchedLength
		}

		dst := backing[i*width : (i+1)*width]
		vecmath.MulBlock(dst, row, coeffs)
		out[i] = dst
	}

	return out, nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

var (
	hanningCoeffs  = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

func evalWindow(t Type, x float64, cfg config) float64 {
	switch t {
	case TypeRectangular:
		return 1
	case TypeBartlett:
		return 1 - math.Abs(2*x-1)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeHanning:
		return cosineFromCoeffs(x, hanningCoeffs)
	case TypeKaiser:
		return kaiserAt(x, cfg.beta)
	case TypeTrapezoid:
		return trapezoidAt(x)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}

	return float64(n) / float64(size-1)
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

func trapezoidAt(x float64) float64 {
	switch {
	case x < 0.25:
		return 4 * x
	case x <= 0.75:
		return 1
	default:
		return 4 * (1 - x)
	}
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
