package apfactorial

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd"
)

// Defaults for Options, matching the historical behavior of the evaluator.
const (
	DefaultPrec      = 50
	DefaultThreshold = 1000

	// Floor for the gamma path; lower requested precisions are clamped up
	// so the approximation never degenerates. The exact path ignores it.
	minGammaPrec = 20
)

// Argument is a real number held as an exact decimal. Whether it denotes an
// integer is decided from the decimal representation itself, never from a
// floating-point tolerance comparison.
type Argument struct {
	dec *apd.Decimal
	str string
}

// ParseArgument parses a decimal literal ("5", "-3.7", "2.5e-10").
func ParseArgument(s string) (Argument, error) {
	s = strings.TrimSpace(s)
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Argument{}, fmt.Errorf("apfactorial: invalid argument %q: %w", s, err)
	}
	return Argument{dec: d, str: s}, nil
}

// MustParseArgument panics on error.
func MustParseArgument(s string) Argument {
	a, err := ParseArgument(s)
	if err != nil {
		panic(err)
	}
	return a
}

// IntArgument builds an argument from a declared integer, preserving the
// representation distinction the parser cannot recover from text alone.
func IntArgument(n int64) Argument {
	return Argument{dec: apd.New(n, 0), str: strconv.FormatInt(n, 10)}
}

// IsInteger reports whether the argument denotes an integer value
// ("5", "5.0" and "1e3" do; "0.5" and "-3.7" do not).
func (a Argument) IsInteger() bool {
	_, ok := a.Int()
	return ok
}

// Int returns the exact integer value of the argument, or false when the
// argument has a nonzero fractional part.
func (a Argument) Int() (*big.Int, bool) {
	if a.dec == nil {
		return nil, false
	}
	// apd keeps the sign separate: Coeff is the absolute coefficient.
	coeff := new(big.Int).Set(&a.dec.Coeff)
	if a.dec.Negative {
		coeff.Neg(coeff)
	}
	exp := int64(a.dec.Exponent)
	if exp >= 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
		return coeff.Mul(coeff, scale), true
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(-exp), nil)
	quo, rem := new(big.Int).QuoRem(coeff, scale, new(big.Int))
	if rem.Sign() != 0 {
		return nil, false
	}
	return quo, true
}

// Sign returns -1, 0 or +1.
func (a Argument) Sign() int {
	if a.dec == nil {
		return 0
	}
	return a.dec.Sign()
}

func (a Argument) String() string { return a.str }

// Options configures a single evaluation. Use DefaultOptions as the starting
// point; both fields must be positive.
type Options struct {
	Prec      int // significant decimal digits on the gamma path
	Threshold int // non-negative integers below this take the exact path
}

// DefaultOptions returns Prec=50, Threshold=1000.
func DefaultOptions() Options {
	return Options{Prec: DefaultPrec, Threshold: DefaultThreshold}
}

// Path tags which evaluation strategy produced a Result.
type Path int

const (
	// PathExact: big-integer product, mathematically exact.
	PathExact Path = iota + 1
	// PathGamma: Gamma(x+1) at the configured working precision.
	PathGamma
)

func (p Path) String() string {
	switch p {
	case PathExact:
		return "exact"
	case PathGamma:
		return "gamma"
	}
	return "unknown"
}

// Result is a tagged factorial value: Int on the exact path, Approx (with
// its effective digit count) on the gamma path.
type Result struct {
	Path   Path
	Int    *big.Int
	Approx *Real
	Digits int
}

// Exact reports whether the result came from the exact path.
func (r *Result) Exact() bool { return r.Path == PathExact }

// String renders all digits of an exact result, or scientific notation with
// the effective number of significant digits for an approximate one.
func (r *Result) String() string {
	if r.Exact() {
		return r.Int.String()
	}
	// Digits counts significant digits; the scientific formatter counts
	// places after the point, so one fewer prints exactly Digits of them.
	return r.Approx.StringScientific(r.Digits - 1)
}

// Evaluate computes x! analytically continued:
//
//   - x a non-negative integer below opts.Threshold: exact big-integer
//     factorial, Prec ignored.
//   - x a non-negative integer at or above the threshold: Gamma(x+1) at
//     max(Prec, 20) decimal digits.
//   - x a negative integer: *PoleError.
//   - x non-integer: Gamma(x+1) at max(Prec, 20) decimal digits.
//
// Configuration is validated before any computation; Prec < 1 or
// Threshold < 1 yields a *ConfigError. Every call works on its own MPFR
// values at its own precision, so concurrent calls never interfere.
func Evaluate(x Argument, opts Options) (*Result, error) {
	if opts.Prec < 1 {
		return nil, &ConfigError{Param: "precision", Value: opts.Prec}
	}
	if opts.Threshold < 1 {
		return nil, &ConfigError{Param: "threshold", Value: opts.Threshold}
	}

	if n, ok := x.Int(); ok {
		if n.Sign() < 0 {
			return nil, &PoleError{X: n}
		}
		if n.Cmp(big.NewInt(int64(opts.Threshold))) < 0 {
			return &Result{Path: PathExact, Int: FactorialInt(n.Uint64())}, nil
		}
	}

	return gammaFactorial(x, opts.Prec)
}

// gammaFactorial computes Gamma(x+1) at max(prec, minGammaPrec) digits.
func gammaFactorial(x Argument, prec int) (*Result, error) {
	digits := prec
	if digits < minGammaPrec {
		digits = minGammaPrec
	}
	bits := DigitsToBits(digits)

	xr, err := Parse(x.String(), bits)
	if err != nil {
		return nil, err
	}
	defer xr.Close()

	g := New(bits)
	g.Gamma(g.AddUint(xr, 1))
	return &Result{Path: PathGamma, Approx: g, Digits: digits}, nil
}
