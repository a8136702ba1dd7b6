package apfactorial

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper: parse with test precision
func tp(s string) *Real { return MustParse(s, 256) }

// helper: parse decimal string (from StringFixed) to float64
func f64(s string) float64 {
	// strings may be like "+0.0000" — trim leading '+'
	s = strings.TrimSpace(s)
	if len(s) > 0 && s[0] == '+' {
		s = s[1:]
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// helper: |a-b| <= tol
func equalApprox(a, b *Real, tol float64) bool {
	diff := Sub(a, b)
	return math.Abs(f64(diff.StringFixed(60))) <= tol
}

func TestParseFormatRoundTrip(t *testing.T) {
	tests := []string{
		"0",
		"1",
		"-1",
		"3.1415926535",
		"-3.7",
		"2.5e-10",
		"1e3",
	}
	for _, s := range tests {
		r, err := Parse(s, 256)
		require.NoError(t, err, "Parse %q", s)
		_ = r.StringFixed(30)      // ensure formatting works
		_ = r.StringScientific(20) // ensure sci formatting works
	}

	_, err := Parse("not-a-number", 256)
	require.Error(t, err)
}

func TestBasicAlgebra(t *testing.T) {
	x := tp("3.25")
	negx := Neg(x)
	sum := Add(x, negx)
	assert.True(t, equalApprox(sum, tp("0"), 1e-50), "x + (-x) != 0, got %s", sum.StringFixed(20))

	one := tp("1")
	prod := Mul(x, Div(one, x))
	assert.True(t, equalApprox(prod, one, 1e-48), "x * (1/x) != 1, got %s", prod.StringFixed(20))

	el := Exp(Log(x))
	assert.True(t, equalApprox(el, x, 1e-48), "exp(log(x)) != x, got %s", el.StringFixed(20))
}

func TestSignAndIsInteger(t *testing.T) {
	assert.Equal(t, 1, tp("2.5").Sign())
	assert.Equal(t, -1, tp("-2.5").Sign())
	assert.Equal(t, 0, tp("0").Sign())

	assert.True(t, tp("4").IsInteger())
	assert.True(t, tp("-4").IsInteger())
	assert.False(t, tp("4.5").IsInteger())
}

func TestGammaSmallIntegers(t *testing.T) {
	// Gamma(n) = (n-1)! on the positive integers.
	tests := []struct {
		in, want string
	}{
		{"1", "1"},
		{"2", "1"},
		{"5", "24"},
		{"11", "3628800"},
	}
	for _, tc := range tests {
		g := Gamma(tp(tc.in))
		got := strings.TrimPrefix(g.StringFixed(0), "+")
		assert.Equal(t, tc.want, got, "Gamma(%s)", tc.in)
	}
}

func TestGammaHalf(t *testing.T) {
	// Gamma(1/2) = sqrt(pi)
	prec := uint(256)
	g := Gamma(MustParse("0.5", prec))
	want := Sqrt(Pi(prec))
	assert.True(t, equalApprox(g, want, 1e-55),
		"Gamma(1/2) != sqrt(pi): %s vs %s", g.StringFixed(40), want.StringFixed(40))
}

func TestZetaKnownValues(t *testing.T) {
	prec := uint(256)

	// zeta(-1) = -1/12
	z := Zeta(MustParse("-1", prec))
	want := Div(MustParse("-1", prec), MustParse("12", prec))
	assert.True(t, equalApprox(z, want, 1e-55), "zeta(-1) != -1/12, got %s", z.StringFixed(20))

	// zeta(0) = -1/2
	z0 := Zeta(MustParse("0", prec))
	assert.True(t, equalApprox(z0, MustParse("-0.5", prec), 1e-55), "zeta(0) != -1/2, got %s", z0.StringFixed(20))

	// zeta(2) = pi^2/6
	z2 := Zeta(MustParse("2", prec))
	pi := Pi(prec)
	want2 := Div(Mul(pi, pi), MustParse("6", prec))
	assert.True(t, equalApprox(z2, want2, 1e-55), "zeta(2) != pi^2/6, got %s", z2.StringFixed(20))
}

func TestFactorialInt(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "1"},
		{1, "1"},
		{5, "120"},
		{20, "2432902008176640000"},
		{50, "30414093201713378043612608166064768844377641568960512000000000000"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FactorialInt(tc.n).String(), "%d!", tc.n)
	}
}

func TestDigitsToBits(t *testing.T) {
	// 50 digits needs at least 50*log2(10) ~ 167 bits plus guard.
	assert.GreaterOrEqual(t, DigitsToBits(50), uint(167))
	assert.Less(t, DigitsToBits(50), uint(200))
	// degenerate inputs still yield a usable precision
	assert.GreaterOrEqual(t, DigitsToBits(0), uint(4))
}

func TestSetPrecAndClone(t *testing.T) {
	r := MustParse("1.25", 128)
	require.Equal(t, uint(128), r.Prec())
	c := r.Clone()
	r.SetPrec(256)
	assert.Equal(t, uint(256), r.Prec())
	assert.Equal(t, uint(128), c.Prec())
	assert.True(t, equalApprox(r, c, 1e-30))
}
