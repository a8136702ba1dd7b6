// Package apfactorial extends the factorial to real arguments by analytic
// continuation: exact big-integer factorials for small non-negative integers,
// Gamma(x+1) at a configurable decimal precision everywhere else, and pole
// detection at the negative integers.
//
// It wraps the GNU MPFR/GMP libraries via cgo and exposes a Go-friendly API
// with parsing/formatting from/to strings and per-value precision.
//
// Build requirements:
//   - libmpfr, libgmp (headers + libs)
//     Debian/Ubuntu: sudo apt-get install -y libmpfr-dev libgmp-dev build-essential
//     macOS/Homebrew: brew install mpfr gmp
//
// Minimal usage:
//
//	res, err := apfactorial.Evaluate(apfactorial.MustParseArgument("-0.5"), apfactorial.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res) // 1.7724538509055160...e+00 (sqrt(pi))
//
// SPDX-License-Identifier: MIT
package apfactorial

/*
#cgo CFLAGS: -O2
#cgo LDFLAGS: -lmpfr -lgmp
#include <stdlib.h>
#include <string.h>
#include <gmp.h>
#include <mpfr.h>

// Helpers to format MPFR values to C strings we can return to Go.
static char* apf_mpfr_to_str_fixed(mpfr_srcptr x, int digits) {
    if (digits < 0) digits = 0;
    int n = mpfr_snprintf(NULL, 0, "%.*Rf", digits, x);
    if (n < 0) return NULL;
    char *buf = (char*)malloc((size_t)n + 1);
    if (!buf) return NULL;
    if (mpfr_snprintf(buf, (size_t)n + 1, "%.*Rf", digits, x) < 0) {
        free(buf);
        return NULL;
    }
    return buf;
}

static char* apf_mpfr_to_str_sci(mpfr_srcptr x, int digits) {
    if (digits < 1) digits = 1;
    int n = mpfr_snprintf(NULL, 0, "%.*Re", digits, x);
    if (n < 0) return NULL;
    char *buf = (char*)malloc((size_t)n + 1);
    if (!buf) return NULL;
    if (mpfr_snprintf(buf, (size_t)n + 1, "%.*Re", digits, x) < 0) {
        free(buf);
        return NULL;
    }
    return buf;
}

// mpfr_sgn is a macro; cgo can only call functions.
static int apf_sgn(mpfr_srcptr x) {
    return mpfr_sgn(x);
}

// Exact n! as a decimal string via GMP's divide-and-conquer mpz_fac_ui.
static char* apf_fac_str(unsigned long n) {
    mpz_t z;
    mpz_init(z);
    mpz_fac_ui(z, n);
    char *s = mpz_get_str(NULL, 10, z);
    mpz_clear(z);
    return s;
}

// Strings from mpz_get_str come from GMP's allocator, not malloc.
static void apf_free_gmp_str(char *s) {
    void (*freefunc)(void *, size_t);
    mp_get_memory_functions(NULL, NULL, &freefunc);
    freefunc(s, strlen(s) + 1);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"runtime"
	"strings"
	"unsafe"
)

// default rounding mode (nearest)
var defaultRnd = C.mpfr_rnd_t(C.MPFR_RNDN)

// DigitsToBits converts a decimal-digit precision into MPFR bits, with a
// small guard so the last requested digit survives binary rounding.
func DigitsToBits(digits int) uint {
	if digits < 1 {
		digits = 1
	}
	return uint(math.Ceil(float64(digits)*math.Log2(10))) + 16
}

// Real is an arbitrary-precision real backed by GNU MPFR.
// Use New/Parse; zero value is not usable.
type Real struct {
	x    C.mpfr_t
	prec uint
	init bool
}

// New allocates a value with the given precision in bits (like MPFR). If bits==0, 53 is used.
func New(bits uint) *Real {
	if bits == 0 {
		bits = 53
	}
	r := &Real{prec: bits}
	C.mpfr_init2(&r.x[0], C.mpfr_prec_t(bits))
	r.init = true
	runtime.SetFinalizer(r, func(rr *Real) {
		if rr.init {
			C.mpfr_clear(&rr.x[0])
			rr.init = false
		}
	})
	return r
}

// Close frees C resources.
func (r *Real) Close() {
	if r != nil && r.init {
		C.mpfr_clear(&r.x[0])
		r.init = false
	}
}

// Prec returns precision in bits.
func (r *Real) Prec() uint { return r.prec }

// SetPrec changes precision (rounding value to the new precision).
func (r *Real) SetPrec(bits uint) *Real {
	if !r.init {
		panic("apfactorial: not initialized")
	}
	if bits == 0 {
		bits = 53
	}
	if bits == r.prec {
		return r
	}
	C.mpfr_set_prec(&r.x[0], C.mpfr_prec_t(bits))
	r.prec = bits
	return r
}

// Clone returns a deep copy.
func (r *Real) Clone() *Real {
	out := New(r.prec)
	C.mpfr_set(&out.x[0], &r.x[0], defaultRnd)
	return out
}

// Parse parses a real literal at given precision. Accepts plain decimal
// forms and exponent notation ("1e3", "-3.7", "2.5E-10").
func Parse(s string, prec uint) (*Real, error) {
	r := New(prec)
	if err := r.SetString(s); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// MustParse panics on error.
func MustParse(s string, prec uint) *Real {
	r, err := Parse(s, prec)
	if err != nil {
		panic(err)
	}
	return r
}

// SetString sets r from a decimal string.
func (r *Real) SetString(s string) error {
	if !r.init {
		return errors.New("apfactorial: not initialized")
	}
	cs := C.CString(strings.TrimSpace(s))
	defer C.free(unsafe.Pointer(cs))
	if C.mpfr_set_str(&r.x[0], cs, 10, C.MPFR_RNDN) != 0 {
		return fmt.Errorf("apfactorial: invalid real literal %q", s)
	}
	return nil
}

// SetUint64 sets r = u.
func (r *Real) SetUint64(u uint64) *Real {
	C.mpfr_set_ui(&r.x[0], C.ulong(u), defaultRnd)
	return r
}

// SetInt64 sets r = i.
func (r *Real) SetInt64(i int64) *Real {
	C.mpfr_set_si(&r.x[0], C.long(i), defaultRnd)
	return r
}

// Formatting
func (r *Real) StringFixed(digits int) string {
	if digits < 0 {
		digits = 0
	}
	if !r.init {
		return "(invalid)"
	}
	p := C.apf_mpfr_to_str_fixed(&r.x[0], C.int(digits))
	if p == nil {
		return "<oom>"
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

func (r *Real) StringScientific(digits int) string {
	if digits < 1 {
		digits = 1
	}
	if !r.init {
		return "(invalid)"
	}
	p := C.apf_mpfr_to_str_sci(&r.x[0], C.int(digits))
	if p == nil {
		return "<oom>"
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

// Sign returns -1, 0 or +1 according to the sign of r.
func (r *Real) Sign() int { return int(C.apf_sgn(&r.x[0])) }

// IsInteger reports whether r holds an exact integer value.
func (r *Real) IsInteger() bool { return C.mpfr_integer_p(&r.x[0]) != 0 }

// Algebraic ops (mutating; return receiver for chaining)
func (r *Real) Set(a *Real) *Real { C.mpfr_set(&r.x[0], &a.x[0], defaultRnd); return r }
func (r *Real) Add(a, b *Real) *Real {
	C.mpfr_add(&r.x[0], &a.x[0], &b.x[0], defaultRnd)
	return r
}
func (r *Real) Sub(a, b *Real) *Real {
	C.mpfr_sub(&r.x[0], &a.x[0], &b.x[0], defaultRnd)
	return r
}
func (r *Real) Mul(a, b *Real) *Real {
	C.mpfr_mul(&r.x[0], &a.x[0], &b.x[0], defaultRnd)
	return r
}
func (r *Real) Div(a, b *Real) *Real {
	C.mpfr_div(&r.x[0], &a.x[0], &b.x[0], defaultRnd)
	return r
}
func (r *Real) Neg(a *Real) *Real { C.mpfr_neg(&r.x[0], &a.x[0], defaultRnd); return r }

// AddUint sets r = a + u.
func (r *Real) AddUint(a *Real, u uint) *Real {
	C.mpfr_add_ui(&r.x[0], &a.x[0], C.ulong(u), defaultRnd)
	return r
}

// Elementary/transcendental
func (r *Real) Sqrt(a *Real) *Real { C.mpfr_sqrt(&r.x[0], &a.x[0], defaultRnd); return r }
func (r *Real) Exp(a *Real) *Real  { C.mpfr_exp(&r.x[0], &a.x[0], defaultRnd); return r }
func (r *Real) Log(a *Real) *Real  { C.mpfr_log(&r.x[0], &a.x[0], defaultRnd); return r }

// Gamma sets r = Gamma(a). MPFR handles reflection for negative non-integer
// arguments internally.
func (r *Real) Gamma(a *Real) *Real { C.mpfr_gamma(&r.x[0], &a.x[0], defaultRnd); return r }

// Zeta sets r = zeta(a), the analytically continued Riemann zeta function.
func (r *Real) Zeta(a *Real) *Real { C.mpfr_zeta(&r.x[0], &a.x[0], defaultRnd); return r }

// Pi returns pi at the given precision in bits.
func Pi(bits uint) *Real {
	r := New(bits)
	C.mpfr_const_pi(&r.x[0], defaultRnd)
	return r
}

// Non-mutating convenience wrappers
func Add(a, b *Real) *Real { return New(maxPrec(a, b)).Add(a, b) }
func Sub(a, b *Real) *Real { return New(maxPrec(a, b)).Sub(a, b) }
func Mul(a, b *Real) *Real { return New(maxPrec(a, b)).Mul(a, b) }
func Div(a, b *Real) *Real { return New(maxPrec(a, b)).Div(a, b) }
func Neg(a *Real) *Real    { return New(a.prec).Neg(a) }
func Sqrt(a *Real) *Real   { return New(a.prec).Sqrt(a) }
func Exp(a *Real) *Real    { return New(a.prec).Exp(a) }
func Log(a *Real) *Real    { return New(a.prec).Log(a) }
func Gamma(a *Real) *Real  { return New(a.prec).Gamma(a) }
func Zeta(a *Real) *Real   { return New(a.prec).Zeta(a) }

func maxPrec(a, b *Real) uint {
	p := a.prec
	if b.prec > p {
		p = b.prec
	}
	return p
}

// FactorialInt computes n! exactly using GMP's mpz_fac_ui (divide-and-conquer
// product tree). The result is independent of any precision setting.
func FactorialInt(n uint64) *big.Int {
	p := C.apf_fac_str(C.ulong(n))
	if p == nil {
		panic("apfactorial: mpz_fac_ui allocation failed")
	}
	defer C.apf_free_gmp_str(p)
	z, ok := new(big.Int).SetString(C.GoString(p), 10)
	if !ok {
		panic("apfactorial: mpz_get_str produced an unparsable integer")
	}
	return z
}
