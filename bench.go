package apfactorial

import "time"

// BenchResult is one timed gamma-path evaluation.
type BenchResult struct {
	Prec    int
	Elapsed time.Duration
}

// Benchmark times Gamma(x+1) at each precision in precs, after a warmup run
// at the default precision. The argument must not sit on a pole and every
// precision must be positive; both are rejected before timing starts.
func Benchmark(x Argument, precs []int) ([]BenchResult, error) {
	if n, ok := x.Int(); ok && n.Sign() < 0 {
		return nil, &PoleError{X: n}
	}
	for _, p := range precs {
		if p < 1 {
			return nil, &ConfigError{Param: "precision", Value: p}
		}
	}

	// Warmup: constants like pi and log(2) are cached inside MPFR, so the
	// first gamma call pays a one-time cost the measurements should not.
	if _, err := gammaFactorial(x, DefaultPrec); err != nil {
		return nil, err
	}

	results := make([]BenchResult, 0, len(precs))
	for _, p := range precs {
		start := time.Now()
		if _, err := gammaFactorial(x, p); err != nil {
			return nil, err
		}
		results = append(results, BenchResult{Prec: p, Elapsed: time.Since(start)})
	}
	return results, nil
}
