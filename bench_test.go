package apfactorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmarkGamma(t *testing.T) {
	precs := []int{30, 60, 120}
	results, err := Benchmark(MustParseArgument("-0.5"), precs)
	require.NoError(t, err)
	require.Len(t, results, len(precs))
	for i, r := range results {
		assert.Equal(t, precs[i], r.Prec)
		assert.GreaterOrEqual(t, r.Elapsed.Nanoseconds(), int64(0))
	}
}

func TestBenchmarkRejectsPole(t *testing.T) {
	_, err := Benchmark(IntArgument(-2), []int{30})
	var pole *PoleError
	require.ErrorAs(t, err, &pole)
}

func TestBenchmarkRejectsBadPrecision(t *testing.T) {
	_, err := Benchmark(MustParseArgument("-0.5"), []int{30, 0})
	var cfg *ConfigError
	require.ErrorAs(t, err, &cfg)
	assert.Equal(t, 0, cfg.Value)
}
