package main

// Extended factorial evaluator.
//
// Usage examples:
//   factorial --x -0.5
//   factorial --x -3.7 --prec 80
//   factorial --x 150
//   factorial --bench --x -0.5 --prec-list 30,60,120,240
//
// Non-negative integers below the threshold are computed exactly; everything
// else (and everything at or above the threshold) goes through Gamma(x+1) at
// the requested decimal precision. Negative integers are poles and fail.
//
// SPDX-License-Identifier: MIT

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	ap "github.com/lukaszgryglicki/apfactorial"
)

var (
	flagX         string
	flagPrec      int
	flagThreshold int
	flagBench     bool
	flagPrecList  []int
	flagConfig    string
	flagVerbose   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "factorial",
	Short: "Analytically continued factorial via the Gamma function",
	Long: `Computes x! for any real x: exact big-integer factorials for small
non-negative integers, arbitrary-precision Gamma(x+1) everywhere else.
Negative integers are Gamma poles and are rejected.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagX, "x", "-0.5", "input x for x! (supports real numbers)")
	rootCmd.Flags().IntVar(&flagPrec, "prec", ap.DefaultPrec, "decimal digits for gamma-path evaluation")
	rootCmd.Flags().IntVar(&flagThreshold, "threshold", ap.DefaultThreshold, "integers below this take the exact path")
	rootCmd.Flags().BoolVar(&flagBench, "bench", false, "benchmark Gamma(x+1) over --prec-list instead of evaluating")
	rootCmd.Flags().IntSliceVar(&flagPrecList, "prec-list", []int{30, 60, 120, 240}, "precision list for --bench (decimal digits)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "optional TOML file with default prec/threshold")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}

func initLogger() error {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	if flagVerbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = config.Build()
	return err
}

func run(cmd *cobra.Command, args []string) error {
	if err := initLogger(); err != nil {
		return err
	}
	defer logger.Sync()

	opts := ap.DefaultOptions()
	if flagConfig != "" {
		cfg, err := loadConfig(flagConfig)
		if err != nil {
			return err
		}
		if cfg.Factorial.Prec > 0 {
			opts.Prec = cfg.Factorial.Prec
		}
		if cfg.Factorial.Threshold > 0 {
			opts.Threshold = cfg.Factorial.Threshold
		}
		logger.Debug("loaded config", zap.String("path", flagConfig),
			zap.Int("prec", opts.Prec), zap.Int("threshold", opts.Threshold))
	}
	// Explicit flags win over the config file.
	if cmd.Flags().Changed("prec") {
		opts.Prec = flagPrec
	}
	if cmd.Flags().Changed("threshold") {
		opts.Threshold = flagThreshold
	}

	x, err := ap.ParseArgument(flagX)
	if err != nil {
		return err
	}

	if flagBench {
		return runBench(x, flagPrecList)
	}

	logger.Debug("evaluating",
		zap.String("x", x.String()),
		zap.Int("prec", opts.Prec),
		zap.Int("threshold", opts.Threshold))
	res, err := ap.Evaluate(x, opts)
	if err != nil {
		return err
	}
	logger.Debug("evaluated", zap.Stringer("path", res.Path))
	fmt.Printf("%s! = %s\n", x, res)
	return nil
}

func runBench(x ap.Argument, precs []int) error {
	fmt.Printf("[Benchmark] Evaluating Gamma(x+1) at x=%s for precisions: %v\n", x, precs)
	results, err := ap.Benchmark(x, precs)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Printf("  p=%4d digits  ->  %.6f s\n", r.Prec, r.Elapsed.Seconds())
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
