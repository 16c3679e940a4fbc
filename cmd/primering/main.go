// Command primering sweeps ring segments of width 360 and checks that every
// prime inside each segment lies within distance 180 of a divisor of the
// segment end or of a term of the recursive candidate sequence.
//
// Usage:
//
//	primering [max_m [min_m [max_primes_per_range]]]
//
// Positional defaults are 10, 1 and 100000. Exit codes: 0 when every scale
// stays within tolerance, 1 when the pattern is violated, 2 on invalid
// parameters or internal failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/primering/verify"
)

const (
	exitPass     = 0
	exitViolated = 1
	exitFailure  = 2
)

// errPatternViolated marks a completed run whose data broke the conjecture;
// it maps to exit code 1, unlike operational errors.
var errPatternViolated = errors.New("pattern violated")

// runParams collects everything the command line and config file feed into
// the driver. The *Set booleans record which positionals were given, so the
// config file cannot override explicit arguments.
type runParams struct {
	maxM         uint64
	minM         uint64
	maxPrimes    int
	workers      int
	scaleWorkers int
	seed         int64

	maxMSet      bool
	minMSet      bool
	maxPrimesSet bool

	configPath string
	verbose    bool
	quiet      bool
}

var (
	params runParams
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "primering [max_m [min_m [max_primes_per_range]]]",
	Short: "Verify prime proximity to divisors and sequence terms per ring segment",
	Long: `primering verifies, for each scale m in [min_m, max_m], that every prime in
((m-1)*360, m*360] lies within distance 180 of either a divisor of m*360 or
a term of the recursive sequence seeded at (m-1)*360+181.

Segments small enough are verified exhaustively by sieve; beyond the sieve's
reach, probabilistic primality testing takes over and ranges holding more
than max_primes_per_range primes are verified over an evenly spaced sample.`,
	Args:          cobra.MaximumNArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		if params.verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if params.quiet {
			config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runVerification,
}

func init() {
	defaults := verify.DefaultOptions()
	params.maxM = defaults.MaxM
	params.minM = defaults.MinM
	params.maxPrimes = defaults.MaxPrimes

	rootCmd.Flags().IntVar(&params.workers, "workers", defaults.Workers,
		"evaluation goroutines per scale")
	rootCmd.Flags().IntVar(&params.scaleWorkers, "scale-workers", defaults.ScaleWorkers,
		"scales verified concurrently")
	rootCmd.Flags().Int64Var(&params.seed, "seed", 0,
		"sampling seed (0 = fixed default; same seed, same subset)")
	rootCmd.Flags().StringVar(&params.configPath, "config", "",
		"YAML config file (command line takes precedence)")
	rootCmd.PersistentFlags().BoolVarP(&params.verbose, "verbose", "v", false,
		"debug-level logging")
	rootCmd.PersistentFlags().BoolVarP(&params.quiet, "quiet", "q", false,
		"errors only; suppresses progress and the summary table")
}

// parsePositionals fills maxM / minM / maxPrimes from the original
// invocation order: max_m first, then min_m, then the per-range cap.
func parsePositionals(p *runParams, args []string) error {
	if len(args) > 0 {
		v, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: max_m %q: %v", verify.ErrInvalidParameters, args[0], err)
		}
		p.maxM, p.maxMSet = v, true
	}
	if len(args) > 1 {
		v, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: min_m %q: %v", verify.ErrInvalidParameters, args[1], err)
		}
		p.minM, p.minMSet = v, true
	}
	if len(args) > 2 {
		v, err := strconv.ParseInt(args[2], 10, 0)
		if err != nil {
			return fmt.Errorf("%w: max_primes_per_range %q: %v", verify.ErrInvalidParameters, args[2], err)
		}
		p.maxPrimes, p.maxPrimesSet = int(v), true
	}

	return nil
}

func runVerification(cmd *cobra.Command, args []string) error {
	// 1. Resolve parameters: positionals, then config file for the rest.
	if err := parsePositionals(&params, args); err != nil {
		return err
	}
	if params.configPath != "" {
		cfg, err := loadConfig(params.configPath)
		if err != nil {
			return err
		}
		cfg.apply(&params, cmd.Flags())
	}
	if params.workers < 1 || params.scaleWorkers < 1 {
		return fmt.Errorf("%w: workers and scale-workers must be ≥ 1", verify.ErrInvalidParameters)
	}

	// 2. Interrupts cancel between scales; completed results still report.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting verification",
		zap.Uint64("min_m", params.minM),
		zap.Uint64("max_m", params.maxM),
		zap.Int("max_primes_per_range", params.maxPrimes),
		zap.Int("workers", params.workers),
		zap.Int("scale_workers", params.scaleWorkers))

	opts := []verify.Option{
		verify.WithScaleRange(params.minM, params.maxM),
		verify.WithMaxPrimes(params.maxPrimes),
		verify.WithWorkers(params.workers),
		verify.WithScaleWorkers(params.scaleWorkers),
		verify.WithSeed(params.seed),
	}
	if !params.quiet {
		opts = append(opts, verify.WithProgress(logProgress))
	}

	// 3. Run the sweep and report.
	sum, err := verify.Run(ctx, opts...)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// An interrupted sweep proves nothing either way: show what
		// completed, exit as a failure to complete.
		logger.Warn("interrupted; reporting completed scales",
			zap.Int("scales_done", len(sum.Results)))
		printSummary(sum)

		return err
	case errors.Is(err, verify.ErrInternal):
		// Partial data: print what completed, then fail.
		printSummary(sum)

		return err
	default:
		return err
	}

	printSummary(sum)

	if sum.Violated() {
		for _, r := range sum.Results {
			for _, p := range r.Missed {
				logger.Error("prime outside tolerance",
					zap.Uint64("m", r.M), zap.String("prime", p.String()))
			}
		}

		return errPatternViolated
	}
	logger.Info("pattern holds",
		zap.String("run_id", sum.RunID),
		zap.Uint64("primes_checked", sum.PrimesChecked()),
		zap.Duration("elapsed", sum.Elapsed))

	return nil
}

// logProgress emits one line per completed scale.
func logProgress(s verify.Snapshot) {
	mode := "exhaustive"
	if s.Last.Sampled {
		mode = "sampled"
	}
	if s.Last.Failed {
		mode = "FAILED"
	}
	logger.Info("scale verified",
		zap.Uint64("m", s.Last.M),
		zap.Uint64("done", s.ScalesDone),
		zap.Uint64("total", s.ScalesTotal),
		zap.Int("primes", s.Last.PrimeCount),
		zap.Int("within", s.Last.WithinCount),
		zap.String("max_distance", s.Last.MaxDistance.String()),
		zap.String("mode", mode),
		zap.Duration("elapsed", s.Elapsed),
		zap.Duration("estimated_remaining", s.EstimatedRemaining()))
}

// printSummary renders the aligned per-scale table on stdout.
func printSummary(sum *verify.Summary) {
	if params.quiet || len(sum.Results) == 0 {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCALE\tRANGE END\tPRIMES\tWITHIN\tSUCCESS\tMAX DIST\tMODE")
	for _, r := range sum.Results {
		if r.Failed {
			fmt.Fprintf(w, "%d\t%s\t-\t-\t-\t-\tFAILED\n", r.M, r.RangeEnd)

			continue
		}
		mode := "exhaustive"
		if r.Sampled {
			mode = "sampled"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.2f%%\t%s\t%s\n",
			r.M, r.RangeEnd, r.PrimeCount, r.WithinCount,
			100*r.SuccessRate(), r.MaxDistance, mode)
	}
	_ = w.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		code := exitFailure
		if errors.Is(err, errPatternViolated) {
			code = exitViolated
		}
		if logger != nil {
			if code == exitFailure {
				logger.Error("verification failed", zap.Error(err))
			}
			_ = logger.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}
}
