// Command bazinga is the thin CLI wrapper around the deterministic pattern
// pipeline. It resolves configuration (defaults ← optional YAML file ←
// flags), runs pattern.Compute once per input, and hands the read-only
// record to the renderers. All validation errors come from the pipeline's
// own sentinels; the wrapper adds nothing but flags and output.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bazinga/internal/config"
	"github.com/katalvlaran/bazinga/pattern"
	"github.com/katalvlaran/bazinga/report"
)

var (
	// Global flags
	cfgPath    string
	depth      int
	cycleDays  int
	trajectory bool
	verbose    bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "bazinga",
	Short: "Deterministic text→pattern generator",
	Long: `bazinga derives a reproducible numeric pattern from input text:
lexical features, a stable seed, a pattern frequency, a bounded fractal
orbit and five cycle-weighted principles.

The same text with the same configuration produces bit-identical output
on every platform.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// computeCmd runs the pipeline and prints the record summary.
var computeCmd = &cobra.Command{
	Use:   "compute [text]",
	Short: "Compute the pattern record for the given text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runPipeline(cmd, strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Printf("seed:       %d\n", res.Seed)
		fmt.Printf("frequency:  %.6f\n", res.Frequency)
		fmt.Printf("resonance:  %.4f\n", res.Resonance)
		fmt.Printf("iterations: %d (escaped=%t)\n", res.Fractal.Iterations, res.Fractal.Escaped)
		fmt.Printf("day:        %.4f\n", res.Day)
		for _, p := range res.Cycle.Principles() {
			fmt.Printf("%-12s %.6f\n", p.Name+":", p.Weight)
		}

		return nil
	},
}

// reportCmd runs the pipeline and renders the Markdown analysis plus the
// orbit sparkline when trajectory capture is on.
var reportCmd = &cobra.Command{
	Use:   "report [text]",
	Short: "Render the Markdown analysis report for the given text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := runPipeline(cmd, strings.Join(args, " "))
		if err != nil {
			return err
		}

		md, err := report.Markdown(res)
		if err != nil {
			return err
		}
		fmt.Print(md)
		if len(res.Fractal.Trajectory) > 0 {
			fmt.Printf("\nOrbit: %s\n", report.Sparkline(res.Fractal.Trajectory))
		}

		return nil
	},
}

// runPipeline resolves the effective configuration and computes the record.
func runPipeline(cmd *cobra.Command, text string) (pattern.Result, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return pattern.Result{}, err
	}

	// Flags set explicitly win over the file.
	if cmd.Flags().Changed("depth") {
		cfg.Depth = depth
	}
	if cmd.Flags().Changed("cycle-days") {
		cfg.CycleDays = cycleDays
	}
	if cmd.Flags().Changed("trajectory") {
		cfg.Trajectory = trajectory
	}
	if err = cfg.Validate(); err != nil {
		return pattern.Result{}, err
	}

	opts := cfg.Options()
	logger.Debug("running pipeline",
		zap.Int("depth", opts.Depth),
		zap.Int("cycle_days", opts.CycleDays),
		zap.Bool("trajectory", opts.ReturnTrajectory),
		zap.Int("input_len", len(text)),
	)

	res, err := pattern.Compute(text, &opts)
	if err != nil {
		return pattern.Result{}, err
	}
	logger.Debug("pipeline complete",
		zap.Int("seed", res.Seed),
		zap.Float64("frequency", res.Frequency),
		zap.Bool("escaped", res.Fractal.Escaped),
	)

	return res, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().IntVar(&depth, "depth", 10, "fractal iteration depth [1,20]")
	rootCmd.PersistentFlags().IntVar(&cycleDays, "cycle-days", 40, "cycle length in days (>0)")
	rootCmd.PersistentFlags().BoolVar(&trajectory, "trajectory", false, "capture the fractal orbit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
