// Package main provides the CLI entry point for kadanebench, an
// instrumented maximum-subarray benchmarking tool.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/weiihann/kadanebench/config"
	"github.com/weiihann/kadanebench/harness"
	"github.com/weiihann/kadanebench/report"
)

const sizesPrompt = "Enter the array sizes separated by a space and press Enter:"

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kadanebench",
		Short: "Instrumented maximum-subarray benchmarking tool",
		Long: `Kadanebench runs an instrumented linear-time maximum-subarray scan over
deterministic random inputs of several sizes and appends the operation
counts and timings of each run to a CSV log.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd())

	return root
}

type runFlags struct {
	configPath string
	output     string
	seed       int64
	minValue   int
	maxValue   int
	logLevel   string
	outputJSON bool
	quiet      bool
}

func newRunCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run [size ...]",
		Short: "Benchmark the scan over one or more input sizes",
		Long: `Generate a deterministic sequence for each size, scan it and append
one row of metrics per size to the CSV log. Sizes are taken from the
arguments, then from the config file, then from a prompt on stdin, and
finally from the built-in defaults (100 1000 10000 100000).`,
		// Flags are parsed in RunE so that negative sizes such as -5 reach
		// size validation instead of failing as unknown shorthand flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, rawArgs []string) error {
			args, err := parseRunArgs(cmd.Flags(), rawArgs)
			if err != nil {
				return err
			}

			cfg, err := config.Load(f.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			applyFlags(cmd, cfg, f)

			return runSweep(cmd.Context(), cmd, cfg, args, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "",
		"Path to YAML config file")
	flags.StringVar(&f.output, "output", config.DefaultOutput,
		"CSV log to append results to")
	flags.Int64Var(&f.seed, "seed", 0,
		"Random seed for input generation (default 42)")
	flags.IntVar(&f.minValue, "min-value", 0,
		"Smallest generated value (default -50)")
	flags.IntVar(&f.maxValue, "max-value", 0,
		"Largest generated value (default 49)")
	flags.StringVar(&f.logLevel, "log-level", "",
		"Log level: debug, info, warn, error")
	flags.BoolVar(&f.outputJSON, "json", false,
		"Print results as JSON instead of a table")
	flags.BoolVar(&f.quiet, "quiet", false,
		"Do not print results to stdout")

	return cmd
}

// parseRunArgs parses flags from rawArgs and returns the positional sizes.
// Tokens that look like negative integers are treated as sizes unless they
// are the value of a preceding flag.
func parseRunArgs(flags *pflag.FlagSet, rawArgs []string) ([]string, error) {
	if err := flags.Parse(splitSizeArgs(flags, rawArgs)); err != nil {
		return nil, err
	}

	if help, _ := flags.GetBool("help"); help {
		return nil, pflag.ErrHelp
	}

	return flags.Args(), nil
}

func splitSizeArgs(flags *pflag.FlagSet, rawArgs []string) []string {
	opts := make([]string, 0, len(rawArgs)+1)
	var sizes []string

	for i := 0; i < len(rawArgs); i++ {
		arg := rawArgs[i]

		if arg == "--" {
			sizes = append(sizes, rawArgs[i+1:]...)

			break
		}

		switch {
		case isNegativeInt(arg):
			sizes = append(sizes, arg)
		case strings.HasPrefix(arg, "--") && !strings.Contains(arg, "="):
			opts = append(opts, arg)

			// A flag that takes a value consumes the next token as is.
			fl := flags.Lookup(arg[2:])
			if fl != nil && fl.NoOptDefVal == "" && i+1 < len(rawArgs) {
				i++
				opts = append(opts, rawArgs[i])
			}
		case strings.HasPrefix(arg, "-"):
			opts = append(opts, arg)
		default:
			sizes = append(sizes, arg)
		}
	}

	return append(append(opts, "--"), sizes...)
}

func isNegativeInt(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}

	_, err := strconv.ParseInt(arg, 10, 64)

	return err == nil || errors.Is(err, strconv.ErrRange)
}

// applyFlags overrides config values with the flags set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f runFlags) {
	flags := cmd.Flags()

	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("min-value") {
		cfg.MinValue = f.minValue
	}
	if flags.Changed("max-value") {
		cfg.MaxValue = f.maxValue
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
}

func runSweep(
	ctx context.Context,
	cmd *cobra.Command,
	cfg *config.Config,
	args []string,
	f runFlags,
) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.Level(),
	}))

	sizes := resolveSizes(ctx, logger, args, cfg.Sizes, cmd.InOrStdin(), cmd.ErrOrStderr())

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.WarnContext(ctx, "failed to create output dir",
				slog.String("dir", dir),
				slog.String("error", err.Error()),
			)
		}
	}

	runner := harness.NewRunner(harness.RunConfig{
		Output:   cfg.Output,
		Workload: cfg.Workload(),
	}, logger)

	records, err := runner.Run(ctx, sizes)
	if err != nil {
		return fmt.Errorf("run sweep: %w", err)
	}

	if f.quiet {
		return nil
	}

	out := cmd.OutOrStdout()

	if f.outputJSON {
		if err := report.GenerateJSON(out, records); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}

		return nil
	}

	if err := report.Generate(out, records); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	return nil
}

// resolveSizes picks the first valid size set from the arguments, the
// config file and a line read from in, falling back to the defaults.
func resolveSizes(
	ctx context.Context,
	logger *slog.Logger,
	args []string,
	configured []int,
	in io.Reader,
	prompt io.Writer,
) []int {
	if len(args) > 0 {
		sizes, err := harness.ParseSizes(args)
		if err == nil {
			return sizes
		}

		logger.WarnContext(ctx, "ignoring size arguments",
			slog.String("error", err.Error()),
		)
	}

	if len(configured) > 0 {
		err := harness.ValidateSizes(configured)
		if err == nil {
			return configured
		}

		logger.WarnContext(ctx, "ignoring configured sizes",
			slog.String("error", err.Error()),
		)
	}

	sizes, err := promptSizes(in, prompt)
	if err == nil {
		return sizes
	}

	logger.InfoContext(ctx, "using default sizes",
		slog.String("reason", err.Error()),
	)

	return harness.DefaultSizes()
}

func promptSizes(in io.Reader, prompt io.Writer) ([]int, error) {
	fmt.Fprintln(prompt, sizesPrompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read sizes: %w", err)
	}

	return harness.ParseSizes(strings.Fields(line))
}
