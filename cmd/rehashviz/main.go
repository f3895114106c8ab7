// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Command rehashviz draws charts from the hash table rehashing benchmark
// results. Run it from the directory the benchmark was run in:
//
//	./benchmark
//	rehashviz
//
// All flags are optional and may also be set through REHASHVIZ_* environment
// variables, for example REHASHVIZ_RESULTS_DIR.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/petenewcomb/rehashviz"
)

func main() {
	if err := execute(newRootCmd(viper.New())); err != nil {
		os.Exit(1)
	}
}

// reportedError marks a failure that run has already described to the user.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// execute runs cmd and prints any error that run did not already report,
// such as a rejected argument or an unparsable flag.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil && !errors.As(err, new(reportedError)) {
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		fmt.Fprintf(cmd.OutOrStdout(), "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return err
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rehashviz",
		Short: "Draw charts from hash table rehashing benchmark results",
		Long: `Reads throughput.csv, latency.csv and spikes.csv from the results directory
and writes throughput, latency, rehash spike and dashboard PNG charts next to them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			logger := newLogger(out, v.GetBool("verbose"))
			return run(out, rehashviz.Config{
				ResultsDir: v.GetString("results-dir"),
				DPI:        v.GetInt("dpi"),
				Hardware:   v.GetString("hardware"),
			}, logger)
		},
	}
	bindFlags(cmd.Flags(), v)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, v *viper.Viper) {
	fs.String("results-dir", rehashviz.DefaultResultsDir, "directory holding the benchmark CSV files and receiving the charts")
	fs.Int("dpi", rehashviz.DefaultDPI, "output image resolution in dots per inch")
	fs.String("hardware", rehashviz.DefaultHardware, "test system description quoted in the dashboard summary")
	fs.BoolP("verbose", "v", false, "log each table load and chart write")

	cobra.CheckErr(v.BindPFlags(fs))
	v.SetEnvPrefix("REHASHVIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// newLogger returns a human readable logger writing to w. Only warnings and
// errors are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core).With(zap.String("component", "rehashviz"))
}

var chartDescriptions = map[string]string{
	"throughput": "Bar chart of ops/sec",
	"latency":    "P99 and Max latency",
	"spikes":     "Rehashing spike analysis",
	"dashboard":  "Comprehensive summary",
}

func banner(w io.Writer, title string) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, rule)
}

func run(out io.Writer, cfg rehashviz.Config, logger *zap.Logger) error {
	banner(out, "Creating Benchmark Visualizations")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Generating graphs...")

	gen := rehashviz.NewGenerator(cfg, logger, out)
	report, err := gen.Generate()
	if err != nil {
		printError(out, gen.Config().ResultsDir, err)
		return reportedError{err}
	}

	fmt.Fprintln(out)
	banner(out, "All Graphs Created Successfully!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Created files:")
	for i, c := range report.Charts {
		fmt.Fprintf(out, "  %d. %s - %s\n", i+1, filepath.Base(c.Path), chartDescriptions[c.Name])
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "All files saved in: %s/\n", gen.Config().ResultsDir)
	fmt.Fprintln(out)
	return nil
}

// printError reports a missing input file with a hint to run the benchmark,
// and anything else with its stack trace.
func printError(out io.Writer, dir string, err error) {
	if errors.Is(err, rehashviz.ErrInputNotFound) {
		fmt.Fprintf(out, "Error: Could not find CSV files in %s/ directory\n", dir)
		fmt.Fprintln(out, "Make sure you've run ./benchmark first!")
		fmt.Fprintf(out, "Details: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Error creating graphs: %v\n", err)
	fmt.Fprintf(out, "%+v\n", err)
}
