// Package main provides the framespec-bench CLI tool for benchmarking
// condensation over synthetic frame-sequence patterns.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sequencekit/framespec"
	"github.com/sequencekit/framespec/benchmark/analysis"
	"github.com/sequencekit/framespec/benchmark/reporting"
	"github.com/sequencekit/framespec/benchmark/simulation"
)

var (
	frameCount   int
	trialCount   int
	seed         int64
	outputFormat string
	outputFile   string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "framespec-bench",
	Short: "Benchmark framespec condensation",
	Long: `framespec-bench measures how well framespec condensation compresses
synthetic frame sequences, and compares two-pass rebalancing against the
single-pass grouping.

Examples:
  # Run with defaults
  framespec-bench run

  # Larger sets, more trials
  framespec-bench run --frames 1000 --trials 200

  # Output as markdown report
  framespec-bench run --format markdown --output report.md`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark simulation",
	RunE:  runBenchmark,
}

func init() {
	runCmd.Flags().IntVarP(&frameCount, "frames", "n", 500, "frames per generated set")
	runCmd.Flags().IntVarP(&trialCount, "trials", "t", 100, "trials per pattern")
	runCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	runCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format: text, markdown")
	runCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	rebalanced, err := framespec.New()
	if err != nil {
		return fmt.Errorf("creating codec: %w", err)
	}
	singlePass, err := framespec.New(framespec.WithTwoPassRebalancing(false))
	if err != nil {
		return fmt.Errorf("creating codec: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Running %d trials of %d frames per pattern...\n", trialCount, frameCount)
	}

	// Identical seeds so both configurations see the same frame sets.
	resultsOn := simulation.NewSimulator(seed).Run(rebalanced.FramesToSpec, frameCount, trialCount)
	resultsOff := simulation.NewSimulator(seed).Run(singlePass.FramesToSpec, frameCount, trialCount)

	comparisons := analysis.CompareResults("rebalance", "no-rebalance", resultsOn, resultsOff)
	sort.Slice(comparisons, func(i, j int) bool {
		return comparisons[i].PatternName < comparisons[j].PatternName
	})

	var output io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	switch outputFormat {
	case "markdown":
		return writeMarkdownReport(output, resultsOn, resultsOff, comparisons)
	default:
		return writeTextReport(output, resultsOn, resultsOff, comparisons)
	}
}

func writeTextReport(w io.Writer, on, off map[string]*simulation.Result, comparisons []*analysis.PatternComparison) error {
	fmt.Fprintf(w, "Framespec Condensation Benchmark\n")
	fmt.Fprintf(w, "================================\n\n")
	fmt.Fprintf(w, "Frames per set: %d\n", frameCount)
	fmt.Fprintf(w, "Trials per pattern: %d\n\n", trialCount)

	for _, comp := range comparisons {
		fmt.Fprintln(w, comp.Summary())
		fmt.Fprintln(w)
	}
	return nil
}

func writeMarkdownReport(w io.Writer, on, off map[string]*simulation.Result, comparisons []*analysis.PatternComparison) error {
	report := reporting.NewMarkdownReport(w)
	report.WriteHeader("Framespec Condensation Benchmark")
	report.WriteMethodology(frameCount, trialCount)
	report.WriteSummaryTable("rebalance", on)
	report.WriteSummaryTable("no-rebalance", off)
	for _, comp := range comparisons {
		report.WriteComparison(comp)
	}
	return nil
}
