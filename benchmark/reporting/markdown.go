// Package reporting provides report generation for benchmark results.
package reporting

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sequencekit/framespec/benchmark/analysis"
	"github.com/sequencekit/framespec/benchmark/simulation"
)

// MarkdownReport generates benchmark reports in Markdown format.
type MarkdownReport struct {
	w io.Writer
}

// NewMarkdownReport creates a new Markdown report writer.
func NewMarkdownReport(w io.Writer) *MarkdownReport {
	return &MarkdownReport{w: w}
}

// WriteHeader writes the report header.
func (r *MarkdownReport) WriteHeader(title string) {
	fmt.Fprintf(r.w, "# %s\n\n", title)
	fmt.Fprintf(r.w, "Generated: %s\n\n", time.Now().Format(time.RFC3339))
}

// WriteMethodology writes the methodology section.
func (r *MarkdownReport) WriteMethodology(framesPerSet, trials int) {
	fmt.Fprintln(r.w, "## Methodology")
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "- **Frames per set:** %d\n", framesPerSet)
	fmt.Fprintf(r.w, "- **Trials per pattern:** %d\n", trials)
	fmt.Fprintln(r.w, "- **Metric:** compression ratio, framespec length over comma-joined length (lower is better)")
	fmt.Fprintln(r.w, "- **Statistical tests:** Mann-Whitney U (non-parametric), Cohen's d effect size")
	fmt.Fprintln(r.w)
}

// WriteSummaryTable writes one row per pattern with its ratio and run
// count statistics.
func (r *MarkdownReport) WriteSummaryTable(label string, results map[string]*simulation.Result) {
	fmt.Fprintf(r.w, "## Summary: %s\n\n", label)
	fmt.Fprintln(r.w, "| Pattern | Mean Ratio | Median | StdDev | Mean Runs |")
	fmt.Fprintln(r.w, "|---------|-----------|--------|--------|-----------|")

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		res := results[name]
		ratios := analysis.Describe(res.Ratios)
		runs := analysis.Describe(res.RunCounts)
		fmt.Fprintf(r.w, "| %s | %.3f | %.3f | %.3f | %.1f |\n",
			name, ratios.Mean, ratios.Median, ratios.StdDev, runs.Mean)
	}
	fmt.Fprintln(r.w)
}

// WriteComparison writes a detailed comparison section for one pattern.
func (r *MarkdownReport) WriteComparison(comp *analysis.PatternComparison) {
	fmt.Fprintf(r.w, "## Pattern: %s\n\n", comp.PatternName)
	fmt.Fprintln(r.w, "| Configuration | Mean Ratio | Median | StdDev |")
	fmt.Fprintln(r.w, "|---------------|-----------|--------|--------|")
	fmt.Fprintf(r.w, "| %s | %.3f | %.3f | %.3f |\n",
		comp.Label1, comp.Stats1.Mean, comp.Stats1.Median, comp.Stats1.StdDev)
	fmt.Fprintf(r.w, "| %s | %.3f | %.3f | %.3f |\n",
		comp.Label2, comp.Stats2.Mean, comp.Stats2.Median, comp.Stats2.StdDev)
	fmt.Fprintln(r.w)

	sig := "no"
	if comp.MannWhitney.Significant {
		sig = fmt.Sprintf("yes (p=%.4f)", comp.MannWhitney.PValue)
	}
	fmt.Fprintf(r.w, "- **Winner:** %s\n", comp.Winner)
	fmt.Fprintf(r.w, "- **Effect size:** %.2f (%s)\n", comp.EffectSize.CohensD, comp.EffectSize.Interpretation)
	fmt.Fprintf(r.w, "- **Significant:** %s\n", sig)
	fmt.Fprintln(r.w)
}
