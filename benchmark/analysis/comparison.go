package analysis

import (
	"fmt"

	"github.com/sequencekit/framespec/benchmark/simulation"
)

// PatternComparison compares two condensation configurations on the same
// sequence pattern, using the per-trial compression ratios.
type PatternComparison struct {
	PatternName string
	Label1      string
	Label2      string
	Stats1      *DescriptiveStats
	Stats2      *DescriptiveStats
	MannWhitney *MannWhitneyResult
	EffectSize  *EffectSize
	Winner      string // Label with the lower mean ratio, or "tie".
}

// Compare runs the full statistical comparison for one pattern.
func Compare(name, label1, label2 string, res1, res2 *simulation.Result) *PatternComparison {
	stats1 := Describe(res1.Ratios)
	stats2 := Describe(res2.Ratios)

	winner := "tie"
	if stats1.Mean < stats2.Mean {
		winner = label1
	} else if stats2.Mean < stats1.Mean {
		winner = label2
	}

	return &PatternComparison{
		PatternName: name,
		Label1:      label1,
		Label2:      label2,
		Stats1:      stats1,
		Stats2:      stats2,
		MannWhitney: MannWhitneyU(res1.Ratios, res2.Ratios),
		EffectSize:  ComputeEffectSize(res1.Ratios, res2.Ratios),
		Winner:      winner,
	}
}

// CompareResults pairs up two result sets by pattern name and compares
// each pair. Patterns missing from either set are skipped.
func CompareResults(label1, label2 string, set1, set2 map[string]*simulation.Result) []*PatternComparison {
	comparisons := make([]*PatternComparison, 0, len(set1))
	for name, res1 := range set1 {
		res2, ok := set2[name]
		if !ok {
			continue
		}
		comparisons = append(comparisons, Compare(name, label1, label2, res1, res2))
	}
	return comparisons
}

// Summary returns a human-readable summary of the comparison.
func (c *PatternComparison) Summary() string {
	sig := "not statistically significant"
	if c.MannWhitney.Significant {
		sig = fmt.Sprintf("statistically significant (p=%.4f)", c.MannWhitney.PValue)
	}

	return fmt.Sprintf(
		"%s (%s vs %s):\n"+
			"  %s: mean ratio=%.3f, median=%.3f, std=%.3f\n"+
			"  %s: mean ratio=%.3f, median=%.3f, std=%.3f\n"+
			"  Effect size: %.2f (%s)\n"+
			"  Result: %s, %s",
		c.PatternName, c.Label1, c.Label2,
		c.Label1, c.Stats1.Mean, c.Stats1.Median, c.Stats1.StdDev,
		c.Label2, c.Stats2.Mean, c.Stats2.Median, c.Stats2.StdDev,
		c.EffectSize.CohensD, c.EffectSize.Interpretation,
		c.Winner, sig,
	)
}
