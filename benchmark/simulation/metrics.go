package simulation

import "strings"

// Result aggregates condensation trials for one pattern.
type Result struct {
	PatternName string

	// Ratios holds one compression ratio per trial: framespec length over
	// the length of the naive comma-joined frame list. Lower is better.
	Ratios []float64

	// RunCounts holds the number of comma-separated runs per trial.
	RunCounts []float64
}

// Observe records one trial.
func (r *Result) Observe(frames []int, spec string) {
	naive := naiveLength(frames)
	if naive > 0 {
		r.Ratios = append(r.Ratios, float64(len(spec))/float64(naive))
	}
	r.RunCounts = append(r.RunCounts, float64(strings.Count(spec, ",")+1))
}

// naiveLength is the length of the frames joined by commas with no
// condensation, the baseline a framespec competes against.
func naiveLength(frames []int) int {
	n := 0
	for _, v := range frames {
		n += digits(v) + 1
	}
	if n > 0 {
		n--
	}
	return n
}

func digits(v int) int {
	n := 1
	if v < 0 {
		n++
		v = -v
	}
	for v >= 10 {
		n++
		v /= 10
	}
	return n
}
