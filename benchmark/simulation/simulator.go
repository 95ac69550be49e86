// Package simulation generates synthetic frame-sequence patterns and
// measures how well the codec condenses them.
package simulation

import (
	"math/rand"
	"sort"
)

// Pattern generates frame sets of a given size. Generators are
// deterministic for a fixed seed so runs are reproducible.
type Pattern struct {
	Name     string
	Generate func(n int, rng *rand.Rand) []int
}

// Patterns returns the standard set of sequence shapes seen on render
// farms: unbroken ranges, strided renders, ranges with dropped frames, and
// scattershot re-renders.
func Patterns() []Pattern {
	return []Pattern{
		{
			Name: "contiguous",
			Generate: func(n int, rng *rand.Rand) []int {
				start := rng.Intn(1000)
				frames := make([]int, n)
				for i := range frames {
					frames[i] = start + i
				}
				return frames
			},
		},
		{
			Name: "strided",
			Generate: func(n int, rng *rand.Rand) []int {
				start := rng.Intn(1000)
				step := 2 + rng.Intn(9)
				frames := make([]int, n)
				for i := range frames {
					frames[i] = start + i*step
				}
				return frames
			},
		},
		{
			Name: "gappy",
			Generate: func(n int, rng *rand.Rand) []int {
				// A contiguous range with roughly 20% of frames missing,
				// topped up until n frames survive.
				frames := make([]int, 0, n)
				v := rng.Intn(1000)
				for len(frames) < n {
					if rng.Float64() >= 0.2 {
						frames = append(frames, v)
					}
					v++
				}
				return frames
			},
		},
		{
			Name: "fragmented",
			Generate: func(n int, rng *rand.Rand) []int {
				// Scattered single frames, as left behind by partial
				// re-renders.
				seen := make(map[int]bool, n)
				frames := make([]int, 0, n)
				for len(frames) < n {
					v := rng.Intn(n * 20)
					if !seen[v] {
						seen[v] = true
						frames = append(frames, v)
					}
				}
				sort.Ints(frames)
				return frames
			},
		},
	}
}

// Condenser turns a frame set into its framespec string. It matches the
// signature of the codec's FramesToSpec so configured codecs drop in
// directly.
type Condenser func(frames []int) string

// Simulator runs condensation trials over the standard patterns.
type Simulator struct {
	patterns []Pattern
	rng      *rand.Rand
}

// NewSimulator creates a Simulator seeded for reproducible runs.
func NewSimulator(seed int64, patterns ...Pattern) *Simulator {
	if len(patterns) == 0 {
		patterns = Patterns()
	}
	return &Simulator{
		patterns: patterns,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Run condenses trials frame sets of size n for every pattern and returns
// one aggregated result per pattern, keyed by pattern name.
func (s *Simulator) Run(condense Condenser, n, trials int) map[string]*Result {
	results := make(map[string]*Result, len(s.patterns))

	for _, p := range s.patterns {
		res := &Result{PatternName: p.Name}
		for range trials {
			frames := p.Generate(n, s.rng)
			spec := condense(frames)
			res.Observe(frames, spec)
		}
		results[p.Name] = res
	}
	return results
}
