package simulation

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"
)

func TestPatterns_GenerateShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, p := range Patterns() {
		frames := p.Generate(100, rng)
		if len(frames) != 100 {
			t.Errorf("%s: generated %d frames, want 100", p.Name, len(frames))
		}
		if !sort.IntsAreSorted(frames) {
			t.Errorf("%s: frames not sorted", p.Name)
		}
		seen := make(map[int]bool, len(frames))
		for _, v := range frames {
			if seen[v] {
				t.Errorf("%s: duplicate frame %d", p.Name, v)
			}
			seen[v] = true
		}
	}
}

func TestSimulator_Run(t *testing.T) {
	sim := NewSimulator(42)
	condense := func(frames []int) string {
		// Trivial condenser: comma-join, ratio is exactly 1.
		s := ""
		for i, v := range frames {
			if i > 0 {
				s += ","
			}
			s += fmt.Sprint(v)
		}
		return s
	}

	results := sim.Run(condense, 50, 5)
	if len(results) != len(Patterns()) {
		t.Fatalf("Run() produced %d results, want %d", len(results), len(Patterns()))
	}
	for name, res := range results {
		if len(res.Ratios) != 5 {
			t.Errorf("%s: %d ratios, want 5", name, len(res.Ratios))
		}
		for _, r := range res.Ratios {
			if r != 1 {
				t.Errorf("%s: ratio = %v, want 1 for identity condenser", name, r)
			}
		}
	}
}

func TestSimulator_Deterministic(t *testing.T) {
	condense := func(frames []int) string { return fmt.Sprint(len(frames)) }

	a := NewSimulator(7).Run(condense, 30, 3)
	b := NewSimulator(7).Run(condense, 30, 3)
	for name := range a {
		if fmt.Sprint(a[name].RunCounts) != fmt.Sprint(b[name].RunCounts) {
			t.Errorf("%s: runs differ across identically seeded simulators", name)
		}
	}
}

func TestNaiveLength(t *testing.T) {
	tests := []struct {
		frames []int
		want   int
	}{
		{nil, 0},
		{[]int{5}, 1},
		{[]int{1, 2, 3}, 5},
		{[]int{-10, 100}, 7},
	}
	for _, tt := range tests {
		if got := naiveLength(tt.frames); got != tt.want {
			t.Errorf("naiveLength(%v) = %d, want %d", tt.frames, got, tt.want)
		}
	}
}
