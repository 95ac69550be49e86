package runs

import (
	"reflect"
	"testing"
)

func TestGroup(t *testing.T) {
	tests := []struct {
		name      string
		frames    []int
		rebalance bool
		want      [][]int
	}{
		{
			name:   "single frame",
			frames: []int{42},
			want:   [][]int{{42}},
		},
		{
			name:   "two adjacent frames stay singletons",
			frames: []int{1, 2},
			want:   [][]int{{1}, {2}},
		},
		{
			name:   "two distant frames stay singletons",
			frames: []int{1, 8},
			want:   [][]int{{1}, {8}},
		},
		{
			name:   "mixed steps",
			frames: []int{1, 2, 3, 5, 7, 9, 20, 30, 40},
			want:   [][]int{{1, 2, 3}, {5, 7, 9}, {20, 30, 40}},
		},
		{
			name:   "single long run",
			frames: []int{1, 2, 3, 4, 5},
			want:   [][]int{{1, 2, 3, 4, 5}},
		},
		{
			name:   "trailing singleton",
			frames: []int{1, 2, 3, 100},
			want:   [][]int{{1, 2, 3}, {100}},
		},
		{
			name:   "negative frames",
			frames: []int{-10, -8, -6, 0, 1, 2},
			want:   [][]int{{-10, -8, -6}, {0, 1, 2}},
		},
		{
			name:      "stranded boundary without rebalancing",
			frames:    []int{1, 4, 6, 8, 10, 12, 14, 16},
			rebalance: false,
			want:      [][]int{{1, 4}, {6, 8, 10, 12, 14, 16}},
		},
		{
			name:      "stranded boundary with rebalancing",
			frames:    []int{1, 4, 6, 8, 10, 12, 14, 16},
			rebalance: true,
			want:      [][]int{{1}, {4, 6, 8, 10, 12, 14, 16}},
		},
		{
			name:      "rebalancing skips equal-length neighbor",
			frames:    []int{1, 3, 5, 8, 11, 14},
			rebalance: true,
			want:      [][]int{{1, 3, 5}, {8, 11, 14}},
		},
		{
			name:      "rebalancing skips step-incompatible neighbor",
			frames:    []int{1, 3, 5, 10, 14, 18, 22, 26},
			rebalance: true,
			want:      [][]int{{1, 3, 5}, {10, 14, 18, 22, 26}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Group(tt.frames, tt.rebalance)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Group(%v, %v) = %v, want %v", tt.frames, tt.rebalance, got, tt.want)
			}
		})
	}
}

func TestGroup_ConcatenationReproducesInput(t *testing.T) {
	frames := []int{-5, -3, -1, 0, 1, 2, 3, 10, 20, 30, 31, 33, 35, 100}
	for _, rebalance := range []bool{false, true} {
		var flat []int
		for _, g := range Group(frames, rebalance) {
			flat = append(flat, g...)
		}
		if !reflect.DeepEqual(flat, frames) {
			t.Errorf("rebalance=%v: concatenated groups = %v, want %v", rebalance, flat, frames)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		groups [][]int
		delim  string
		want   string
	}{
		{
			name:   "singletons",
			groups: [][]int{{1}, {8}},
			delim:  "x",
			want:   "1,8",
		},
		{
			name:   "step one omits delimiter",
			groups: [][]int{{1, 2, 3}},
			delim:  "x",
			want:   "1-3",
		},
		{
			name:   "mixed",
			groups: [][]int{{1, 2, 3}, {5, 7, 9}, {20, 30, 40}},
			delim:  "x",
			want:   "1-3,5-9x2,20-40x10",
		},
		{
			name:   "custom delimiter",
			groups: [][]int{{5, 7, 9}},
			delim:  ":",
			want:   "5-9:2",
		},
		{
			name:   "negative range",
			groups: [][]int{{-2, -1}, {5, 7, 9}},
			delim:  "x",
			want:   "-2--1,5-9x2",
		},
		{
			name:   "empty",
			groups: nil,
			delim:  "x",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.groups, tt.delim); got != tt.want {
				t.Errorf("Format(%v, %q) = %q, want %q", tt.groups, tt.delim, got, tt.want)
			}
		})
	}
}

func BenchmarkGroup(b *testing.B) {
	// Alternating steps keep every run short and exercise rebalancing.
	frames := make([]int, 0, 10_000)
	v := 1
	for i := 0; i < 10_000; i++ {
		frames = append(frames, v)
		if i%2 == 0 {
			v += 2
		} else {
			v += 3
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Group(frames, true)
	}
}

func BenchmarkFormat(b *testing.B) {
	groups := make([][]int, 0, 5_000)
	for i := 0; i < 5_000; i++ {
		base := i * 20
		groups = append(groups, []int{base, base + 2, base + 4, base + 6})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Format(groups, "x")
	}
}
