// Package runs groups sorted frame numbers into maximal constant-step runs
// and renders them in framespec notation.
package runs

import (
	"strconv"
	"strings"
)

// Group splits an ascending list of distinct integers into runs where
// consecutive elements differ by a constant step. The concatenation of the
// returned runs reproduces the input exactly.
//
// A two-element input always yields two singleton runs; a pair is never
// promoted to a range.
//
// When rebalance is true a second pass migrates the last element of a run
// into the following run when that run is strictly longer and the element
// fits its step. The first pass is locally greedy and can otherwise strand
// a boundary value, turning [1 4 6 8 10] into [1 4][6 8 10] instead of
// [1][4 6 8 10].
func Group(frames []int, rebalance bool) [][]int {
	if len(frames) == 0 {
		return nil
	}
	if len(frames) == 1 {
		return [][]int{{frames[0]}}
	}
	if len(frames) == 2 {
		return [][]int{{frames[0]}, {frames[1]}}
	}

	var groups [][]int
	var cur []int

	for i, v := range frames {
		if len(cur) == 0 {
			cur = append(cur, v)
			continue
		}

		back := v - frames[i-1]

		if i+1 < len(frames) {
			forward := frames[i+1] - v
			if back != forward {
				// v closes the current run; the next element opens a new one.
				cur = append(cur, v)
				groups = append(groups, cur)
				cur = nil
				continue
			}
			cur = append(cur, v)
			continue
		}

		// Last element: no forward difference to compare against, so check
		// whether it continues the step established behind it.
		prior := frames[i-1] - frames[i-2]
		switch {
		case prior == back:
			cur = append(cur, v)
		case len(cur) == 1:
			cur = append(cur, v)
		default:
			groups = append(groups, cur)
			cur = []int{v}
		}
	}

	if len(cur) > 0 {
		groups = append(groups, cur)
	}

	if rebalance && len(groups) > 1 {
		rebalanceGroups(groups)
	}

	return groups
}

// rebalanceGroups makes a single left-to-right pass, moving the last element
// of a run to the front of the next run when the next run is strictly longer
// and the element is consistent with its step. Updated runs are used as the
// pass advances; it does not iterate to a fixed point.
func rebalanceGroups(groups [][]int) {
	for i := 0; i < len(groups)-1; i++ {
		cur := groups[i]
		if len(cur) <= 1 {
			continue
		}
		next := groups[i+1]
		if len(next) <= len(cur) {
			continue
		}

		last := cur[len(cur)-1]
		if next[0]-last == next[1]-next[0] {
			groups[i+1] = append([]int{last}, next...)
			groups[i] = cur[:len(cur)-1]
		}
	}
}

// Format renders grouped runs as a framespec string. Singleton runs become
// bare literals, step-1 runs become "first-last", and strided runs append
// the delimiter and step, e.g. "1-9x2". Runs are joined with commas in the
// order given.
func Format(groups [][]int, stepDelim string) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g) == 1 {
			parts = append(parts, strconv.Itoa(g[0]))
			continue
		}

		first := g[0]
		last := g[len(g)-1]
		step := g[1] - g[0]

		var b strings.Builder
		b.WriteString(strconv.Itoa(first))
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(last))
		if step != 1 {
			b.WriteString(stepDelim)
			b.WriteString(strconv.Itoa(step))
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ",")
}
