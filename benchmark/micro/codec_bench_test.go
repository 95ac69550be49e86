package micro

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/sequencekit/framespec"
	"github.com/sequencekit/framespec/internal/parse"
	"github.com/sequencekit/framespec/internal/runs"
)

// stridedFrames builds n frames alternating between two step sizes, the
// worst case for the rebalancing pass.
func stridedFrames(n int) []int {
	frames := make([]int, 0, n)
	v := 1
	for i := 0; i < n; i++ {
		frames = append(frames, v)
		if i%2 == 0 {
			v += 2
		} else {
			v += 3
		}
	}
	return frames
}

// fragmentedFrames builds n frames with random gaps so most runs stay short.
func fragmentedFrames(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	frames := make([]int, 0, n)
	v := 1
	for i := 0; i < n; i++ {
		frames = append(frames, v)
		v += 1 + rng.Intn(20)
	}
	return frames
}

// BenchmarkGroup_Strided measures grouping on a large alternating-step set.
func BenchmarkGroup_Strided(b *testing.B) {
	frames := stridedFrames(100_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = runs.Group(frames, true)
	}
}

// BenchmarkGroup_Fragmented measures grouping when the input barely
// condenses at all.
func BenchmarkGroup_Fragmented(b *testing.B) {
	frames := fragmentedFrames(100_000, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = runs.Group(frames, true)
	}
}

// BenchmarkGroup_NoRebalance measures grouping with the second pass off.
func BenchmarkGroup_NoRebalance(b *testing.B) {
	frames := stridedFrames(100_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = runs.Group(frames, false)
	}
}

// BenchmarkFormat measures rendering grouped runs into notation.
func BenchmarkFormat(b *testing.B) {
	groups := runs.Group(fragmentedFrames(100_000, 1), true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = runs.Format(groups, "x")
	}
}

// BenchmarkExpand measures lazy expansion of a wide multi-chunk range.
func BenchmarkExpand(b *testing.B) {
	parser := parse.New("x", parse.DefaultSpanPattern("x"))
	chunks, err := parser.Parse("1-1000000x3,2-1000000x7,500000-600000")
	if err != nil {
		b.Fatalf("parse error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range parse.Expand(chunks) {
			n++
		}
		if n == 0 {
			b.Fatal("expanded no frames")
		}
	}
}

// BenchmarkFramesToSpec measures the full condense path through the codec.
func BenchmarkFramesToSpec(b *testing.B) {
	codec, err := framespec.New()
	if err != nil {
		b.Fatalf("creating codec: %v", err)
	}
	frames := fragmentedFrames(100_000, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = codec.FramesToSpec(frames)
	}
}

// BenchmarkFilesToCondensed measures condensing a large file list,
// including the frame-number extraction per path.
func BenchmarkFilesToCondensed(b *testing.B) {
	codec, err := framespec.New()
	if err != nil {
		b.Fatalf("creating codec: %v", err)
	}
	paths := make([]string, 0, 10_000)
	for _, f := range fragmentedFrames(10_000, 2) {
		paths = append(paths, fmt.Sprintf("/renders/shot.%d.exr", f))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.FilesToCondensed(paths); err != nil {
			b.Fatalf("condense error: %v", err)
		}
	}
}

// TestMicroBenchmarksCompile ensures the benchmarks compile.
func TestMicroBenchmarksCompile(t *testing.T) {
	if len(stridedFrames(10)) != 10 {
		t.Fatal("frame generator broken")
	}
}
