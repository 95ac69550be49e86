// Package framespec converts between lists of frame numbers and the compact
// framespec notation used for rendered-image sequences, and between lists of
// numbered file names and a single condensed expression embedding a
// framespec.
//
// Example usage:
//
//	codec, err := framespec.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	condensed, err := codec.FilesToCondensed([]string{
//	    "/renders/shot.1.exr",
//	    "/renders/shot.2.exr",
//	    "/renders/shot.5.exr",
//	    "/renders/shot.7.exr",
//	    "/renders/shot.9.exr",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(condensed) // /renders/shot.1-2,5-9x2.exr
//
// The codec never touches a filesystem; paths are opaque strings.
package framespec

import (
	"errors"
	"iter"
	"path/filepath"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/sequencekit/framespec/internal/extract"
	"github.com/sequencekit/framespec/internal/parse"
	"github.com/sequencekit/framespec/internal/runs"
	"github.com/sequencekit/framespec/internal/stats"
)

// Sentinel errors for well-defined failure conditions. Construction-time
// configuration problems surface from New; everything else is reported at
// the operation that detects it.
var (
	// ErrNoFrameNumber indicates a file name did not match the frame pattern.
	ErrNoFrameNumber = extract.ErrNoFrameNumber

	// ErrDirectoryMismatch indicates a batch of files spans multiple directories.
	ErrDirectoryMismatch = extract.ErrDirectoryMismatch

	// ErrNameMismatch indicates batch files differ beyond the frame number.
	ErrNameMismatch = extract.ErrNameMismatch

	// ErrInvalidFrameValue indicates a non-integer where a frame number is required.
	ErrInvalidFrameValue = extract.ErrInvalidFrameValue

	// ErrMalformedFramespec indicates framespec text with illegal characters
	// or a chunk that does not parse.
	ErrMalformedFramespec = parse.ErrMalformed

	// ErrBadGroupIndex indicates a configured capture-group index that is out
	// of range for the frame pattern. Reported by New, never deferred.
	ErrBadGroupIndex = extract.ErrBadGroupIndex
)

// Codec converts in both directions between frame sets, framespec strings,
// file lists, and condensed expressions. A Codec holds only configuration
// and is safe for concurrent use; every operation is a pure function of its
// inputs.
type Codec struct {
	stepDelim    string
	twoPass      bool
	padding      int
	padSet       bool
	strictSingle bool

	extractor *extract.Extractor
	parser    *parse.Parser
	stats     stats.Collector
	logger    *zap.Logger
}

// New creates a Codec with the given options. If no options are provided,
// the defaults match the common render-sequence conventions: step delimiter
// "x", the frame number taken as the last run of digits in a name, and
// two-pass rebalancing enabled.
func New(opts ...Option) (*Codec, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	extractor, parser, err := cfg.build()
	if err != nil {
		return nil, err
	}

	c := &Codec{
		stepDelim:    cfg.stepDelim,
		twoPass:      cfg.twoPass,
		padding:      cfg.padding,
		padSet:       cfg.padSet,
		strictSingle: cfg.strictSingle,
		extractor:    extractor,
		parser:       parser,
		stats:        cfg.stats,
		logger:       cfg.logger,
	}

	c.logger.Debug("codec initialized",
		zap.String("stepDelimiter", c.stepDelim),
		zap.Bool("twoPassRebalancing", c.twoPass),
		zap.Bool("strictSingleFile", c.strictSingle),
	)

	return c, nil
}

// FramesToSpec renders a set of frame numbers as a framespec string.
// Duplicates are dropped and order is irrelevant; the result is always
// ascending. An empty set yields the empty string.
func (c *Codec) FramesToSpec(frames []int) string {
	c.stats.IncCounter(stats.MetricCondense, 1)
	c.stats.IncCounter(stats.MetricFramesIn, int64(len(frames)))

	sorted := dedupeSorted(frames)
	spec := runs.Format(runs.Group(sorted, c.twoPass), c.stepDelim)

	c.logger.Debug("frames condensed",
		zap.Int("frames", len(sorted)),
		zap.Int("specLength", len(spec)),
	)
	return spec
}

// SpecToFrames expands a framespec string into a sorted, deduplicated slice
// of frame numbers. It fails with ErrMalformedFramespec on illegal
// characters or unparseable chunks. An empty string yields an empty set.
//
// Note the inherited dash ambiguity: "-2-1" reads as start -2, end 1 and
// expands through zero to {-2,-1,0,1}. A literal negative end needs a
// double dash, as in "-2--1".
func (c *Codec) SpecToFrames(spec string) ([]int, error) {
	seq, err := c.ExpandFrames(spec)
	if err != nil {
		return nil, err
	}

	var out []int
	for v := range seq {
		out = append(out, v)
	}
	c.stats.IncCounter(stats.MetricFramesOut, int64(len(out)))
	return out, nil
}

// ExpandFrames is the lazy variant of SpecToFrames. The returned sequence
// yields frames in ascending order without duplicates and may be ranged
// over more than once; memory stays proportional to the number of chunks
// regardless of how wide the ranges are.
func (c *Codec) ExpandFrames(spec string) (iter.Seq[int], error) {
	c.stats.IncCounter(stats.MetricExpand, 1)

	chunks, err := c.parser.Parse(spec)
	if err != nil {
		c.stats.IncCounter(stats.MetricParseErrors, 1)
		return nil, err
	}
	return parse.Expand(chunks), nil
}

// FilesToCondensed condenses a list of file paths differing only by an
// embedded frame number into a single expression, e.g.
//
//	["/a/f.1.ext", "/a/f.2.ext", "/a/f.5.ext"] -> "/a/f.1-2,5.ext"
//
// All paths must share one directory (ErrDirectoryMismatch) and one
// prefix/postfix around the frame number (ErrNameMismatch); a name without
// a frame number fails with ErrNoFrameNumber except for the lenient
// single-file case described on WithStrictSingleFile. The batch fails as a
// whole; no partial result is returned.
func (c *Codec) FilesToCondensed(paths []string) (string, error) {
	c.stats.IncCounter(stats.MetricCondense, 1)

	batch, err := c.extractor.SplitBatch(paths, c.strictSingle)
	if err != nil {
		c.stats.IncCounter(stats.MetricBatchErrors, 1)
		return "", err
	}
	if len(paths) == 0 {
		return "", nil
	}

	c.stats.IncCounter(stats.MetricFramesIn, int64(len(batch.Frames)))

	sorted := dedupeSorted(batch.Frames)
	spec := runs.Format(runs.Group(sorted, c.twoPass), c.stepDelim)

	c.logger.Debug("files condensed",
		zap.Int("files", len(paths)),
		zap.String("prefix", batch.Prefix),
		zap.String("postfix", batch.Postfix),
	)
	return batch.Dir + batch.Prefix + spec + batch.Postfix, nil
}

// CondensedToFiles expands a condensed expression back into one path per
// frame. An optional padding argument overrides the configured default;
// when neither is set the pad width is derived from the widest absolute
// frame value in the expression. Padding zero renders frames with no
// leading zeros. An expression containing no framespec is returned
// unexpanded as a single-element list.
func (c *Codec) CondensedToFiles(expression string, padding ...int) ([]string, error) {
	seq, err := c.ExpandFiles(expression, padding...)
	if err != nil {
		return nil, err
	}

	var out []string
	for p := range seq {
		out = append(out, p)
	}
	c.stats.IncCounter(stats.MetricFramesOut, int64(len(out)))
	return out, nil
}

// ExpandFiles is the lazy variant of CondensedToFiles: paths are produced
// one at a time so a compact expression like "f.1-1000000.exr" never
// materializes a slice unless the caller collects it.
func (c *Codec) ExpandFiles(expression string, padding ...int) (iter.Seq[string], error) {
	c.stats.IncCounter(stats.MetricExpand, 1)

	base, spec, ext, ok := c.parser.Span(expression)
	if !ok {
		return func(yield func(string) bool) {
			yield(expression)
		}, nil
	}

	chunks, err := c.parser.Parse(spec)
	if err != nil {
		c.stats.IncCounter(stats.MetricParseErrors, 1)
		return nil, err
	}

	// Padding priority: per-call override, configured default, then the
	// digit count of the widest absolute frame value. The derived value is
	// local to this call; the codec is never mutated.
	pad := 0
	switch {
	case len(padding) > 0:
		pad = padding[0]
	case c.padSet:
		pad = c.padding
	default:
		pad = len(strconv.Itoa(parse.MaxAbs(chunks)))
	}

	return func(yield func(string) bool) {
		for v := range parse.Expand(chunks) {
			if !yield(base + formatFrame(v, pad) + ext) {
				return
			}
		}
	}, nil
}

// GroupFiles partitions arbitrary file paths into batches that each satisfy
// the condensation contract: same directory, prefix, and postfix. Paths
// without a frame number become singleton groups. Group order follows first
// appearance; order within a group is preserved.
func (c *Codec) GroupFiles(paths []string) ([][]string, error) {
	var order []string
	groups := make(map[string][]string)

	for _, p := range paths {
		dir, name := filepath.Split(p)

		var k string
		prefix, _, postfix, err := c.extractor.Split(name)
		switch {
		case err == nil:
			k = dir + "\x00" + prefix + "\x00" + postfix
		case errors.Is(err, ErrNoFrameNumber):
			// Frameless names never merge with anything.
			k = "\x00lone\x00" + p
		default:
			return nil, err
		}

		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], p)
	}

	out := make([][]string, 0, len(order))
	for _, k := range order {
		out = append(out, groups[k])
	}
	return out, nil
}

// formatFrame renders a frame number at the given pad width. The sign is
// not counted toward the width, so -5 at width 3 is "-005".
func formatFrame(v, pad int) string {
	if pad <= 0 {
		return strconv.Itoa(v)
	}
	if v < 0 {
		return "-" + padLeft(strconv.Itoa(-v), pad)
	}
	return padLeft(strconv.Itoa(v), pad)
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// dedupeSorted returns a sorted copy of frames with duplicates removed.
func dedupeSorted(frames []int) []int {
	if len(frames) == 0 {
		return nil
	}
	out := make([]int, len(frames))
	copy(out, frames)
	sort.Ints(out)

	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[i-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}
