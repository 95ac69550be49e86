// Package parse implements the framespec grammar: comma-separated chunks of
// the form "N", "first-last", or "first-last<delim>step", with signed frame
// numbers.
package parse

import (
	"container/heap"
	"errors"
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformed indicates framespec text that contains characters outside the
// allowed set or a chunk that does not parse.
var ErrMalformed = errors.New("framespec: malformed framespec")

// Chunk is one normalized unit of a framespec. Start <= End and Step >= 1
// always hold after parsing; a reversed range is swapped into ascending
// order rather than preserved.
type Chunk struct {
	Start int
	End   int
	Step  int
}

// Last returns the largest value the chunk actually reaches, which for a
// strided chunk may fall short of End.
func (c Chunk) Last() int {
	return c.Start + ((c.End-c.Start)/c.Step)*c.Step
}

// Parser parses framespec strings using a configurable step delimiter and
// locates framespec spans inside larger strings via the span pattern.
type Parser struct {
	stepDelim string
	spanPat   *regexp.Regexp
}

// New creates a Parser. spanPat is the grammar used by Span to locate a
// framespec inside a condensed expression.
func New(stepDelim string, spanPat *regexp.Regexp) *Parser {
	return &Parser{
		stepDelim: stepDelim,
		spanPat:   spanPat,
	}
}

// DefaultSpanPattern returns the span grammar for the given step delimiter:
// one or more runs of digits, range dashes, strides, and commas.
func DefaultSpanPattern(stepDelim string) *regexp.Regexp {
	d := regexp.QuoteMeta(stepDelim)
	return regexp.MustCompile(`(?:-?\d+(?:-?-\d+)?(?:` + d + `\d+)?,?)+`)
}

// Parse parses a framespec string into normalized chunks. An empty string
// yields no chunks. Characters outside digits, ',', '-', and the step
// delimiter fail with ErrMalformed, as does any chunk that cannot be read
// as a range with an optional positive step.
func (p *Parser) Parse(spec string) ([]Chunk, error) {
	if spec == "" {
		return nil, nil
	}

	if err := p.validate(spec); err != nil {
		return nil, err
	}

	parts := strings.Split(spec, ",")
	chunks := make([]Chunk, 0, len(parts))
	for _, part := range parts {
		c, err := p.parseChunk(part)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}
	return chunks, nil
}

// validate checks the framespec character set before any splitting.
func (p *Parser) validate(spec string) error {
	allowed := "0123456789-," + p.stepDelim
	for i, r := range spec {
		if !strings.ContainsRune(allowed, r) {
			return fmt.Errorf("%w: illegal character %q at offset %d", ErrMalformed, r, i)
		}
	}
	return nil
}

func (p *Parser) parseChunk(chunk string) (Chunk, error) {
	if chunk == "" {
		return Chunk{}, fmt.Errorf("%w: empty chunk", ErrMalformed)
	}

	rangeStr := chunk
	stepStr := "1"
	if before, after, ok := strings.Cut(chunk, p.stepDelim); ok {
		rangeStr = before
		stepStr = after
	}

	startStr, endStr := splitRange(rangeStr)

	start, err := strconv.Atoi(startStr)
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: bad range start in chunk %q", ErrMalformed, chunk)
	}
	end, err := strconv.Atoi(endStr)
	if err != nil {
		return Chunk{}, fmt.Errorf("%w: bad range end in chunk %q", ErrMalformed, chunk)
	}
	step, err := strconv.Atoi(stepStr)
	if err != nil || step < 1 {
		return Chunk{}, fmt.Errorf("%w: bad step in chunk %q", ErrMalformed, chunk)
	}

	if start > end {
		start, end = end, start
	}
	return Chunk{Start: start, End: end, Step: step}, nil
}

// splitRange resolves the range separator. A "--" means the end is a
// negative literal, so the split happens at the last occurrence of "--" and
// the trailing part keeps its minus. Otherwise the split happens at the
// last single '-', except at position zero: a leading minus belongs to the
// start value, which is how "-2-1" reads as start -2, end 1.
func splitRange(rangeStr string) (startStr, endStr string) {
	if idx := strings.LastIndex(rangeStr, "--"); idx >= 0 {
		return rangeStr[:idx], rangeStr[idx+1:]
	}
	if idx := strings.LastIndex(rangeStr, "-"); idx > 0 {
		return rangeStr[:idx], rangeStr[idx+1:]
	}
	return rangeStr, rangeStr
}

// Span locates the framespec inside a larger string. It returns the text
// before the span, the span itself, and the text after. ok is false when
// the string contains no framespec, in which case base holds the whole
// input.
func (p *Parser) Span(s string) (base, spec, ext string, ok bool) {
	loc := p.spanPat.FindStringIndex(s)
	if loc == nil {
		return s, "", "", false
	}
	return s[:loc[0]], s[loc[0]:loc[1]], s[loc[1]:], true
}

// Frames expands chunks eagerly into a sorted, deduplicated slice.
func Frames(chunks []Chunk) []int {
	var out []int
	for v := range Expand(chunks) {
		out = append(out, v)
	}
	return out
}

// MaxAbs returns the largest absolute value reached by any chunk, or 0 for
// an empty chunk list. Arithmetic progressions attain their extremes at the
// endpoints, so only Start and Last need checking.
func MaxAbs(chunks []Chunk) int {
	max := 0
	for _, c := range chunks {
		for _, v := range [2]int{c.Start, c.Last()} {
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
	}
	return max
}

// Expand yields the frames described by chunks in ascending order with
// duplicates removed. The sequence is restartable: ranging over it again
// replays the expansion from the beginning. Chunks may overlap; a k-way
// merge over the chunk progressions keeps memory proportional to the number
// of chunks, not the number of frames.
func Expand(chunks []Chunk) iter.Seq[int] {
	return func(yield func(int) bool) {
		h := make(cursorHeap, 0, len(chunks))
		for _, c := range chunks {
			h = append(h, cursor{next: c.Start, chunk: c})
		}
		heap.Init(&h)

		emitted := false
		var last int
		for h.Len() > 0 {
			cur := h[0]
			v := cur.next
			if v+cur.chunk.Step > cur.chunk.End {
				heap.Pop(&h)
			} else {
				h[0].next += cur.chunk.Step
				heap.Fix(&h, 0)
			}

			if emitted && v == last {
				continue
			}
			if !yield(v) {
				return
			}
			emitted = true
			last = v
		}
	}
}

// cursor tracks the next unconsumed value of one chunk's progression.
type cursor struct {
	next  int
	chunk Chunk
}

type cursorHeap []cursor

func (h cursorHeap) Len() int           { return len(h) }
func (h cursorHeap) Less(i, j int) bool { return h[i].next < h[j].next }
func (h cursorHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *cursorHeap) Push(x any)        { *h = append(*h, x.(cursor)) }

func (h *cursorHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
