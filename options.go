package framespec

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/sequencekit/framespec/internal/extract"
	"github.com/sequencekit/framespec/internal/parse"
	"github.com/sequencekit/framespec/internal/stats"
)

// Option configures a Codec.
type Option interface {
	apply(*options)
}

// options holds the codec configuration before validation.
type options struct {
	stepDelim string
	twoPass   bool

	framePattern  string // empty means extract.DefaultPattern
	prefixGroups  []int
	frameGroup    int
	postfixGroups []int

	spanPattern string // empty means parse.DefaultSpanPattern

	padding      int
	padSet       bool
	strictSingle bool

	stats  stats.Collector
	logger *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		stepDelim:     "x",
		twoPass:       true,
		prefixGroups:  []int{1},
		frameGroup:    2,
		postfixGroups: []int{3},
		stats:         stats.NewNoop(),
		logger:        zap.NewNop(),
	}
}

// build validates the configuration and compiles it into the extractor and
// parser. All misconfiguration is reported here, at construction.
func (o *options) build() (*extract.Extractor, *parse.Parser, error) {
	if o.stepDelim == "" {
		return nil, nil, fmt.Errorf("framespec: step delimiter must not be empty")
	}
	if strings.ContainsAny(o.stepDelim, "0123456789-,") {
		return nil, nil, fmt.Errorf("framespec: step delimiter %q collides with framespec syntax", o.stepDelim)
	}
	if o.padSet && o.padding < 0 {
		return nil, nil, fmt.Errorf("framespec: padding must be non-negative, got %d", o.padding)
	}

	framePat := extract.DefaultPattern
	if o.framePattern != "" {
		var err error
		framePat, err = regexp.Compile(o.framePattern)
		if err != nil {
			return nil, nil, fmt.Errorf("framespec: compiling frame pattern: %w", err)
		}
	}

	extractor, err := extract.New(framePat, o.prefixGroups, o.frameGroup, o.postfixGroups)
	if err != nil {
		return nil, nil, fmt.Errorf("framespec: %w", err)
	}

	spanPat := parse.DefaultSpanPattern(o.stepDelim)
	if o.spanPattern != "" {
		spanPat, err = regexp.Compile(o.spanPattern)
		if err != nil {
			return nil, nil, fmt.Errorf("framespec: compiling framespec pattern: %w", err)
		}
	}

	return extractor, parse.New(o.stepDelim, spanPat), nil
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithStepDelimiter sets the string separating a range from its step, as in
// "1-9x2". Default is "x". The delimiter may not contain digits, dashes, or
// commas.
func WithStepDelimiter(d string) Option {
	return optionFunc(func(o *options) {
		o.stepDelim = d
	})
}

// WithTwoPassRebalancing toggles the second grouping pass that migrates a
// stranded boundary value into a longer neighboring run. Enabled by
// default; turning it off trades slightly less natural groupings for one
// less pass over the runs.
func WithTwoPassRebalancing(enabled bool) Option {
	return optionFunc(func(o *options) {
		o.twoPass = enabled
	})
}

// WithFramePattern replaces the default frame-number pattern. The group
// arguments map the pattern's capture groups (1-based) onto the parts of
// the name: prefixGroups and postfixGroups are concatenated in order,
// frameGroup must capture the integer frame number. Indices are validated
// against the pattern when the codec is constructed.
func WithFramePattern(pattern string, prefixGroups []int, frameGroup int, postfixGroups []int) Option {
	return optionFunc(func(o *options) {
		o.framePattern = pattern
		o.prefixGroups = prefixGroups
		o.frameGroup = frameGroup
		o.postfixGroups = postfixGroups
	})
}

// WithFramespecPattern replaces the grammar used to locate a framespec span
// inside a condensed expression. The default accepts runs of digits, range
// dashes, strides, and commas built from the configured step delimiter.
func WithFramespecPattern(pattern string) Option {
	return optionFunc(func(o *options) {
		o.spanPattern = pattern
	})
}

// WithPadding sets the default zero-padding width used when expanding a
// condensed expression into file names. Zero disables padding entirely.
// When this option is absent the width is derived per call from the widest
// frame value in the expression.
func WithPadding(width int) Option {
	return optionFunc(func(o *options) {
		o.padding = width
		o.padSet = true
	})
}

// WithStrictSingleFile makes a single-file batch without a frame number an
// error. By default such a batch degenerates gracefully: the whole name is
// treated as the prefix of an unnumbered sequence of one.
func WithStrictSingleFile() Option {
	return optionFunc(func(o *options) {
		o.strictSingle = true
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger used for debug output.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}
