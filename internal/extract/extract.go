// Package extract decomposes sequence file names into prefix, frame number,
// and postfix using a configurable pattern and capture-group mapping.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Sentinel errors for the extraction and batch contracts.
var (
	// ErrNoFrameNumber indicates a file name did not match the frame pattern.
	ErrNoFrameNumber = errors.New("framespec: no frame number found")

	// ErrDirectoryMismatch indicates a batch of files spans multiple directories.
	ErrDirectoryMismatch = errors.New("framespec: all files must live in the same directory")

	// ErrNameMismatch indicates batch files differ beyond the frame number.
	ErrNameMismatch = errors.New("framespec: all file names must match except for the frame number")

	// ErrInvalidFrameValue indicates the frame capture group held a non-integer.
	ErrInvalidFrameValue = errors.New("framespec: frame number is not an integer")

	// ErrBadGroupIndex indicates a configured capture-group index is out of
	// range for the frame pattern. Reported at construction, never at use.
	ErrBadGroupIndex = errors.New("framespec: capture group index out of range")
)

// DefaultPattern matches the last maximal run of digits in a name, with an
// optional immediately preceding minus sign. Submatch 1 is the prefix,
// submatch 2 the frame number, submatch 3 the postfix.
var DefaultPattern = regexp.MustCompile(`^(.*?)(-?\d+)(\D*)$`)

// Extractor splits file names according to a frame pattern and a mapping of
// capture groups onto prefix, frame, and postfix. Group indices are 1-based
// submatch indices. Immutable after New.
type Extractor struct {
	pat           *regexp.Regexp
	prefixGroups  []int
	frameGroup    int
	postfixGroups []int
}

// New creates an Extractor and validates every configured group index
// against the pattern's capture-group count.
func New(pat *regexp.Regexp, prefixGroups []int, frameGroup int, postfixGroups []int) (*Extractor, error) {
	n := pat.NumSubexp()
	for _, g := range append(append([]int{frameGroup}, prefixGroups...), postfixGroups...) {
		if g < 1 || g > n {
			return nil, fmt.Errorf("%w: group %d, pattern has %d groups", ErrBadGroupIndex, g, n)
		}
	}
	return &Extractor{
		pat:           pat,
		prefixGroups:  prefixGroups,
		frameGroup:    frameGroup,
		postfixGroups: postfixGroups,
	}, nil
}

// Default returns an Extractor over DefaultPattern with the standard group
// mapping (prefix 1, frame 2, postfix 3).
func Default() *Extractor {
	e, err := New(DefaultPattern, []int{1}, 2, []int{3})
	if err != nil {
		panic(err) // static configuration, cannot fail
	}
	return e
}

// Split decomposes a single directory-stripped file name. It fails with
// ErrNoFrameNumber when the pattern does not match and ErrInvalidFrameValue
// when the frame group captures text that is not an integer.
func (e *Extractor) Split(name string) (prefix string, frame int, postfix string, err error) {
	m := e.pat.FindStringSubmatch(name)
	if m == nil {
		return "", 0, "", fmt.Errorf("%w: %q", ErrNoFrameNumber, name)
	}

	var pre, post strings.Builder
	for _, g := range e.prefixGroups {
		pre.WriteString(m[g])
	}
	for _, g := range e.postfixGroups {
		post.WriteString(m[g])
	}

	frame, err = strconv.Atoi(m[e.frameGroup])
	if err != nil {
		return "", 0, "", fmt.Errorf("%w: %q in %q", ErrInvalidFrameValue, m[e.frameGroup], name)
	}

	return pre.String(), frame, post.String(), nil
}

// Batch is the shared decomposition of a list of sequence files. Dir keeps
// its trailing separator so Dir+Prefix+...+Postfix reassembles a path
// verbatim. Frames preserves input order and may repeat.
type Batch struct {
	Dir     string
	Prefix  string
	Postfix string
	Frames  []int
}

// SplitBatch decomposes a list of file paths that differ only by frame
// number. Every path must resolve to the same directory, prefix, and
// postfix. A single path with no frame number degenerates to a frameless
// batch whose prefix is the whole name, unless strictSingle is set, in
// which case it fails like any other non-matching name.
func (e *Extractor) SplitBatch(paths []string, strictSingle bool) (Batch, error) {
	var b Batch
	if len(paths) == 0 {
		return b, nil
	}

	first := true
	for _, p := range paths {
		dir, name := filepath.Split(p)

		if !first && dir != b.Dir {
			return Batch{}, fmt.Errorf("%w: %q and %q", ErrDirectoryMismatch, b.Dir, dir)
		}

		prefix, frame, postfix, err := e.Split(name)
		if err != nil {
			if errors.Is(err, ErrNoFrameNumber) && len(paths) == 1 && !strictSingle {
				return Batch{Dir: dir, Prefix: name}, nil
			}
			return Batch{}, err
		}

		if first {
			b.Dir = dir
			b.Prefix = prefix
			b.Postfix = postfix
			first = false
		} else if prefix != b.Prefix || postfix != b.Postfix {
			return Batch{}, fmt.Errorf("%w: %q vs %q",
				ErrNameMismatch, b.Prefix+"*"+b.Postfix, prefix+"*"+postfix)
		}

		b.Frames = append(b.Frames, frame)
	}

	return b, nil
}
