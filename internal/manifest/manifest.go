// Package manifest reads newline-delimited path manifests from local files
// or HTTP(S) URLs, transparently decompressing gzip and zstd input.
package manifest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sequencekit/framespec/internal/codec"
)

// DefaultResponseHeaderTimeout is the default timeout for receiving response headers.
const DefaultResponseHeaderTimeout = 30 * time.Second

// Reader loads path manifests. Blank lines and lines starting with '#' are
// skipped so hand-maintained manifests can carry comments.
type Reader struct {
	client *http.Client
}

// Option configures a Reader.
type Option func(*Reader)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Reader) {
		r.client = client
	}
}

// WithTimeout sets the overall timeout for HTTP fetches. The client's
// transport is left as configured.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Reader) {
		r.client.Timeout = timeout
	}
}

// New creates a Reader with sensible defaults.
func New(opts ...Option) *Reader {
	r := &Reader{
		client: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: DefaultResponseHeaderTimeout,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read loads the manifest at src, which is an http(s) URL or a local file
// path. Compression is inferred from the path extension (.gz, .zst).
func (r *Reader) Read(ctx context.Context, src string) ([]string, error) {
	raw, err := r.open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer raw.Close()

	decoded, err := codec.ForPath(src).Reader(raw)
	if err != nil {
		return nil, fmt.Errorf("decompressing manifest %q: %w", src, err)
	}
	defer decoded.Close()

	return parseLines(decoded)
}

func (r *Reader) open(ctx context.Context, src string) (io.ReadCloser, error) {
	if u, err := url.Parse(src); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, fmt.Errorf("building manifest request: %w", err)
		}
		resp, err := r.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching manifest %q: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetching manifest %q: unexpected status %s", src, resp.Status)
		}
		return resp.Body, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	return f, nil
}

func parseLines(r io.Reader) ([]string, error) {
	var paths []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return paths, nil
}
