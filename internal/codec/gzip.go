package codec

import (
	"compress/gzip"
	"io"
)

// Gzip implements gzip compression.
type Gzip struct{}

// Compile-time check that Gzip implements Codec.
var _ Codec = Gzip{}

// Reader wraps r to decompress gzip data.
func (Gzip) Reader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// Writer wraps w to compress data with gzip.
func (Gzip) Writer(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}

// Extension returns "gz".
func (Gzip) Extension() string {
	return "gz"
}
