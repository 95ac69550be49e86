package codec

import "io"

// Noop implements no compression.
type Noop struct{}

// Compile-time check that Noop implements Codec.
var _ Codec = Noop{}

// Reader returns r wrapped as a ReadCloser (no decompression). Closing the
// wrapper never closes r; the underlying stream stays the caller's to
// close, as with the real codecs.
func (Noop) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

// Writer returns w wrapped as a WriteCloser (no compression). Closing the
// wrapper never closes w.
func (Noop) Writer(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

// Extension returns empty string.
func (Noop) Extension() string {
	return ""
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
