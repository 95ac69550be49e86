// Package codec provides compression and decompression for manifest files.
// Render-farm manifests listing millions of frame paths compress well, so
// the manifest reader and the CLI accept gzip- and zstd-wrapped input and
// output transparently.
package codec

import (
	"io"
	"strings"
)

// Codec provides compression and decompression functionality.
type Codec interface {
	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader) (io.ReadCloser, error)
	// Writer wraps w to compress data written to it.
	Writer(w io.Writer) (io.WriteCloser, error)
	// Extension returns the file extension without dot (e.g., "zst", "gz").
	// Returns empty string for no compression.
	Extension() string
}

// ForPath picks a codec from the path's extension: ".zst" and ".gz" map to
// their codecs, anything else to the no-op codec.
func ForPath(path string) Codec {
	switch {
	case strings.HasSuffix(path, ".zst"):
		return Zstd{}
	case strings.HasSuffix(path, ".gz"):
		return Gzip{}
	default:
		return Noop{}
	}
}
