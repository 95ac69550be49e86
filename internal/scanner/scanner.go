// Package scanner lists candidate sequence files from a local directory, a
// Google Cloud Storage bucket, or an Amazon S3 bucket so their names can be
// condensed. Only names are read; file contents are never touched.
package scanner

import (
	"context"
	"fmt"
	"strings"
)

// Lister enumerates file paths from one source.
type Lister interface {
	// List returns the paths found at the source, directory part included.
	List(ctx context.Context) ([]string, error)

	// Close releases any resources held by the lister.
	Close() error
}

// ForSource picks a lister from the source syntax: "gs://bucket/prefix" for
// GCS, "s3://bucket/prefix" for S3, anything else is a local directory.
func ForSource(ctx context.Context, source string, opts ...S3Option) (Lister, error) {
	switch {
	case strings.HasPrefix(source, "gs://"):
		return NewGCS(ctx, source)
	case strings.HasPrefix(source, "s3://"):
		return NewS3(ctx, source, opts...)
	default:
		return NewLocal(source), nil
	}
}

// splitBucketPath parses "<scheme>://bucket/prefix" into bucket and prefix.
// The prefix keeps a trailing slash when non-empty so listing stays inside
// the pseudo-directory.
func splitBucketPath(scheme, source string) (bucket, prefix string, err error) {
	rest := strings.TrimPrefix(source, scheme+"://")
	if rest == source || rest == "" {
		return "", "", fmt.Errorf("invalid %s path %q: must be %s://bucket[/prefix]", scheme, source, scheme)
	}

	parts := strings.SplitN(rest, "/", 2)
	bucket = parts[0]
	if bucket == "" {
		return "", "", fmt.Errorf("invalid %s path %q: missing bucket name", scheme, source)
	}
	if len(parts) > 1 {
		prefix = strings.TrimSuffix(parts[1], "/")
		if prefix != "" {
			prefix += "/"
		}
	}
	return bucket, prefix, nil
}
