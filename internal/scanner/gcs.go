package scanner

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCS lists object names under a Google Cloud Storage prefix.
type GCS struct {
	client *storage.Client
	bucket *storage.BucketHandle
	source string
	prefix string
}

// Compile-time check that GCS implements Lister.
var _ Lister = (*GCS)(nil)

// NewGCS creates a lister for a "gs://bucket/prefix" source.
func NewGCS(ctx context.Context, source string) (*GCS, error) {
	bucket, prefix, err := splitBucketPath("gs", source)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}

	return &GCS{
		client: client,
		bucket: client.Bucket(bucket),
		source: source,
		prefix: prefix,
	}, nil
}

// List returns object paths directly under the prefix, rendered in the
// same gs:// form as the source so condensed output stays addressable.
// The '/' delimiter keeps the listing non-recursive, mirroring the local
// lister's behavior.
func (g *GCS) List(ctx context.Context) ([]string, error) {
	it := g.bucket.Objects(ctx, &storage.Query{
		Prefix:    g.prefix,
		Delimiter: "/",
	})

	var paths []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing %q: %w", g.source, err)
		}
		if attrs.Name == "" {
			// Synthetic prefix entry for a sub-directory.
			continue
		}
		paths = append(paths, "gs://"+attrs.Bucket+"/"+attrs.Name)
	}
	return paths, nil
}

// Close releases the underlying client.
func (g *GCS) Close() error {
	return g.client.Close()
}
