package scanner

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3 lists object keys under an Amazon S3 prefix.
type S3 struct {
	client *s3.Client
	bucket string
	source string
	prefix string

	region   string
	endpoint string
}

// Compile-time check that S3 implements Lister.
var _ Lister = (*S3)(nil)

// S3Option configures an S3 lister.
type S3Option func(*S3)

// WithRegion sets the AWS region.
func WithRegion(region string) S3Option {
	return func(s *S3) {
		s.region = region
	}
}

// WithEndpoint sets a custom endpoint (for S3-compatible services like MinIO).
func WithEndpoint(endpoint string) S3Option {
	return func(s *S3) {
		s.endpoint = endpoint
	}
}

// NewS3 creates a lister for an "s3://bucket/prefix" source using the
// default AWS credential chain.
func NewS3(ctx context.Context, source string, opts ...S3Option) (*S3, error) {
	bucket, prefix, err := splitBucketPath("s3", source)
	if err != nil {
		return nil, err
	}

	s := &S3{
		bucket: bucket,
		source: source,
		prefix: prefix,
	}
	for _, opt := range opts {
		opt(s)
	}

	var loadOpts []func(*config.LoadOptions) error
	if s.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(s.region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	s.client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.endpoint != "" {
			o.BaseEndpoint = aws.String(s.endpoint)
			o.UsePathStyle = true
		}
	})

	return s, nil
}

// List returns object paths directly under the prefix in s3:// form,
// paginating through the bucket as needed.
func (s *S3) List(ctx context.Context) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.bucket),
		Prefix:    aws.String(s.prefix),
		Delimiter: aws.String("/"),
	})

	var paths []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing %q: %w", s.source, err)
		}
		for _, obj := range page.Contents {
			paths = append(paths, "s3://"+s.bucket+"/"+aws.ToString(obj.Key))
		}
	}
	return paths, nil
}

// Close is a no-op; the S3 client holds no connections of its own.
func (s *S3) Close() error { return nil }
