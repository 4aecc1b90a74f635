package corpus

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"
)

// S3Source loads corpus text from S3, either a single object (Key) or the
// concatenation of every object under a prefix (Prefix), joined with
// newlines in key order.
type S3Source struct {
	Client *s3.Client
	Bucket string

	// Key selects a single object. Takes precedence over Prefix.
	Key string

	// Prefix selects all objects sharing the prefix.
	Prefix string

	// Concurrency bounds parallel downloads in prefix mode. Defaults to 4.
	Concurrency int
}

// NewS3Source creates an S3Source whose client is built from the ambient
// AWS configuration (environment, shared config files, instance role).
func NewS3Source(ctx context.Context, bucket string, optFns ...func(*S3Source)) (*S3Source, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	s := &S3Source{
		Client: s3.NewFromConfig(cfg),
		Bucket: bucket,
	}
	for _, fn := range optFns {
		fn(s)
	}
	return s, nil
}

// Load implements Source.
func (s *S3Source) Load(ctx context.Context) (string, error) {
	if s.Key != "" {
		return s.download(ctx, s.Key)
	}
	return s.downloadPrefix(ctx)
}

func (s *S3Source) download(ctx context.Context, key string) (string, error) {
	downloader := manager.NewDownloader(s.Client)

	buf := manager.NewWriteAtBuffer(nil)
	_, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("download s3://%s/%s: %w", s.Bucket, key, err)
	}

	return string(buf.Bytes()), nil
}

func (s *S3Source) downloadPrefix(ctx context.Context) (string, error) {
	var keys []string

	paginator := s3.NewListObjectsV2Paginator(s.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.Bucket),
		Prefix: aws.String(s.Prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("list s3://%s/%s: %w", s.Bucket, s.Prefix, err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, *obj.Key)
		}
	}
	if len(keys) == 0 {
		return "", fmt.Errorf("%w: s3://%s/%s is empty", ErrNoSource, s.Bucket, s.Prefix)
	}
	sort.Strings(keys)

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	parts := make([]string, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			text, err := s.download(ctx, key)
			if err != nil {
				return err
			}
			parts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.Join(parts, "\n"), nil
}
