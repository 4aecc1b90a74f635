package corpus

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// MinIOSource loads corpus text from MinIO or any S3-compatible endpoint,
// with the same single-object / prefix semantics as S3Source.
type MinIOSource struct {
	Client *minio.Client
	Bucket string

	// Key selects a single object. Takes precedence over Prefix.
	Key string

	// Prefix selects all objects sharing the prefix.
	Prefix string

	// Concurrency bounds parallel downloads in prefix mode. Defaults to 4.
	Concurrency int
}

// Load implements Source.
func (s *MinIOSource) Load(ctx context.Context) (string, error) {
	if s.Key != "" {
		return s.download(ctx, s.Key)
	}
	return s.downloadPrefix(ctx)
}

func (s *MinIOSource) download(ctx context.Context, key string) (string, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("get %s/%s: %w", s.Bucket, key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("read %s/%s: %w", s.Bucket, key, err)
	}
	return string(data), nil
}

func (s *MinIOSource) downloadPrefix(ctx context.Context) (string, error) {
	var keys []string
	for obj := range s.Client.ListObjects(ctx, s.Bucket, minio.ListObjectsOptions{
		Prefix:    s.Prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return "", fmt.Errorf("list %s/%s: %w", s.Bucket, s.Prefix, obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	if len(keys) == 0 {
		return "", fmt.Errorf("%w: %s/%s is empty", ErrNoSource, s.Bucket, s.Prefix)
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
