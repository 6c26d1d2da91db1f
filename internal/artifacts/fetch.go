// Package artifacts downloads the model and tokenizer from S3 to the local
// paths the service loads them from.
package artifacts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectGetter is the part of *s3.Client the fetcher needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Fetcher struct {
	client ObjectGetter
	bucket string
}

func NewFetcher(client ObjectGetter, bucket string) *Fetcher {
	return &Fetcher{client: client, bucket: bucket}
}

// Fetch writes s3://bucket/key to dest. The file is written next to dest and
// renamed into place so a failed download never leaves a partial artifact.
func (f *Fetcher) Fetch(ctx context.Context, key, dest string) error {
	start := time.Now()
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to get s3://%s/%s: %w", f.bucket, key, err)
	}
	defer out.Body.Close()

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(dest)+".*.part")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, out.Body)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("failed to download s3://%s/%s: %w", f.bucket, key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("failed to move artifact into place: %w", err)
	}

	slog.Info("[ArtifactFetcher] Artifact downloaded",
		slog.String("bucket", f.bucket),
		slog.String("key", key),
		slog.String("path", dest),
		slog.Int64("bytes", n),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

// FetchAll downloads every key in objects (key -> destination path) and stops
// at the first failure.
func (f *Fetcher) FetchAll(ctx context.Context, objects map[string]string) error {
	for key, dest := range objects {
		if err := f.Fetch(ctx, key, dest); err != nil {
			return err
		}
	}
	return nil
}
