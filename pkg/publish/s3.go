// Package publish uploads rendered sites to remote storage.
package publish

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/blizzard-html/blizzard/pkg/render"
	"github.com/blizzard-html/blizzard/pkg/site"
)

// S3API is the subset of the S3 client the publisher uses.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher renders pages and uploads them to an S3 bucket.
//
// Example usage:
//
//	client := s3.New(s3.Options{Region: "us-east-1"})
//	pub := publish.NewS3Publisher(client, "my-bucket", "site/")
//	err := pub.PublishSite(ctx, mySite)
type S3Publisher struct {
	client S3API
	bucket string
	prefix string
	logger *slog.Logger
}

// NewS3Publisher creates a publisher targeting the given bucket. Keys
// are placed under prefix, which may be empty.
func NewS3Publisher(client S3API, bucket, prefix string) *S3Publisher {
	return &S3Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: slog.Default().With("component", "publish"),
	}
}

// PublishPage renders a single page and uploads it. It returns the
// object key the page was written to.
func (p *S3Publisher) PublishPage(ctx context.Context, page site.Page) (string, error) {
	out := render.String(page.Render())
	key := ObjectKey(p.prefix, page.Path)

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(out),
		ContentType: aws.String("text/html; charset=utf-8"),
		Metadata: map[string]string{
			"page-title": page.Title,
		},
	})
	if err != nil {
		return "", fmt.Errorf("publish: upload %s: %w", key, err)
	}

	p.logger.Info("page published", "path", page.Path, "key", key, "bytes", len(out))
	return key, nil
}

// PublishSite renders and uploads every page of the site, in
// registration order. Publishing stops at the first failed upload.
func (p *S3Publisher) PublishSite(ctx context.Context, s *site.Site) error {
	for _, page := range s.Pages() {
		if _, err := p.PublishPage(ctx, page); err != nil {
			return err
		}
	}
	return nil
}

// ObjectKey returns the S3 key a page path is uploaded under.
func ObjectKey(prefix, path string) string {
	prefix = strings.Trim(prefix, "/")
	trimmed := strings.Trim(path, "/")

	parts := make([]string, 0, 3)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	if trimmed != "" {
		parts = append(parts, trimmed)
	}
	parts = append(parts, "index.html")
	return strings.Join(parts, "/")
}
