// Package publish uploads rendered pages to S3-compatible object storage.
//
//	client, err := publish.NewS3Client(ctx, "eu-west-1")
//	if err != nil {
//	    return err
//	}
//	p, err := publish.New(client, "my-site", publish.WithPrefix("docs/"))
//	if err != nil {
//	    return err
//	}
//	url, err := p.Publish(ctx, "index.html", html)
package publish

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/slotkit/internal/errors"
)

// ContentType is set on every uploaded page.
const ContentType = "text/html; charset=utf-8"

// DefaultKey is used when Publish is called with an empty key.
const DefaultKey = "index.html"

// PutObjectAPI is the subset of *s3.Client used by Publisher.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads rendered HTML to one bucket.
type Publisher struct {
	client PutObjectAPI
	bucket string
	prefix string
	layout string
	now    func() time.Time
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithPrefix prepends prefix to every key.
func WithPrefix(prefix string) Option {
	return func(p *Publisher) {
		p.prefix = prefix
	}
}

// WithLayout sets the layout name recorded in object metadata
// (default: "page").
func WithLayout(name string) Option {
	return func(p *Publisher) {
		p.layout = name
	}
}

// WithClock overrides the time source for the rendered-at metadata.
func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		p.now = now
	}
}

// CheckBucket returns an E402 error if bucket is empty.
func CheckBucket(bucket string) error {
	if strings.TrimSpace(bucket) == "" {
		return errors.New("E402").WithSuggestion("Pass --bucket or set publish.bucket in slotkit.yaml")
	}
	return nil
}

// New creates a Publisher. It returns an E402 error if bucket is empty.
func New(client PutObjectAPI, bucket string, opts ...Option) (*Publisher, error) {
	if err := CheckBucket(bucket); err != nil {
		return nil, err
	}

	p := &Publisher{
		client: client,
		bucket: bucket,
		layout: "page",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Key returns the object key key is stored under.
func (p *Publisher) Key(key string) string {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		key = DefaultKey
	}
	return p.prefix + key
}

// Publish uploads html under key and returns its s3:// URL.
func (p *Publisher) Publish(ctx context.Context, key string, html []byte) (string, error) {
	objectKey := p.Key(key)

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(html),
		ContentType: aws.String(ContentType),
		Metadata: map[string]string{
			"layout":      p.layout,
			"rendered-at": p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", errors.New("E401").Wrap(err).
			WithDetailf("put s3://%s/%s: %v", p.bucket, objectKey, err)
	}

	return "s3://" + p.bucket + "/" + objectKey, nil
}

// NewS3Client creates an S3 client from the default AWS credential chain.
// An empty region leaves the region to the environment and shared config.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.New("E401").Wrap(err).WithDetailf("load AWS config: %v", err)
	}
	return s3.NewFromConfig(cfg), nil
}
