// Package objectstore fetches source exports from S3 object storage.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/cenkalti/backoff/v4"
	"github.com/de-tools/story-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

const (
	DefaultRegion       = "us-east-1"
	DefaultMaxRetryTime = 30 * time.Second
)

// GetObjectAPI is the slice of the S3 client the fetcher needs.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Location struct {
	Bucket string
	Key    string
}

func (l Location) String() string {
	return "s3://" + l.Bucket + "/" + l.Key
}

func ParseURI(uri string) (Location, error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return Location{}, fmt.Errorf("not an s3 uri: %q", uri)
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return Location{}, fmt.Errorf("s3 uri needs a bucket and a key: %q", uri)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

type Fetcher interface {
	Fetch(ctx context.Context, location Location) ([]byte, error)
}

type fetcher struct {
	client       GetObjectAPI
	maxRetryTime time.Duration
}

func NewFetcher(client GetObjectAPI, maxRetryTime time.Duration) Fetcher {
	if maxRetryTime <= 0 {
		maxRetryTime = DefaultMaxRetryTime
	}
	return &fetcher{
		client:       client,
		maxRetryTime: maxRetryTime,
	}
}

// NewClient builds an S3 client from the shared AWS config for profile.
func NewClient(ctx context.Context, profile string) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithDefaultRegion(DefaultRegion)}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}

// Fetch downloads the object, retrying transient failures. A missing bucket or key
// reports store.ErrSourceUnavailable without retrying.
func (f *fetcher) Fetch(ctx context.Context, location Location) ([]byte, error) {
	logger := zerolog.Ctx(ctx).With().Str("object", location.String()).Logger()

	var body []byte
	op := func() error {
		out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: awssdk.String(location.Bucket),
			Key:    awssdk.String(location.Key),
		})
		if err != nil {
			if isNotFound(err) {
				return backoff.Permanent(fmt.Errorf("%w: %s", store.ErrSourceUnavailable, location))
			}
			logger.Warn().Err(err).Msg("get object failed, retrying")
			return err
		}
		defer out.Body.Close()

		var buf bytes.Buffer
		if _, err := io.Copy(&buf, out.Body); err != nil {
			return err
		}
		body = buf.Bytes()
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = f.maxRetryTime

	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}
	return body, nil
}

func isNotFound(err error) bool {
	var noKey *types.NoSuchKey
	var noBucket *types.NoSuchBucket
	var notFound *types.NotFound
	return errors.As(err, &noKey) || errors.As(err, &noBucket) || errors.As(err, &notFound)
}
