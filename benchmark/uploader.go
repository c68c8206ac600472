package benchmark

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// StreamUploader is the storage-client capability the uploader needs:
// stream a request body to bucket+key. *manager.Uploader satisfies it.
type StreamUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// UploadResult is the outcome of a single object upload. An upload either
// fully succeeds or is recorded as a complete failure for its key.
type UploadResult struct {
	Key      string
	Duration time.Duration
	Err      error
}

// Failed reports whether the upload was classified as a failure.
func (r UploadResult) Failed() bool { return r.Err != nil }

// Uploader performs one timed upload per call through an injected storage
// client. It owns each content stream for the duration of the attempt and
// releases it on every exit path.
type Uploader struct {
	client StreamUploader
}

// NewUploader returns an Uploader backed by client.
func NewUploader(client StreamUploader) *Uploader {
	return &Uploader{client: client}
}

// Upload streams size random bytes to bucket/key and measures elapsed
// wall-clock time. Failures are carried in the result, never retried.
func (u *Uploader) Upload(ctx context.Context, bucket, key string, size int64) UploadResult {
	body, err := NewRandomReader(size, DefaultChunkSize)
	if err != nil {
		return UploadResult{Key: key, Err: err}
	}
	defer body.Close()

	start := time.Now()
	_, err = u.client.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		return UploadResult{Key: key, Err: describeUploadError(err)}
	}
	return UploadResult{Key: key, Duration: time.Since(start)}
}

// describeUploadError surfaces the service error code when the SDK exposes
// one, so log entries carry more than a generic transport message.
func describeUploadError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err
}
