package benchmark

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"s3load/progress"
)

// Reporter consumes the outcome of a run. Implementations format output;
// they make no control-flow decisions.
type Reporter interface {
	Summary(params UploadParams, summary RunSummary)
	Failure(params UploadParams, key string, err error)
	InvalidSize(value string, err error)
}

// Runner drives the requested object count sequentially through an
// Uploader, one upload at a time, and owns the running summary. The first
// failed upload aborts the run; there are no retries anywhere.
type Runner struct {
	uploader *Uploader
	reporter Reporter

	// Progress renders a terminal progress bar while uploading.
	Progress bool
}

// NewRunner returns a Runner uploading through client and reporting to reporter.
func NewRunner(client StreamUploader, reporter Reporter) *Runner {
	return &Runner{uploader: NewUploader(client), reporter: reporter}
}

// Run executes the upload loop for params and returns the run summary and
// the process exit code: 0 on success, 1 when an upload failed, 2 when the
// size expression was invalid (no upload is attempted in that case).
func (r *Runner) Run(ctx context.Context, params UploadParams) (RunSummary, int) {
	size, err := ParseSize(params.ObjectSize)
	if err != nil {
		r.reporter.InvalidSize(params.ObjectSize, err)
		return RunSummary{}, ExitBadArguments
	}

	var limiter *rate.Limiter
	if params.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(params.RateLimit), 1)
	}

	var bar *progress.Bar
	if r.Progress && params.ObjectCount > 0 {
		bar = progress.NewBar(int64(params.ObjectCount)).SetCaption("Uploading")
		defer bar.Finish()
	}

	summary := RunSummary{ObjectCount: params.ObjectCount}
	start := time.Now()

	for i := 0; i < params.ObjectCount; i++ {
		key, err := GenerateObjectKey()
		if err != nil {
			summary.Elapsed = time.Since(start)
			r.reporter.Failure(params, key, err)
			return summary, ExitUploadFailed
		}

		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				summary.Elapsed = time.Since(start)
				r.reporter.Failure(params, key, err)
				return summary, ExitUploadFailed
			}
		}

		result := r.uploader.Upload(ctx, params.Bucket, key, size)
		if result.Failed() {
			summary.Elapsed = time.Since(start)
			r.reporter.Failure(params, result.Key, result.Err)
			return summary, ExitUploadFailed
		}

		summary.TotalBytes += size
		summary.Objects = append(summary.Objects, ObjectTiming{Key: result.Key, Duration: result.Duration})
		if bar != nil {
			bar.Increment()
		}
	}

	summary.Elapsed = time.Since(start)
	r.reporter.Summary(params, summary)
	return summary, ExitOK
}
