// Package report is the output boundary: it formats run results for the
// terminal and emits structured records to the run log.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"s3load/benchmark"
	"s3load/logging"
)

// Reporter implements benchmark.Reporter. It performs no control-flow
// decisions of its own.
type Reporter struct {
	out io.Writer
	log *logging.Logger
}

// New returns a Reporter writing human-readable lines to stdout and
// structured records to log.
func New(log *logging.Logger) *Reporter {
	return &Reporter{out: os.Stdout, log: log}
}

// NewWithWriter is like New but writes human-readable lines to out.
func NewWithWriter(out io.Writer, log *logging.Logger) *Reporter {
	return &Reporter{out: out, log: log}
}

// Summary prints the run summary line and logs one summary record plus one
// record per completed object.
func (r *Reporter) Summary(params benchmark.UploadParams, summary benchmark.RunSummary) {
	throughput := summary.ThroughputMBps()

	fmt.Fprintf(r.out, "Uploaded %d objects of %s to bucket '%s' in %.3fs. Throughput: %.2f MB/s\n",
		params.ObjectCount, params.ObjectSize, params.Bucket, summary.Elapsed.Seconds(), throughput)

	r.log.Infof("upload_summary | endpoint=%s region=%s bucket=%s objects=%d size=%s total_bytes=%d duration_s=%.4f throughput_mb_s=%.4f",
		params.Endpoint, params.Location, params.Bucket, params.ObjectCount, params.ObjectSize,
		summary.TotalBytes, summary.Elapsed.Seconds(), throughput)
	for _, obj := range summary.Objects {
		r.log.Infof("upload_object | key=%s duration_s=%.4f", obj.Key, obj.Duration.Seconds())
	}
}

// Failure prints the failing key with its error and logs one error record.
func (r *Reporter) Failure(params benchmark.UploadParams, key string, err error) {
	color.New(color.FgRed).Fprintf(r.out, "Upload failed for key %s: %v\n", key, err)

	r.log.Errorf("upload_failed | endpoint=%s bucket=%s key=%s error=%v",
		params.Endpoint, params.Bucket, key, err)
}

// InvalidSize reports an unparseable object-size expression.
func (r *Reporter) InvalidSize(value string, err error) {
	fmt.Fprintf(r.out, "Invalid --object-size: %v\n", err)

	r.log.Errorf("invalid_size | value=%s error=%v", value, err)
}
