package benchmark

import "time"

// ObjectTiming records one completed upload, in completion order.
type ObjectTiming struct {
	Key      string
	Duration time.Duration
}

// RunSummary aggregates a whole run. It is built incrementally by the
// Runner and immutable once the loop ends or aborts.
type RunSummary struct {
	ObjectCount int
	TotalBytes  int64
	Elapsed     time.Duration
	Objects     []ObjectTiming
}

// ThroughputMBps returns total bytes over wall-clock duration in MB/s,
// using 1048576 bytes per MB. A zero duration yields 0.
func (s RunSummary) ThroughputMBps() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.TotalBytes) / (1024 * 1024) / secs
}
