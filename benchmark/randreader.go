package benchmark

import (
	"crypto/rand"
	"fmt"
	"io"
)

// DefaultChunkSize bounds how many random bytes a single Read generates.
const DefaultChunkSize = 256 * 1024

// RandomReader streams cryptographically random bytes up to a fixed total.
// Each Read generates at most chunkSize fresh bytes, so peak memory stays
// independent of object size even for multi-gigabyte objects. A reader is
// consumed exactly once; it is not rewindable and not safe for concurrent use.
type RandomReader struct {
	remaining int64
	chunkSize int
}

// NewRandomReader returns a reader that yields exactly totalBytes random
// bytes before reporting end of stream. A chunkSize of zero or less selects
// DefaultChunkSize.
func NewRandomReader(totalBytes int64, chunkSize int) (*RandomReader, error) {
	if totalBytes < 0 {
		return nil, fmt.Errorf("total bytes must be non-negative, got %d", totalBytes)
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &RandomReader{remaining: totalBytes, chunkSize: chunkSize}, nil
}

// Read fills p with min(len(p), chunkSize, remaining) random bytes. Once the
// total has been delivered every call returns (0, io.EOF).
func (r *RandomReader) Read(p []byte) (int, error) {
	if r.remaining <= 0 {
		return 0, io.EOF
	}
	n := len(p)
	if n > r.chunkSize {
		n = r.chunkSize
	}
	if int64(n) > r.remaining {
		n = int(r.remaining)
	}
	if _, err := rand.Read(p[:n]); err != nil {
		return 0, fmt.Errorf("read random source: %w", err)
	}
	r.remaining -= int64(n)
	return n, nil
}

// Close releases the reader; subsequent reads report end of stream.
func (r *RandomReader) Close() error {
	r.remaining = 0
	return nil
}
