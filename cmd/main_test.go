package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"s3load/benchmark"
)

func TestRunMissingRequiredFlags(t *testing.T) {
	code := run([]string{"upload", "--bucket", "bench"})
	assert.Equal(t, benchmark.ExitBadArguments, code)
}

func TestRunUnknownCommand(t *testing.T) {
	code := run([]string{"download"})
	assert.Equal(t, benchmark.ExitBadArguments, code)
}

func TestRunNegativeObjectCount(t *testing.T) {
	code := run([]string{
		"upload",
		"--endpoint", "https://storage.example.com",
		"--s3key", "key",
		"--s3secret", "secret",
		"--bucket", "bench",
		"--object-count=-1",
	})
	assert.Equal(t, benchmark.ExitBadArguments, code)
}
