package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPathCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".s3load", "s3load.log")

	logger, err := OpenPath(path)
	require.NoError(t, err)
	logger.Infof("first record")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "| INFO | first record")
}

func TestOpenPathAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s3load.log")

	for _, msg := range []string{"one", "two"} {
		logger, err := OpenPath(path)
		require.NoError(t, err)
		logger.Infof("%s", msg)
		require.NoError(t, logger.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "one")
	assert.Contains(t, string(data), "two")
}

func TestRecordFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.now = func() time.Time {
		return time.Date(2024, 5, 1, 13, 37, 42, 0, time.UTC)
	}

	logger.Infof("uploaded %d objects", 3)
	logger.Errorf("boom")

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "2024-05-01 13:37:42 | INFO | uploaded 3 objects", lines[0])
	assert.Equal(t, "2024-05-01 13:37:42 | ERROR | boom", lines[1])
}
