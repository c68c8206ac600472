package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"1", 1},
		{"4k", 4096},
		{"8m", 8388608},
		{"2g", 2147483648},
		{"100K", 102400},
		{"0g", 0},
		{"  4k  ", 4096},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSizeInvalid(t *testing.T) {
	tests := []string{"", "abc", "-5", "5x", "-1k", "   ", "k"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSize(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSize)
		})
	}
}
