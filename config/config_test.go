package config

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3Client(t *testing.T) {
	client, err := NewS3Client(context.Background(), S3Config{
		Endpoint:        "https://storage.example.com",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		Region:          "us-east-1",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewHTTPClientInsecure(t *testing.T) {
	client, err := newHTTPClient(true)
	require.NoError(t, err)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.TLSClientConfig)
	assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
}

func TestNewHTTPClientSecureByDefault(t *testing.T) {
	client, err := newHTTPClient(false)
	require.NoError(t, err)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	if transport.TLSClientConfig != nil {
		assert.False(t, transport.TLSClientConfig.InsecureSkipVerify)
	}
}
