package common

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newFastRetryingClient() *http.Client {
	// Same policy as the production transport, just without the long delays
	return &http.Client{Transport: &retryingTransport{
		next:      http.DefaultTransport,
		attempts:  retryAttempts,
		baseDelay: time.Millisecond,
	}}
}

func TestRetryingTransportRecoversFromServerErrors(t *testing.T) {
	assert := assert.New(t)

	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		if requestCount < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	resp, err := newFastRetryingClient().Get(server.URL)
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal(3, requestCount)
}

func TestRetryingTransportGivesUpAfterAllAttempts(t *testing.T) {
	assert := assert.New(t)

	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	resp, err := newFastRetryingClient().Get(server.URL)
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(retryAttempts, requestCount)
}

func TestRetryingTransportDoesNotRetryNotFound(t *testing.T) {
	assert := assert.New(t)

	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	resp, err := newFastRetryingClient().Get(server.URL)
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusNotFound, resp.StatusCode)
	assert.Equal(1, requestCount)
}

func TestDownloadToSha256(t *testing.T) {
	assert := assert.New(t)

	payload := []byte("artifact payload for the checksum test")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	digest, err := HttpUtil.DownloadToSha256(server.URL + "/artifact.tar.gz")
	assert.NoError(err)

	expected := sha256.Sum256(payload)
	assert.Equal(hex.EncodeToString(expected[:]), digest)
}

func TestDownloadToSha256FailsOnMissingArtifact(t *testing.T) {
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	digest, err := HttpUtil.DownloadToSha256(server.URL + "/missing.tar.gz")
	assert.Error(err)
	assert.Empty(digest)
}
