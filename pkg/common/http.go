package common

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
)

// Unexported type
type httpUtil struct{}

// exported global variable
var HttpUtil httpUtil

// The shared client used for plain downloads.
var retryingClient = NewRetryingClient()

// Downloads the file from the given url and calculates its sha256 while streaming,
// so the payload is never fully buffered in memory. Returns the hex digest.
func (h httpUtil) DownloadToSha256(url string) (string, error) {
	resp, err := retryingClient.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download file '%s'. Status code: %d", url, resp.StatusCode)
	}
	hash := sha256.New()
	if _, err := io.Copy(hash, resp.Body); err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

func (h httpUtil) AddBearerToRequest(request *http.Request, token string) {
	if len(token) > 0 {
		request.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	}
}

func (h httpUtil) AddBasicAuth(request *http.Request, username, password string) {
	if len(username) > 0 && len(password) > 0 {
		request.SetBasicAuth(username, password)
	}
}
