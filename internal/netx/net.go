// Package netx downloads objects from presigned object-storage URLs.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxDownloadSize caps how much of a presigned object Fetch reads.
const MaxDownloadSize = 64 << 20

var httpClient = &http.Client{Timeout: time.Minute}

// Fetch GETs url and returns the body. Any status other than 200 is an error
// that includes the start of the response body.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxDownloadSize {
		return nil, fmt.Errorf("download failed: object larger than %d bytes", MaxDownloadSize)
	}
	return body, nil
}
