package stream

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	initialBackoff = 500 * time.Millisecond
	maxBackoff     = 10 * time.Second
)

// MJPEGClient consumes a multipart/x-mixed-replace MJPEG stream and yields JPEG frames.
type MJPEGClient struct {
	URL    string
	Client *http.Client
}

// NewMJPEGClient creates a client with dial timeouts but no overall request
// timeout; the stream is long-lived and bounded by the caller's context.
func NewMJPEGClient(url string) *MJPEGClient {
	return &MJPEGClient{
		URL: url,
		Client: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				IdleConnTimeout:       90 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
				MaxIdleConns:          10,
			},
		},
	}
}

// Stream connects and sends every JPEG part on frames until ctx is done.
// Connection failures and stream ends are retried with exponential backoff.
// frames is closed when Stream returns.
func (m *MJPEGClient) Stream(ctx context.Context, frames chan<- []byte) error {
	defer close(frames)
	backoff := initialBackoff
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		connected, err := m.readOnce(ctx, frames)
		if err != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		if connected {
			backoff = initialBackoff
		}
		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, maxBackoff)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// readOnce performs one connection and reads parts until the stream breaks.
func (m *MJPEGClient) readOnce(ctx context.Context, frames chan<- []byte) (connected bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.URL, nil)
	if err != nil {
		return false, fmt.Errorf("mjpeg request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept", "multipart/x-mixed-replace, image/jpeg, */*")

	resp, err := m.Client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("mjpeg status %d", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	_, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return false, fmt.Errorf("mjpeg content-type %q: %w", ct, err)
	}
	// Some cameras send the boundary with its leading dashes.
	boundary := strings.TrimPrefix(strings.TrimSpace(params["boundary"]), "--")
	if boundary == "" {
		return false, fmt.Errorf("missing boundary in content-type: %q", ct)
	}

	mr := multipart.NewReader(resp.Body, boundary)
	for {
		part, err := mr.NextPart()
		if err != nil {
			return true, err
		}
		buf, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			continue
		}
		select {
		case frames <- buf:
		case <-ctx.Done():
			return true, ctx.Err()
		}
	}
}
