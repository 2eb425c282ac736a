// Package gateway submits operator-drawn regions of interest to the camera
// server. It performs exactly one request per submission and never retries.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/soocke/camwall/domain/roi"
)

// maxErrorBody bounds how much of a failure response is kept as message text.
const maxErrorBody = 4 << 10

// Ack is the server acknowledgment for a stored ROI. Only its presence
// matters to callers; Message and ROI are filled when the server sends them.
type Ack struct {
	Message string          `json:"message"`
	ROI     *roi.Region     `json:"roi,omitempty"`
	Raw     json.RawMessage `json:"-"`
}

// SubmitError describes a failed submission. Status is 0 when no HTTP
// response was received.
type SubmitError struct {
	Camera  string
	Status  int
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("setroi %s: %s", e.Camera, e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("setroi %s: %d %s", e.Camera, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("setroi %s: %d %s", e.Camera, e.Status, e.Message)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// Client posts ROI updates to POST {base}/setroi/{camera}.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL with the given per-request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the escaped submission URL for camera.
func (c *Client) Endpoint(camera string) string {
	return c.baseURL + "/setroi/" + url.PathEscape(camera)
}

// Submit sends region for camera and returns the server acknowledgment.
// Any failure is returned as *SubmitError.
func (c *Client) Submit(ctx context.Context, camera string, region roi.Region) (Ack, error) {
	body, err := json.Marshal(region)
	if err != nil {
		return Ack{}, &SubmitError{Camera: camera, Message: err.Error(), Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(camera), bytes.NewReader(body))
	if err != nil {
		return Ack{}, &SubmitError{Camera: camera, Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Ack{}, &SubmitError{Camera: camera, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Ack{}, &SubmitError{Camera: camera, Status: resp.StatusCode, Message: errorText(raw)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Ack{}, &SubmitError{Camera: camera, Status: resp.StatusCode, Message: err.Error(), Err: err}
	}
	var ack Ack
	if err := json.Unmarshal(raw, &ack); err != nil {
		return Ack{}, &SubmitError{
			Camera:  camera,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("malformed acknowledgment: %v", err),
			Err:     err,
		}
	}
	ack.Raw = raw
	return ack, nil
}

// errorText extracts the server message: the "error" field of a JSON body
// when present, otherwise the trimmed body text.
func errorText(raw []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}

// IsStatus reports whether err is a SubmitError carrying the given HTTP status.
func IsStatus(err error, status int) bool {
	var se *SubmitError
	return errors.As(err, &se) && se.Status == status
}
