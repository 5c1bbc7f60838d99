package client

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

	"github.com/dmitrijs2005/backoffice/internal/common"
	"github.com/dmitrijs2005/backoffice/internal/logging"
	"github.com/google/uuid"
)

// maxErrorBody bounds how much of an error response is read for the message.
const maxErrorBody = 4 << 10

// HTTPClient is the shared transport for all resource endpoints.
type HTTPClient struct {
	baseURL      string
	http         *http.Client
	logger       logging.Logger
	newRequestID func() string
}

// NewHTTPClient validates baseURL and builds a client. A zero timeout leaves
// requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: missing host", baseURL)
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: timeout},
		logger:       logger,
		newRequestID: uuid.NewString,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// do sends one request. body, when non-nil, is JSON encoded; out, when
// non-nil, receives the decoded JSON answer (an empty answer leaves it as is).
func (c *HTTPClient) do(ctx context.Context, op, method, path string, body any, out any) error {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := c.newRequestID()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	log := c.logger.With("op", op, "method", method, "url", target, "request_id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return &RemoteError{Op: op, Method: method, URL: target, Message: transportMessage(err), Err: err}
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(resp)
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "message", msg)
		return &RemoteError{Op: op, Method: method, URL: target, Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteError{Op: op, Method: method, URL: target, Status: resp.StatusCode, Message: "read response", Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &RemoteError{Op: op, Method: method, URL: target, Status: resp.StatusCode, Message: "decode response", Err: err}
	}
	return nil
}

func transportMessage(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "request cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	default:
		return "server unavailable"
	}
}

// errorMessage extracts a human readable reason from an error answer:
// the "message" or "error" member of a JSON body, else the trimmed text,
// else the status text.
func errorMessage(resp *http.Response) string {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	text := strings.TrimSpace(string(data))

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if text != "" && !strings.HasPrefix(text, "{") {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
