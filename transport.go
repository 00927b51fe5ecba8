package msg91

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxBodyBytes caps how much of a provider response is read and retained.
const maxBodyBytes = 16 * 1024

// apiEnvelope mirrors the {type, message} shape MSG91 wraps error
// payloads in.
type apiEnvelope struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// withTimeout wraps the context with the client timeout unless the caller
// already supplied a deadline.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// do performs one API call: it builds the request, attaches auth and
// content headers, executes it, and either decodes a 2xx JSON body into
// out or maps the failure to an *APIError. Network failures are wrapped
// so the underlying error stays reachable with errors.Is.
//
// endpoint is resolved against the client base URL unless it is already
// absolute; the legacy api.msg91.com endpoints pass absolute URLs.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body any, out any) error {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	rawURL := endpoint
	if !strings.Contains(endpoint, "://") {
		rawURL = c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	}
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("msg91: marshal request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, payload)
	if err != nil {
		return fmt.Errorf("msg91: new request: %w", err)
	}
	req.Header.Set("authkey", c.authKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("endpoint", endpoint).
		Msg("msg91 request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().
			Str("request_id", requestID).
			Str("endpoint", endpoint).
			Err(err).
			Msg("msg91 request failed")
		return fmt.Errorf("msg91: http do: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("msg91: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Raw:        string(raw),
		}
		var envelope apiEnvelope
		if jsonErr := json.Unmarshal(raw, &envelope); jsonErr == nil {
			apiErr.Type = envelope.Type
			apiErr.Message = envelope.Message
		}
		c.logger.Warn().
			Str("request_id", requestID).
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("provider_type", apiErr.Type).
			Msg("msg91 request rejected")
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("msg91: decode response: %w", err)
		}
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Msg("msg91 request succeeded")

	return nil
}
