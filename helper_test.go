package msg91_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	msg91 "github.com/ajayykmr/msg91-go"
)

// stubHTTPClient records every request and replays canned responses, so
// tests can assert on the exact wire traffic without a network.
type stubHTTPClient struct {
	requests  []*http.Request
	bodies    []string
	status    int
	response  string
	responses []string
	err       error
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	body := ""
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		req.Body.Close()
		body = string(data)
	}
	s.requests = append(s.requests, req)
	s.bodies = append(s.bodies, body)

	if s.err != nil {
		return nil, s.err
	}

	status := s.status
	if status == 0 {
		status = http.StatusOK
	}
	payload := s.response
	if len(s.responses) > 0 {
		payload = s.responses[0]
		s.responses = s.responses[1:]
	}
	if payload == "" {
		payload = `{"type":"success","message":"ok"}`
	}

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(payload)),
		Header:     make(http.Header),
	}, nil
}

func newTestClient(t *testing.T, stub *stubHTTPClient, opts ...msg91.Option) *msg91.Client {
	t.Helper()
	opts = append([]msg91.Option{msg91.WithHTTPClient(stub)}, opts...)
	client, err := msg91.New("test-auth-key", opts...)
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}
	return client
}
