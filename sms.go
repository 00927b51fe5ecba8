package msg91

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

const (
	endpointFlow      = "flow"
	endpointLogs      = "report/logs/p/sms"
	endpointAnalytics = "report/analytics/p/sms"

	// Legacy v2 send endpoint, outside the v5 API root.
	legacySendURL = "https://api.msg91.com/api/v2/sendsms"
)

// SMSService sends templated messages through the Flow API and fetches
// delivery logs and analytics.
type SMSService struct {
	client *Client
}

// SendParams describes one templated send. Mobile accepts one or many
// numbers; it is always serialized as a JSON array.
type SendParams struct {
	TemplateID string
	Mobile     []string
	Variables  map[string]string
	SenderID   string
	// ShortURL toggles provider-side URL shortening when set.
	ShortURL *bool
}

type flowRequest struct {
	TemplateID string            `json:"template_id"`
	Mobile     []string          `json:"mobile"`
	Variables  map[string]string `json:"variables,omitempty"`
	Sender     string            `json:"sender,omitempty"`
	ShortURL   string            `json:"short_url,omitempty"`
}

// Send issues one POST to the Flow endpoint. It fails with a
// *ValidationError before any network call when the template id is empty
// or no usable mobile number remains after trimming.
func (s *SMSService) Send(ctx context.Context, params SendParams) (*SendResponse, error) {
	if strings.TrimSpace(params.TemplateID) == "" {
		return nil, validationErr("template_id", "template id is required")
	}

	mobiles := normalizeMobiles(params.Mobile)
	if len(mobiles) == 0 {
		return nil, validationErr("mobile", "at least one mobile number is required")
	}

	body := flowRequest{
		TemplateID: strings.TrimSpace(params.TemplateID),
		Mobile:     mobiles,
		Variables:  params.Variables,
		Sender:     strings.TrimSpace(params.SenderID),
	}
	if params.ShortURL != nil {
		body.ShortURL = boolFlag(*params.ShortURL)
	}

	var resp SendResponse
	if err := s.client.do(ctx, http.MethodPost, endpointFlow, nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReportQuery narrows logs and analytics requests to a date range. Dates
// use the provider's YYYY-MM-DD format and are forwarded verbatim; empty
// fields are omitted from the query entirely.
type ReportQuery struct {
	StartDate string
	EndDate   string
}

func (q ReportQuery) values() url.Values {
	vals := url.Values{}
	if strings.TrimSpace(q.StartDate) != "" {
		vals.Set("start_date", strings.TrimSpace(q.StartDate))
	}
	if strings.TrimSpace(q.EndDate) != "" {
		vals.Set("end_date", strings.TrimSpace(q.EndDate))
	}
	return vals
}

// Logs fetches SMS delivery logs, optionally filtered by date range.
func (s *SMSService) Logs(ctx context.Context, query ReportQuery) (*APIResponse, error) {
	var resp APIResponse
	if err := s.client.do(ctx, http.MethodGet, endpointLogs, query.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Analytics fetches aggregated SMS analytics, optionally filtered by
// date range.
func (s *SMSService) Analytics(ctx context.Context, query ReportQuery) (*APIResponse, error) {
	var resp APIResponse
	if err := s.client.do(ctx, http.MethodGet, endpointAnalytics, query.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RawSendParams describes a non-templated send through the legacy v2 API.
type RawSendParams struct {
	Mobile  []string
	Message string
	Sender  string
	// Route selects the SMS route: "1" promotional, "4" transactional.
	// Defaults to transactional.
	Route   string
	Country string
	Flash   *bool
	Unicode *bool
	// ScheduledAt defers delivery to the given provider-format timestamp.
	ScheduledAt string
	Campaign    string
}

type legacySendRequest struct {
	AuthKey     string `json:"authkey"`
	Mobiles     string `json:"mobiles"`
	Message     string `json:"message"`
	Sender      string `json:"sender"`
	Route       string `json:"route"`
	Response    string `json:"response"`
	Country     string `json:"country,omitempty"`
	Flash       string `json:"flash,omitempty"`
	Unicode     string `json:"unicode,omitempty"`
	ScheduledAt string `json:"scheduledatetime,omitempty"`
	Campaign    string `json:"campaign,omitempty"`
}

// SendRaw sends a plain message through the legacy v2 endpoint. The
// legacy API expects the auth key in the payload as well as the header,
// comma-joined mobile numbers, and "1"/"0" strings for boolean flags.
func (s *SMSService) SendRaw(ctx context.Context, params RawSendParams) (*APIResponse, error) {
	mobiles := normalizeMobiles(params.Mobile)
	if len(mobiles) == 0 {
		return nil, validationErr("mobile", "at least one mobile number is required")
	}
	if strings.TrimSpace(params.Message) == "" {
		return nil, validationErr("message", "message is required")
	}

	route := strings.TrimSpace(params.Route)
	if route == "" {
		route = "4"
	}

	body := legacySendRequest{
		AuthKey:     s.client.authKey,
		Mobiles:     strings.Join(mobiles, ","),
		Message:     params.Message,
		Sender:      strings.TrimSpace(params.Sender),
		Route:       route,
		Response:    "json",
		Country:     strings.TrimSpace(params.Country),
		ScheduledAt: strings.TrimSpace(params.ScheduledAt),
		Campaign:    strings.TrimSpace(params.Campaign),
	}
	if params.Flash != nil {
		body.Flash = boolFlag(*params.Flash)
	}
	if params.Unicode != nil {
		body.Unicode = boolFlag(*params.Unicode)
	}

	var resp APIResponse
	if err := s.client.do(ctx, http.MethodPost, legacySendURL, nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// normalizeMobiles trims every number and drops empties, preserving order.
func normalizeMobiles(mobiles []string) []string {
	out := make([]string, 0, len(mobiles))
	for _, m := range mobiles {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		out = append(out, m)
	}
	return out
}

func boolFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
