package msg91

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	endpointAddTemplate        = "sms/addTemplate"
	endpointAddTemplateVersion = "sms/addTemplateVersion"
	endpointTemplateVersions   = "sms/getTemplateVersions"
	endpointMarkActive         = "sms/markActive"
)

// SMSType selects the character set a template is registered with.
type SMSType string

const (
	SMSTypeNormal  SMSType = "NORMAL"
	SMSTypeUnicode SMSType = "UNICODE"
)

func (t SMSType) valid() bool {
	return t == SMSTypeNormal || t == SMSTypeUnicode
}

// TemplateService manages reusable SMS templates and their versions.
type TemplateService struct {
	client *Client
}

// CreateTemplateParams describes a new template. Body may contain
// {{var}} placeholders; whether variable values match the placeholders
// is validated by the provider, not locally.
type CreateTemplateParams struct {
	Name     string
	Body     string
	SenderID string
	Type     SMSType
}

type createTemplateRequest struct {
	TemplateName string `json:"template_name"`
	Template     string `json:"template"`
	SenderID     string `json:"sender_id"`
	SMSType      string `json:"smsType"`
}

// Create registers a new template. Type must be NORMAL or UNICODE; any
// other value is a *ValidationError raised before the network call.
func (t *TemplateService) Create(ctx context.Context, params CreateTemplateParams) (*APIResponse, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, validationErr("template_name", "template name is required")
	}
	if strings.TrimSpace(params.Body) == "" {
		return nil, validationErr("template", "template body is required")
	}
	if !params.Type.valid() {
		return nil, validationErr("smsType", fmt.Sprintf("sms type must be %s or %s", SMSTypeNormal, SMSTypeUnicode))
	}

	body := createTemplateRequest{
		TemplateName: strings.TrimSpace(params.Name),
		Template:     params.Body,
		SenderID:     strings.TrimSpace(params.SenderID),
		SMSType:      string(params.Type),
	}

	var resp APIResponse
	if err := t.client.do(ctx, http.MethodPost, endpointAddTemplate, nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type templateVersionsResponse struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Data    []TemplateVersion `json:"data"`
}

// Get returns the versions of a template in the order the provider
// reports them.
func (t *TemplateService) Get(ctx context.Context, templateID string) ([]TemplateVersion, error) {
	if strings.TrimSpace(templateID) == "" {
		return nil, validationErr("template_id", "template id is required")
	}

	query := url.Values{}
	query.Set("template_id", strings.TrimSpace(templateID))

	var resp templateVersionsResponse
	if err := t.client.do(ctx, http.MethodGet, endpointTemplateVersions, query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// AddVersionParams describes a new revision of an existing template.
type AddVersionParams struct {
	TemplateID string
	Body       string
	SenderID   string
}

type addVersionRequest struct {
	TemplateID string `json:"template_id"`
	Template   string `json:"template"`
	SenderID   string `json:"sender_id"`
}

// AddVersion appends a new version to a template. The active version is
// left unchanged; use SetDefault to switch.
func (t *TemplateService) AddVersion(ctx context.Context, params AddVersionParams) (*APIResponse, error) {
	if strings.TrimSpace(params.TemplateID) == "" {
		return nil, validationErr("template_id", "template id is required")
	}
	if strings.TrimSpace(params.Body) == "" {
		return nil, validationErr("template", "template body is required")
	}

	body := addVersionRequest{
		TemplateID: strings.TrimSpace(params.TemplateID),
		Template:   params.Body,
		SenderID:   strings.TrimSpace(params.SenderID),
	}

	var resp APIResponse
	if err := t.client.do(ctx, http.MethodPost, endpointAddTemplateVersion, nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type markActiveRequest struct {
	TemplateID string `json:"template_id"`
	VersionID  string `json:"version_id"`
}

// SetDefault marks the given version as the template's active version.
// The provider guarantees exactly one active version per template
// afterwards; that invariant is not checked locally.
func (t *TemplateService) SetDefault(ctx context.Context, templateID, versionID string) (*APIResponse, error) {
	if strings.TrimSpace(templateID) == "" {
		return nil, validationErr("template_id", "template id is required")
	}
	if strings.TrimSpace(versionID) == "" {
		return nil, validationErr("version_id", "version id is required")
	}

	body := markActiveRequest{
		TemplateID: strings.TrimSpace(templateID),
		VersionID:  strings.TrimSpace(versionID),
	}

	var resp APIResponse
	if err := t.client.do(ctx, http.MethodPost, endpointMarkActive, nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
