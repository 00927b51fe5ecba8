package msg91

import "encoding/json"

// APIResponse is the generic envelope most MSG91 endpoints reply with.
// Data is left raw because its shape varies per endpoint; callers that
// need it can unmarshal into their own structures.
type APIResponse struct {
	Type    string          `json:"type"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// SendResponse is returned by the Flow send endpoint. Message carries the
// provider-assigned request identifier on success.
type SendResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// TemplateVersion is one revision of a template's body. At most one
// version per template is active; the provider enforces that.
type TemplateVersion struct {
	ID         string `json:"id"`
	TemplateID string `json:"template_id"`
	Body       string `json:"template"`
	SenderID   string `json:"sender_id"`
	Active     bool   `json:"active"`
}
