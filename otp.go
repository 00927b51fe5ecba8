package msg91

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Legacy OTP endpoints, outside the v5 API root. They take their
// parameters, auth key included, as query strings.
const (
	legacyOTPSendURL   = "https://api.msg91.com/api/sendotp.php"
	legacyOTPVerifyURL = "https://api.msg91.com/api/verifyRequestOTP.php"
	legacyOTPRetryURL  = "https://api.msg91.com/api/retryotp.php"
)

// RetryType selects the channel used when resending an OTP.
type RetryType string

const (
	RetryTypeText  RetryType = "text"
	RetryTypeVoice RetryType = "voice"
)

func (r RetryType) valid() bool {
	return r == RetryTypeText || r == RetryTypeVoice
}

// OTPService drives the legacy one-time-password endpoints.
type OTPService struct {
	client *Client
}

// OTPSendParams describes an OTP delivery. Only Mobile is required; the
// provider fills in defaults for everything else (auto-generated OTP,
// standard message, one day expiry, four digits).
type OTPSendParams struct {
	Mobile string
	// Message is the OTP message body; ##OTP## marks where the code goes.
	Message string
	Sender  string
	// OTP pins the code instead of letting the provider generate one.
	OTP string
	// ExpiryMinutes bounds how long the code stays valid.
	ExpiryMinutes int
	// Length is the OTP digit count, 4 to 9.
	Length int
}

// Send delivers an OTP to a mobile number. A Length outside 4..9 is a
// *ValidationError raised before any network call.
func (o *OTPService) Send(ctx context.Context, params OTPSendParams) (*APIResponse, error) {
	if strings.TrimSpace(params.Mobile) == "" {
		return nil, validationErr("mobile", "mobile number is required")
	}
	if params.Length != 0 && (params.Length < 4 || params.Length > 9) {
		return nil, validationErr("otp_length", "otp length must be between 4 and 9")
	}

	query := url.Values{}
	query.Set("authkey", o.client.authKey)
	query.Set("mobile", strings.TrimSpace(params.Mobile))
	if strings.TrimSpace(params.Message) != "" {
		query.Set("message", params.Message)
	}
	if strings.TrimSpace(params.Sender) != "" {
		query.Set("sender", strings.TrimSpace(params.Sender))
	}
	if strings.TrimSpace(params.OTP) != "" {
		query.Set("otp", strings.TrimSpace(params.OTP))
	}
	if params.ExpiryMinutes > 0 {
		query.Set("otp_expiry", strconv.Itoa(params.ExpiryMinutes))
	}
	if params.Length != 0 {
		query.Set("otp_length", strconv.Itoa(params.Length))
	}

	var resp APIResponse
	if err := o.client.do(ctx, http.MethodGet, legacyOTPSendURL, query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify checks an OTP previously sent to the mobile number.
func (o *OTPService) Verify(ctx context.Context, mobile, otp string) (*APIResponse, error) {
	if strings.TrimSpace(mobile) == "" {
		return nil, validationErr("mobile", "mobile number is required")
	}
	if strings.TrimSpace(otp) == "" {
		return nil, validationErr("otp", "otp is required")
	}

	query := url.Values{}
	query.Set("authkey", o.client.authKey)
	query.Set("mobile", strings.TrimSpace(mobile))
	query.Set("otp", strings.TrimSpace(otp))

	var resp APIResponse
	if err := o.client.do(ctx, http.MethodGet, legacyOTPVerifyURL, query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Resend asks the provider to resend the pending OTP. retryType defaults
// to text delivery when empty.
func (o *OTPService) Resend(ctx context.Context, mobile string, retryType RetryType) (*APIResponse, error) {
	if strings.TrimSpace(mobile) == "" {
		return nil, validationErr("mobile", "mobile number is required")
	}
	if retryType == "" {
		retryType = RetryTypeText
	}
	if !retryType.valid() {
		return nil, validationErr("retrytype", fmt.Sprintf("retry type must be %s or %s", RetryTypeText, RetryTypeVoice))
	}

	query := url.Values{}
	query.Set("authkey", o.client.authKey)
	query.Set("mobile", strings.TrimSpace(mobile))
	query.Set("retrytype", string(retryType))

	var resp APIResponse
	if err := o.client.do(ctx, http.MethodGet, legacyOTPRetryURL, query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
