// Package msg91 provides a thin HTTP client for the MSG91 SMS platform.
// It covers templated sending (the Flow API), delivery logs and analytics,
// template management, and the legacy OTP endpoints.
//
// # Client Creation
//
// A client is created once per process with an auth key and optional
// functional options:
//
//	client, err := msg91.New("auth-key",
//	    msg91.WithTimeout(10*time.Second),
//	    msg91.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.SMS.Send(ctx, msg91.SendParams{
//	    TemplateID: "template-id",
//	    Mobile:     []string{"919900000000"},
//	    Variables:  map[string]string{"var1": "value"},
//	    SenderID:   "SNDR",
//	})
//
// The client is immutable after construction and safe for concurrent use.
// Connection pooling is delegated to the underlying [net/http.Client].
//
// # Error Handling
//
// Failures fall into three kinds, none of which are retried or suppressed:
//
//   - [*ValidationError]: bad local input, reported before any network
//     call. Matches [ErrValidation] with errors.Is.
//   - [*APIError]: a non-2xx provider response, carrying the HTTP status
//     code and the provider error payload. A 401 response additionally
//     matches [ErrUnauthorized].
//   - transport errors: network failures and timeouts, wrapped so the
//     underlying error (including context.DeadlineExceeded) remains
//     reachable with errors.Is.
//
// # Authentication
//
// The auth key is attached as the "authkey" request header on every call.
// It is never written to log output.
package msg91
