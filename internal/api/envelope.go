// Package api defines the uniform response envelope shared by every endpoint.
// All routes return either a success envelope (data + meta) or an error
// envelope (code + message + meta); exactly one of the two variants is set.
package api

import "time"

// ErrorCode identifies a failure class on the wire. The set is closed; adding
// a code requires extending the default status table below.
type ErrorCode string

const (
	CodeInvalidParameters ErrorCode = "INVALID_PARAMETERS"
	CodeBackendError      ErrorCode = "BACKEND_ERROR"
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	CodeRateLimited       ErrorCode = "RATE_LIMITED"
	CodeInternalError     ErrorCode = "INTERNAL_ERROR"
	CodeDataUnavailable   ErrorCode = "DATA_UNAVAILABLE"
)

// defaultStatus maps each error code to the HTTP status used when the caller
// does not override it.
var defaultStatus = map[ErrorCode]int{
	CodeInvalidParameters: 400,
	CodeBackendError:      502,
	CodeNotFound:          404,
	CodeUnauthorized:      401,
	CodeRateLimited:       429,
	CodeInternalError:     500,
	CodeDataUnavailable:   503,
}

// DefaultStatus returns the default HTTP status for the code. Codes outside
// the closed set map to 500.
func (c ErrorCode) DefaultStatus() int {
	if s, ok := defaultStatus[c]; ok {
		return s
	}
	return 500
}

// MockDataWarning is the disclaimer attached to synthetic payloads when the
// caller marks data as mock without supplying its own warning text. A mock
// payload never ships without a warning.
const MockDataWarning = "Live market data is unavailable. Displaying simulated data for demonstration purposes."

// Meta carries response provenance. Timestamp is stamped at encode time.
type Meta struct {
	IsMock      bool   `json:"isMock"`
	Timestamp   string `json:"timestamp"`
	Warning     string `json:"warning,omitempty"`
	Source      string `json:"source,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// ErrorBody is the payload of the error variant.
type ErrorBody struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Envelope is the wire-level result wrapper. Success carries Data, failure
// carries Error; Meta is always present. Envelopes are constructed once and
// never mutated.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Meta    Meta       `json:"meta"`
}

// SuccessOptions configures EncodeSuccess. The zero value means: real data,
// no warning, status 200, no provenance.
type SuccessOptions struct {
	IsMock      bool
	Warning     string
	Status      int    // HTTP status, default 200
	Source      string // provenance tag, e.g. "upstream" or "synthetic"
	LastUpdated string // ISO timestamp of the data itself, if known
}

// ErrorOptions configures EncodeError.
type ErrorOptions struct {
	Status  int            // overrides the code's default status when > 0
	Details map[string]any // structured context, e.g. the failing field
}

// EncodeSuccess builds a success envelope around data and returns it with the
// HTTP status to write. It performs no I/O and cannot fail.
func EncodeSuccess(data any, opts SuccessOptions) (int, Envelope) {
	status := opts.Status
	if status == 0 {
		status = 200
	}
	warning := opts.Warning
	if opts.IsMock && warning == "" {
		warning = MockDataWarning
	}
	return status, Envelope{
		Success: true,
		Data:    data,
		Meta: Meta{
			IsMock:      opts.IsMock,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Warning:     warning,
			Source:      opts.Source,
			LastUpdated: opts.LastUpdated,
		},
	}
}

// EncodeError builds an error envelope for code and returns it with the HTTP
// status to write (the code's default unless overridden).
func EncodeError(code ErrorCode, message string, opts ErrorOptions) (int, Envelope) {
	status := opts.Status
	if status == 0 {
		status = code.DefaultStatus()
	}
	return status, Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
			Details: opts.Details,
		},
		Meta: Meta{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// WrapResponse converts a legacy flat payload ({bars, mock, warning, ...})
// into the generic envelope. The mock flag and warning text are hoisted into
// Meta and removed from the data; every other key passes through untouched,
// so the conversion loses no information. Routes still serving the legacy
// shape adopt the envelope by passing their payload through here.
func WrapResponse(payload map[string]any, opts SuccessOptions) (int, Envelope) {
	data := make(map[string]any, len(payload))
	for k, v := range payload {
		switch k {
		case "mock":
			if b, ok := v.(bool); ok && b {
				opts.IsMock = true
			}
		case "warning":
			if s, ok := v.(string); ok && s != "" && opts.Warning == "" {
				opts.Warning = s
			}
		default:
			data[k] = v
		}
	}
	return EncodeSuccess(data, opts)
}
