package errs

import "strings"

// FieldError represents a field-level validation error (typical for forms).
// Example:
//
//	{ "field": "email", "error": "invalid email format" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect tells the client it should redirect somewhere.
	// Usually "Value" holds the URL or route.
	ActionTypeRedirect ActionType = "redirect"
)

// Action describes an optional “what the client should do next” instruction.
//
// This is not common in all APIs, but can be handy for auth flows:
// e.g. “redirect to login”.
type Action struct {
	// Type is the kind of action (e.g. "redirect").
	Type ActionType `json:"type"`

	// Message is human-readable guidance for the client/UI.
	Message string `json:"message"`

	// Value is the payload for the action (e.g. redirect URL).
	Value string `json:"value"`
}

// HTTPError is the main custom error type for API responses.
//
// It is serialized directly to JSON at the boundary. Fields:
//   - Code: machine-friendly error kind (e.g. "NOT_FOUND", "UPLOAD_FAILED").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: lets the client show Message verbatim.
//   - Errors: list of per-field errors (validation).
//   - Action: client instruction (optional).
//
// The underlying cause is kept unexported so it reaches the server logs
// through Error() but never the response body.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors, typically for form inputs.
	Errors []FieldError `json:"errors"`

	// Action is an optional client instruction (redirect, etc.).
	Action *Action `json:"action"`

	cause error
}

// Error makes *HTTPError satisfy the built-in `error` interface.
// The cause, when present, is appended so logs show what actually failed.
func (e *HTTPError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Cause returns the wrapped low-level error, or nil.
func (e *HTTPError) Cause() error {
	return e.cause
}

// Is reports whether target is also an *HTTPError.
//
// It does NOT compare Code/Status; use errors.As and inspect the fields for that.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
		cause:    e.cause,
	}
}

// WithCause returns a copy of this HTTPError carrying cause for server-side logging.
func (e *HTTPError) WithCause(cause error) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  e.Message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
		cause:    cause,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	// strings.ReplaceAll(str, " ", "_") replaces spaces with underscores.
	// strings.ToUpper(...) uppercases the whole result.
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
