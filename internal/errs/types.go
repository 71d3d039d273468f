package errs

import (
	"net/http"
)

// Machine-readable codes beyond the ones derived from HTTP status text.
const (
	CodeUploadFailed      = "UPLOAD_FAILED"
	CodeMediaDeleteFailed = "MEDIA_DELETE_FAILED"
	CodePersistenceFailed = "PERSISTENCE_FAILED"
	CodePartialFailure    = "PARTIAL_FAILURE"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
//   - action: optional client instruction (e.g. redirect)
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewInternalServerError creates a generic 500 HTTPError.
//
// The message is the status text, never the real internal error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewUploadError reports a failed media host upload.
func NewUploadError(message string, cause error) *HTTPError {
	return &HTTPError{
		Code:    CodeUploadFailed,
		Message: message,
		Status:  http.StatusInternalServerError,
		cause:   cause,
	}
}

// NewMediaDeleteError reports a failed media host deletion. Nothing was removed.
func NewMediaDeleteError(message string, cause error) *HTTPError {
	return &HTTPError{
		Code:    CodeMediaDeleteFailed,
		Message: message,
		Status:  http.StatusInternalServerError,
		cause:   cause,
	}
}

// NewPersistenceError reports a failed document store call.
func NewPersistenceError(message string, cause error) *HTTPError {
	return &HTTPError{
		Code:    CodePersistenceFailed,
		Message: message,
		Status:  http.StatusInternalServerError,
		cause:   cause,
	}
}

// NewPartialFailureError reports a two-step operation whose first step took
// effect and whose second did not. Clients must not assume either outcome.
func NewPartialFailureError(message string, cause error) *HTTPError {
	return &HTTPError{
		Code:    CodePartialFailure,
		Message: message,
		Status:  http.StatusInternalServerError,
		cause:   cause,
	}
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil, nil)
}
