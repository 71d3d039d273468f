// Package errs defines the error shapes returned to API clients.
//
// Every failure leaving a handler is an *HTTPError: a stable machine code,
// a message safe to show, the HTTP status and optional field errors. The
// low-level cause travels alongside for logging only.
//
// Error kinds used by the catalog endpoints:
//   - BAD_REQUEST: missing or malformed input (ValidationError).
//   - NOT_FOUND: no matching record.
//   - UPLOAD_FAILED / MEDIA_DELETE_FAILED: the media host call failed.
//   - PERSISTENCE_FAILED: the document store call failed.
//   - PARTIAL_FAILURE: a two-step operation completed only its first step.
package errs
