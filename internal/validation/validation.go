// Package validation binds catalog request payloads from path, query and body
// and checks them with go-playground/validator.
//
// Failures become 400 errs.HTTPError values whose field errors name the
// offending JSON field in lower case.
package validation
