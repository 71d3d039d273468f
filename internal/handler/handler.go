// Package handler is the HTTP layer, the first entry point for
// business logic after the router.
//
// It binds and validates requests with the validation package,
// spools uploaded files to disk, calls the service layer and
// writes JSON responses. Errors are left to the global error handler.
package handler
