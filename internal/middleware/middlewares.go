package middleware

import (
	"github.com/deppfellow/storefront-admin/internal/server"
)

// Middlewares groups every middleware component so the router builds them once.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers and the error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches a request-scoped logger to each request.
	ContextEnhancer *ContextEnhancer

	// Tracing installs New Relic transactions and custom attributes.
	Tracing *TracingMiddleware

	// RateLimit enforces the per-IP request rate and reports denials.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components.
// Without a New Relic application the tracing middleware is a pass-through.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
