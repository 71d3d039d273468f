package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/storefront-admin/internal/middleware"
	"github.com/deppfellow/storefront-admin/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// dependencyCheck is one dependency ping. Required checks turn the service unhealthy on failure.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

func (h *HealthHandler) dependencyChecks() []dependencyCheck {
	var deps []dependencyCheck
	obs := h.server.Config.Observability

	if h.server.DB != nil && obs.HealthCheckEnabled("database") {
		deps = append(deps, dependencyCheck{
			name:     "database",
			required: true,
			ping:     h.server.DB.Pool.Ping,
		})
	}

	// Redis only backs compensating jobs; the catalog keeps serving without it.
	if h.server.Redis != nil && obs.HealthCheckEnabled("redis") {
		deps = append(deps, dependencyCheck{
			name: "redis",
			ping: func(ctx context.Context) error { return h.server.Redis.Ping(ctx).Err() },
		})
	}

	return deps
}

// CheckHealth runs the configured dependency checks and answers 200 when every required
// one passes, 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"media":       h.server.Config.Media.Driver,
		"checks":      checks,
	}

	isHealthy := true
	timeout := h.server.Config.Observability.HealthChecks.Timeout

	for _, p := range h.dependencyChecks() {
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		checkStart := time.Now()
		err := p.ping(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err != nil {
			checks[p.name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": elapsed.String(),
				"error":         err.Error(),
			}
			if p.required {
				isHealthy = false
			}

			logger.Error().
				Err(err).
				Str("check", p.name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			h.recordHealthEvent(p.name, p.name+"_unhealthy", elapsed, err)
			continue
		}

		checks[p.name] = map[string]interface{}{
			"status":        "healthy",
			"response_time": elapsed.String(),
		}

		logger.Debug().
			Str("check", p.name).
			Dur("response_time", elapsed).
			Msg("health check passed")
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("service unhealthy")

		h.recordHealthEvent("overall", "overall_unhealthy", time.Since(start), nil)

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordHealthEvent(check, errorType string, elapsed time.Duration, err error) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	event := map[string]interface{}{
		"check_type":       check,
		"operation":        "health_check",
		"error_type":       errorType,
		"response_time_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		event["error_message"] = err.Error()
	}

	app.RecordCustomEvent("HealthCheckError", event)
}
