package router

import (
	"github.com/deppfellow/storefront-admin/internal/config"
	"github.com/deppfellow/storefront-admin/internal/handler"
	"github.com/deppfellow/storefront-admin/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints outside the catalog API: health,
// docs, static assets and, with the local media driver, the stored images.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	if media := s.Config.Media; media != nil && media.Driver == config.MediaDriverLocal {
		r.Static(media.Local.URLPrefix, media.Local.BaseDir)
	}
}
