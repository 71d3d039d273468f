package handler

import (
	"github.com/deppfellow/storefront-admin/internal/server"
	"github.com/deppfellow/storefront-admin/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Product *ProductHandler
	Slider  *SliderHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Product: NewProductHandler(s, services.Product),
		Slider:  NewSliderHandler(s, services.Slider),
	}
}
