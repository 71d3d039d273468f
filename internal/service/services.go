// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository and media host
// methods. Every failure leaves this package as an *errs.HTTPError.
package service

import (
	"github.com/deppfellow/storefront-admin/internal/repository"
	"github.com/deppfellow/storefront-admin/internal/server"
)

type Services struct {
	Product *ProductService
	Slider  *SliderService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Product: NewProductService(s.Logger, s.Config.Catalog, repos.Products, s.Media),
		Slider:  NewSliderService(s.Logger, repos.Sliders, s.Media, s.Job),
	}, nil
}
