package handler

import (
	"github.com/deppfellow/storefront-admin/internal/model"
	"github.com/deppfellow/storefront-admin/internal/server"
	"github.com/deppfellow/storefront-admin/internal/service"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Handler
	productService *service.ProductService
}

func NewProductHandler(s *server.Server, productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:        NewHandler(s),
		productService: productService,
	}
}

func (h *ProductHandler) UploadImage(c echo.Context, _ *UploadRequest) (*UploadImageResponse, error) {
	path, cleanup, err := spoolUpload(c, h.server.Config.Media.UploadDir, h.server.Config.Media.MaxUploadBytes)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	url, err := h.productService.UploadImage(c.Request().Context(), path)
	if err != nil {
		return nil, err
	}

	return &UploadImageResponse{URL: url}, nil
}

func (h *ProductHandler) CreateProduct(c echo.Context, req *CreateProductRequest) (*model.Product, error) {
	return h.productService.Create(c.Request().Context(), req.Fields())
}

func (h *ProductHandler) GetProducts(c echo.Context, req *ListProductsRequest) ([]model.Product, error) {
	return h.productService.List(c.Request().Context(), model.ProductFilter{Category: req.Category})
}

// GetProductByID answers with a JSON null body when the product is absent
// and the catalog is configured for it.
func (h *ProductHandler) GetProductByID(c echo.Context, req *IDRequest) (*model.Product, error) {
	return h.productService.GetByID(c.Request().Context(), req.ID)
}

func (h *ProductHandler) UpdateProduct(c echo.Context, req *UpdateProductRequest) (*model.Product, error) {
	return h.productService.Update(c.Request().Context(), req.ID, req.Fields())
}

func (h *ProductHandler) DeleteProduct(c echo.Context, req *IDRequest) (*MessageResponse, error) {
	if err := h.productService.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Product deleted successfully"}, nil
}
