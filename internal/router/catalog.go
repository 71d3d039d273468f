package router

import (
	"net/http"

	"github.com/deppfellow/storefront-admin/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerProductRoutes(api *echo.Group, h *handler.Handlers) {
	products := api.Group("/products")
	p := h.Product

	products.POST("/upload", handler.Handle(p.Handler, p.UploadImage, http.StatusOK, &handler.UploadRequest{}))
	products.POST("", handler.Handle(p.Handler, p.CreateProduct, http.StatusCreated, &handler.CreateProductRequest{}))
	products.GET("", handler.Handle(p.Handler, p.GetProducts, http.StatusOK, &handler.ListProductsRequest{}))
	products.GET("/:id", handler.Handle(p.Handler, p.GetProductByID, http.StatusOK, &handler.IDRequest{}))
	products.PUT("/:id", handler.Handle(p.Handler, p.UpdateProduct, http.StatusOK, &handler.UpdateProductRequest{}))
	products.DELETE("/:id", handler.Handle(p.Handler, p.DeleteProduct, http.StatusOK, &handler.IDRequest{}))
}

func registerSliderRoutes(api *echo.Group, h *handler.Handlers) {
	slider := api.Group("/slider")
	s := h.Slider

	slider.POST("/upload", handler.Handle(s.Handler, s.UploadImage, http.StatusCreated, &handler.UploadRequest{}))
	slider.DELETE("/:id", handler.Handle(s.Handler, s.DeleteImage, http.StatusOK, &handler.IDRequest{}))
	slider.GET("", handler.Handle(s.Handler, s.GetAllImages, http.StatusOK, &handler.EmptyRequest{}))
}
