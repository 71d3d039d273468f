package handler

import (
	"github.com/deppfellow/storefront-admin/internal/model"
	"github.com/deppfellow/storefront-admin/internal/server"
	"github.com/deppfellow/storefront-admin/internal/service"
	"github.com/labstack/echo/v4"
)

type SliderHandler struct {
	Handler
	sliderService *service.SliderService
}

func NewSliderHandler(s *server.Server, sliderService *service.SliderService) *SliderHandler {
	return &SliderHandler{
		Handler:       NewHandler(s),
		sliderService: sliderService,
	}
}

func (h *SliderHandler) UploadImage(c echo.Context, _ *UploadRequest) (*SliderUploadResponse, error) {
	path, cleanup, err := spoolUpload(c, h.server.Config.Media.UploadDir, h.server.Config.Media.MaxUploadBytes)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	slider, err := h.sliderService.Upload(c.Request().Context(), path)
	if err != nil {
		return nil, err
	}

	return &SliderUploadResponse{Message: "Image uploaded successfully", Slider: slider}, nil
}

func (h *SliderHandler) DeleteImage(c echo.Context, req *IDRequest) (*MessageResponse, error) {
	if err := h.sliderService.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Image deleted successfully"}, nil
}

func (h *SliderHandler) GetAllImages(c echo.Context, _ *EmptyRequest) ([]model.Slider, error) {
	return h.sliderService.List(c.Request().Context())
}
