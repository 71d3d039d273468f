package handler

import (
	"github.com/deppfellow/storefront-admin/internal/model"
	"github.com/deppfellow/storefront-admin/internal/validation"
	"github.com/shopspring/decimal"
)

// ProductBody is the JSON body of product create and update. Absent fields
// bind as zero values; beyond JSON decoding nothing is checked.
type ProductBody struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	IsFeatured  bool            `json:"isFeatured"`
}

// Fields converts the body into the full set of mutable product attributes.
func (b ProductBody) Fields() model.ProductFields {
	return model.ProductFields{
		Name:        b.Name,
		Price:       b.Price,
		Description: b.Description,
		Stock:       b.Stock,
		Image:       b.Image,
		Category:    b.Category,
		IsFeatured:  b.IsFeatured,
	}
}

type CreateProductRequest struct {
	ProductBody
}

func (r *CreateProductRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateProductRequest struct {
	ID string `param:"id" json:"-" validate:"required"`
	ProductBody
}

func (r *UpdateProductRequest) Validate() error {
	return validation.Struct(r)
}

type ListProductsRequest struct {
	Category string `query:"category"`
}

func (r *ListProductsRequest) Validate() error {
	return nil
}

// IDRequest addresses a single record by path id. The store decides whether
// the id is well formed.
type IDRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *IDRequest) Validate() error {
	return validation.Struct(r)
}

// UploadRequest has no bound fields; the file is read from the multipart form.
type UploadRequest struct{}

func (r *UploadRequest) Validate() error {
	return nil
}

// EmptyRequest is used by endpoints without input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}

type SliderUploadResponse struct {
	Message string        `json:"message"`
	Slider  *model.Slider `json:"slider"`
}
