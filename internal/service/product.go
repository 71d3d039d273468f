package service

import (
	"context"

	"github.com/deppfellow/storefront-admin/internal/config"
	"github.com/deppfellow/storefront-admin/internal/errs"
	"github.com/deppfellow/storefront-admin/internal/media"
	"github.com/deppfellow/storefront-admin/internal/model"
	"github.com/rs/zerolog"
)

type ProductService struct {
	logger  *zerolog.Logger
	catalog *config.CatalogConfig
	store   ProductStore
	media   media.Host
}

func NewProductService(logger *zerolog.Logger, catalog *config.CatalogConfig, store ProductStore, host media.Host) *ProductService {
	if catalog == nil {
		catalog = config.DefaultCatalogConfig()
	}
	return &ProductService{
		logger:  logger,
		catalog: catalog,
		store:   store,
		media:   host,
	}
}

// UploadImage sends the spooled file to the Media Host and returns its public URL.
// The binary is not linked to any product; clients pass the URL to Create.
func (s *ProductService) UploadImage(ctx context.Context, localPath string) (string, error) {
	res, err := s.media.Upload(ctx, localPath)
	if err != nil {
		return "", errs.NewUploadError("Image upload failed", err)
	}

	loggerFrom(ctx, s.logger).Info().
		Str("event", "product_image_uploaded").
		Str("public_id", res.PublicID).
		Msg("product image uploaded")

	return res.SecureURL, nil
}

func (s *ProductService) Create(ctx context.Context, fields model.ProductFields) (*model.Product, error) {
	product, err := s.store.Insert(ctx, fields)
	if err != nil {
		loggerFrom(ctx, s.logger).Error().Err(err).Msg("error creating product")
		return nil, persistenceError("Server Error", err)
	}

	loggerFrom(ctx, s.logger).Info().
		Str("event", "product_created").
		Str("product_id", product.ID).
		Str("category", product.Category).
		Msg("product created")

	return product, nil
}

// List returns every product, or only those of filter.Category when set.
// No match is an empty slice, never nil.
func (s *ProductService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	var (
		products []model.Product
		err      error
	)

	if filter.Category != "" {
		products, err = s.store.Find(ctx, filter)
	} else {
		products, err = s.store.FindAll(ctx)
	}
	if err != nil {
		return nil, persistenceError("Error fetching products", err)
	}

	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// GetByID returns the product with id.
//
// When no product matches, the result depends on catalog.null_on_missing_product:
// (nil, nil) when set, NotFound otherwise. Every store failure, a malformed
// id included, is reported as NotFound.
func (s *ProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.store.FindByID(ctx, id)
	if err == nil {
		return product, nil
	}

	if isNotFound(err) && s.catalog.NullOnMissingProduct {
		return nil, nil
	}

	return nil, errs.NewNotFoundError("Product not found", true, nil).WithCause(err)
}

// Delete removes the product. A missing id still succeeds.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return persistenceError("Error deleting product", err)
	}

	loggerFrom(ctx, s.logger).Info().
		Str("event", "product_deleted").
		Str("product_id", id).
		Msg("product deleted")

	return nil
}

// Update loads the product and overwrites every mutable field with fields.
// Zero values in fields are written as-is; there is no partial update.
func (s *ProductService) Update(ctx context.Context, id string, fields model.ProductFields) (*model.Product, error) {
	if _, err := s.store.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return nil, errs.NewNotFoundError("Product not found", true, nil)
		}
		return nil, persistenceError("Error updating product", err)
	}

	product, err := s.store.UpdateByID(ctx, id, fields)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.NewNotFoundError("Product not found", true, nil)
		}
		return nil, persistenceError("Error updating product", err)
	}

	loggerFrom(ctx, s.logger).Info().
		Str("event", "product_updated").
		Str("product_id", id).
		Msg("product updated")

	return product, nil
}
