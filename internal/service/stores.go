package service

import (
	"context"
	"errors"

	"github.com/deppfellow/storefront-admin/internal/errs"
	"github.com/deppfellow/storefront-admin/internal/model"
	"github.com/deppfellow/storefront-admin/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

// ProductStore is the Document Store view used by ProductService.
type ProductStore interface {
	Insert(ctx context.Context, fields model.ProductFields) (*model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	Find(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	UpdateByID(ctx context.Context, id string, fields model.ProductFields) (*model.Product, error)
	DeleteByID(ctx context.Context, id string) error
}

// SliderStore is the Document Store view used by SliderService.
type SliderStore interface {
	Insert(ctx context.Context, imageURL, publicID string) (*model.Slider, error)
	FindByID(ctx context.Context, id string) (*model.Slider, error)
	FindAll(ctx context.Context) ([]model.Slider, error)
	DeleteByID(ctx context.Context, id string) error
}

// PurgeEnqueuer schedules removal of a slider record left behind by a failed delete.
type PurgeEnqueuer interface {
	EnqueueSliderPurge(ctx context.Context, sliderID, publicID string) error
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// persistenceError maps a store failure to the client error. Data violations
// the client can fix come back as sqlerr's 400s; everything else is a
// PersistenceError carrying message.
func persistenceError(message string, err error) error {
	switch sqlerr.ErrCode(err) {
	case sqlerr.NotNullViolation,
		sqlerr.CheckViolation,
		sqlerr.UniqueViolation,
		sqlerr.ForeignKeyViolation,
		sqlerr.NumericValueOutOfRange,
		sqlerr.StringDataRightTruncation:
		return sqlerr.HandleError(err)
	default:
		return errs.NewPersistenceError(message, err)
	}
}
