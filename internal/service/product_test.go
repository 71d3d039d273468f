package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/storefront-admin/internal/config"
	"github.com/deppfellow/storefront-admin/internal/errs"
	"github.com/deppfellow/storefront-admin/internal/model"
	"github.com/deppfellow/storefront-admin/internal/testutil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductService(t *testing.T, nullOnMissing bool) (*ProductService, *testutil.Products, *testutil.Media) {
	t.Helper()

	logger := zerolog.Nop()
	store := testutil.NewProducts()
	host := &testutil.Media{}
	svc := NewProductService(&logger, &config.CatalogConfig{NullOnMissingProduct: nullOnMissing}, store, host)
	return svc, store, host
}

func mugFields() model.ProductFields {
	return model.ProductFields{
		Name:        "Mug",
		Price:       decimal.RequireFromString("9.99"),
		Description: "Ceramic",
		Stock:       10,
		Image:       "https://host/x.jpg",
		Category:    "kitchen",
		IsFeatured:  false,
	}
}

func requireHTTPError(t *testing.T, err error, status int, code string) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, code, httpErr.Code)
	return httpErr
}

func TestProductService_CreateThenGet(t *testing.T) {
	svc, _, _ := newProductService(t, true)
	ctx := context.Background()

	created, err := svc.Create(ctx, mugFields())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	want := model.Product{Base: got.Base}
	mugFields().Apply(&want)
	assert.Equal(t, want.Name, got.Name)
	assert.True(t, want.Price.Equal(got.Price))
	assert.Equal(t, want.Description, got.Description)
	assert.Equal(t, want.Stock, got.Stock)
	assert.Equal(t, want.Image, got.Image)
	assert.Equal(t, want.Category, got.Category)
	assert.Equal(t, want.IsFeatured, got.IsFeatured)
}

func TestProductService_CreateKeepsFractionalPrice(t *testing.T) {
	svc, _, _ := newProductService(t, true)
	ctx := context.Background()

	fields := mugFields()
	fields.Price = decimal.RequireFromString("9.999")

	created, err := svc.Create(ctx, fields)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "9.999", got.Price.String())
}

func TestProductService_CreateStoreFailure(t *testing.T) {
	svc, store, _ := newProductService(t, true)
	store.InsertErr = testutil.ErrStoreDown

	_, err := svc.Create(context.Background(), mugFields())
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError, errs.CodePersistenceFailed)
	assert.Equal(t, "Server Error", httpErr.Message)
	assert.ErrorIs(t, httpErr.Cause(), testutil.ErrStoreDown)
}

func TestProductService_CreateDataViolationIsBadRequest(t *testing.T) {
	svc, store, _ := newProductService(t, true)
	store.InsertErr = &pgconn.PgError{Code: "22003", Message: "numeric field overflow", TableName: "products"}

	_, err := svc.Create(context.Background(), mugFields())
	requireHTTPError(t, err, http.StatusBadRequest, "PRODUCT_INVALID")
}

func TestProductService_ListByCategory(t *testing.T) {
	svc, _, _ := newProductService(t, true)
	ctx := context.Background()

	kitchen := map[string]bool{}
	for _, c := range []string{"kitchen", "garden", "kitchen", "office"} {
		f := mugFields()
		f.Category = c
		p, err := svc.Create(ctx, f)
		require.NoError(t, err)
		if c == "kitchen" {
			kitchen[p.ID] = true
		}
	}

	got, err := svc.List(ctx, model.ProductFilter{Category: "kitchen"})
	require.NoError(t, err)
	require.Len(t, got, len(kitchen))
	for _, p := range got {
		assert.True(t, kitchen[p.ID])
		assert.Equal(t, "kitchen", p.Category)
	}

	all, err := svc.List(ctx, model.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	none, err := svc.List(ctx, model.ProductFilter{Category: "toys"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestProductService_ListStoreFailure(t *testing.T) {
	svc, store, _ := newProductService(t, true)
	store.Err = testutil.ErrStoreDown

	_, err := svc.List(context.Background(), model.ProductFilter{})
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError, errs.CodePersistenceFailed)
	assert.Equal(t, "Error fetching products", httpErr.Message)
}

func TestProductService_GetMissing(t *testing.T) {
	t.Run("null when flag set", func(t *testing.T) {
		svc, _, _ := newProductService(t, true)

		got, err := svc.GetByID(context.Background(), uuid.NewString())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("not found when flag cleared", func(t *testing.T) {
		svc, _, _ := newProductService(t, false)

		_, err := svc.GetByID(context.Background(), uuid.NewString())
		httpErr := requireHTTPError(t, err, http.StatusNotFound, "NOT_FOUND")
		assert.Equal(t, "Product not found", httpErr.Message)
	})
}

func TestProductService_GetStoreFailureIsNotFound(t *testing.T) {
	svc, store, _ := newProductService(t, true)

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	requireHTTPError(t, err, http.StatusNotFound, "NOT_FOUND")

	store.Err = testutil.ErrStoreDown
	_, err = svc.GetByID(context.Background(), uuid.NewString())
	requireHTTPError(t, err, http.StatusNotFound, "NOT_FOUND")
}

func TestProductService_DeleteThenGet(t *testing.T) {
	svc, store, _ := newProductService(t, false)
	ctx := context.Background()

	p, err := svc.Create(ctx, mugFields())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))
	assert.Zero(t, store.Len())

	_, err = svc.GetByID(ctx, p.ID)
	requireHTTPError(t, err, http.StatusNotFound, "NOT_FOUND")
}

func TestProductService_DeleteMissingSucceeds(t *testing.T) {
	svc, _, _ := newProductService(t, true)
	assert.NoError(t, svc.Delete(context.Background(), uuid.NewString()))
}

func TestProductService_DeleteStoreFailure(t *testing.T) {
	svc, store, _ := newProductService(t, true)
	store.DeleteErr = testutil.ErrStoreDown

	err := svc.Delete(context.Background(), uuid.NewString())
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError, errs.CodePersistenceFailed)
	assert.Equal(t, "Error deleting product", httpErr.Message)
}

func TestProductService_UpdateOverwritesOmittedFields(t *testing.T) {
	svc, _, _ := newProductService(t, true)
	ctx := context.Background()

	p, err := svc.Create(ctx, mugFields())
	require.NoError(t, err)

	// Only name and price supplied; description, stock, image, category become zero.
	updated, err := svc.Update(ctx, p.ID, model.ProductFields{
		Name:  "Big Mug",
		Price: decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "Big Mug", updated.Name)
	assert.Empty(t, updated.Description)
	assert.Zero(t, updated.Stock)
	assert.Empty(t, updated.Image)
	assert.Empty(t, updated.Category)

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Description)
	assert.True(t, decimal.RequireFromString("12.5").Equal(got.Price))
}

func TestProductService_UpdateMissing(t *testing.T) {
	svc, _, _ := newProductService(t, true)

	_, err := svc.Update(context.Background(), uuid.NewString(), mugFields())
	httpErr := requireHTTPError(t, err, http.StatusNotFound, "NOT_FOUND")
	assert.Equal(t, "Product not found", httpErr.Message)
}

func TestProductService_UpdateStoreFailure(t *testing.T) {
	svc, store, _ := newProductService(t, true)
	ctx := context.Background()

	p, err := svc.Create(ctx, mugFields())
	require.NoError(t, err)

	store.UpdateErr = testutil.ErrStoreDown
	_, err = svc.Update(ctx, p.ID, mugFields())
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError, errs.CodePersistenceFailed)
	assert.Equal(t, "Error updating product", httpErr.Message)

	_, err = svc.Update(ctx, "not-a-uuid", mugFields())
	requireHTTPError(t, err, http.StatusInternalServerError, errs.CodePersistenceFailed)
}

func TestProductService_UploadImage(t *testing.T) {
	svc, _, host := newProductService(t, true)

	url, err := svc.UploadImage(context.Background(), "/tmp/upload-1")
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/catalog/img-1.jpg", url)
	assert.Equal(t, []string{"/tmp/upload-1"}, host.UploadCalls())

	host.UploadErr = errors.New("cloudinary: 503")
	_, err = svc.UploadImage(context.Background(), "/tmp/upload-2")
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError, errs.CodeUploadFailed)
	assert.Equal(t, "Image upload failed", httpErr.Message)
	assert.NotContains(t, httpErr.Message, "503")
}
