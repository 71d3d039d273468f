package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/storefront-admin/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_UniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "products",
		ConstraintName: "products_name_key",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PRODUCT_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Product with this Name already exists", httpErr.Message)
}

func TestHandleError_NotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23502",
		TableName:  "sliders",
		ColumnName: "image_url",
	})

	httpErr := asHTTPError(t, err)
	assert.Equal(t, "SLIDER_REQUIRED", httpErr.Code)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "image_url", httpErr.Errors[0].Field)
	assert.Equal(t, "The Image Url is required", httpErr.Message)
}

func TestHandleError_NumericOutOfRange(t *testing.T) {
	err := HandleError(fmt.Errorf("insert product: %w", &pgconn.PgError{
		Code:      "22003",
		TableName: "products",
	}))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PRODUCT_INVALID", httpErr.Code)
}

func TestHandleError_NoRowsWithTable(t *testing.T) {
	err := HandleError(fmt.Errorf("table:products:id=42: %w", pgx.ErrNoRows))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Product not found", httpErr.Message)
}

func TestHandleError_UnknownIsGeneric500(t *testing.T) {
	err := HandleError(errors.New("connection reset by peer"))

	httpErr := asHTTPError(t, err)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Internal Server Error", httpErr.Message)
	assert.Contains(t, httpErr.Error(), "connection reset")
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	in := errs.NewNotFoundError("Image not found", false, nil)
	assert.Same(t, in, HandleError(in))
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, InvalidTextRepresentation, ErrCode(fmt.Errorf("find: %w", &pgconn.PgError{Code: "22P02"})))
	assert.Equal(t, UniqueViolation, ErrCode(ConvertPgError(&pgconn.PgError{Code: "23505"})))
	assert.Equal(t, Other, ErrCode(errors.New("x")))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "name", extractColumnForUniqueViolation("products_name_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation("pk_products"))
}
