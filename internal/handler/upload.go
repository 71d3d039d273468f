package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/storefront-admin/internal/errs"
	"github.com/deppfellow/storefront-admin/internal/middleware"
	"github.com/labstack/echo/v4"
)

// UploadField is the multipart field carrying the image.
const UploadField = "image"

// spoolUpload copies the multipart file in UploadField to a temporary file
// under dir and returns its path with a cleanup func that removes it.
// A missing file or one above maxBytes is a 400.
func spoolUpload(c echo.Context, dir string, maxBytes int64) (string, func(), error) {
	fh, err := c.FormFile(UploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil, errs.NewBadRequestError("No file uploaded", true, nil, nil, nil)
		}
		return "", nil, errs.NewBadRequestError("No file uploaded", true, nil, nil, nil).WithCause(err)
	}

	if maxBytes > 0 && fh.Size > maxBytes {
		return "", nil, errs.NewBadRequestError(
			fmt.Sprintf("File exceeds the %d byte upload limit", maxBytes), true, nil, nil, nil)
	}

	src, err := fh.Open()
	if err != nil {
		return "", nil, errs.NewInternalServerError().WithCause(err)
	}
	defer src.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", nil, errs.NewInternalServerError().WithCause(err)
	}

	dst, err := os.CreateTemp(dir, "upload-*"+filepath.Ext(filepath.Base(fh.Filename)))
	if err != nil {
		return "", nil, errs.NewInternalServerError().WithCause(err)
	}

	path := dst.Name()
	cleanup := func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			middleware.GetLogger(c).Warn().Err(err).Str("path", path).Msg("failed to remove spooled upload")
		}
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		cleanup()
		return "", nil, errs.NewInternalServerError().WithCause(err)
	}
	if err := dst.Close(); err != nil {
		cleanup()
		return "", nil, errs.NewInternalServerError().WithCause(err)
	}

	return path, cleanup, nil
}
