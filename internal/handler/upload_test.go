package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deppfellow/storefront-admin/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartContext(t *testing.T, field, filename string, content []byte) echo.Context {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func requireBadRequest(t *testing.T, err error, message string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Contains(t, httpErr.Message, message)
}

func TestSpoolUpload_WritesAndCleansUp(t *testing.T) {
	dir := t.TempDir()
	c := multipartContext(t, UploadField, "banner.png", []byte("png-bytes"))

	path, cleanup, err := spoolUpload(c, dir, 1024)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".png"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSpoolUpload_MissingFile(t *testing.T) {
	c := multipartContext(t, "", "", nil)

	_, _, err := spoolUpload(c, t.TempDir(), 1024)
	requireBadRequest(t, err, "No file uploaded")
}

func TestSpoolUpload_WrongField(t *testing.T) {
	c := multipartContext(t, "file", "banner.png", []byte("png-bytes"))

	_, _, err := spoolUpload(c, t.TempDir(), 1024)
	requireBadRequest(t, err, "No file uploaded")
}

func TestSpoolUpload_NotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	_, _, err := spoolUpload(c, t.TempDir(), 1024)
	requireBadRequest(t, err, "No file uploaded")
}

func TestSpoolUpload_TooLarge(t *testing.T) {
	dir := t.TempDir()
	c := multipartContext(t, UploadField, "banner.png", bytes.Repeat([]byte("x"), 64))

	_, _, err := spoolUpload(c, dir, 16)
	requireBadRequest(t, err, "upload limit")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
