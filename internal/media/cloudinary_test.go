package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/deppfellow/storefront-admin/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCloudinary(t *testing.T, handler http.HandlerFunc) *Cloudinary {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(func() {
		srv.Close()
		assert.Equal(t, int32(1), hits.Load(), "expected exactly one call to the Cloudinary API")
	})

	host, err := NewCloudinary(config.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "secret",
		Folder:    "catalog",
	})
	require.NoError(t, err)
	// The upload API holds its own copy of the account config.
	host.cld.Upload.Config.API.UploadPrefix = srv.URL

	return host
}

func TestCloudinary_Upload(t *testing.T) {
	host := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/upload"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://res.example.com/catalog/x.png","public_id":"catalog/x"}`))
	})

	res, err := host.Upload(context.Background(), writeTempImage(t))
	require.NoError(t, err)
	assert.Equal(t, "https://res.example.com/catalog/x.png", res.SecureURL)
	assert.Equal(t, "catalog/x", res.PublicID)
}

func TestCloudinary_UploadErrorBody(t *testing.T) {
	host := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid image file"}}`))
	})

	_, err := host.Upload(context.Background(), writeTempImage(t))
	assert.ErrorContains(t, err, "Invalid image file")
}

func TestCloudinary_Destroy(t *testing.T) {
	for _, tc := range []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "ok", body: `{"result":"ok"}`},
		{name: "already gone", body: `{"result":"not found"}`},
		{name: "unexpected", body: `{"result":"error"}`, wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			host := newTestCloudinary(t, func(w http.ResponseWriter, r *http.Request) {
				assert.True(t, strings.HasSuffix(r.URL.Path, "/destroy"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			})

			err := host.Destroy(context.Background(), "catalog/x")
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
