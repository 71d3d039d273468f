package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func writeTempImage(t *testing.T) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "upload-123")
	require.NoError(t, os.WriteFile(p, pngHeader, 0o600))
	return p
}

func TestLocal_UploadAndDestroy(t *testing.T) {
	base := filepath.Join(t.TempDir(), "uploads")
	host, err := NewLocal(base, "/uploads/")
	require.NoError(t, err)

	res, err := host.Upload(context.Background(), writeTempImage(t))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(res.PublicID, ".png"))
	assert.Equal(t, "/uploads/"+res.PublicID, res.SecureURL)

	stored, err := os.ReadFile(filepath.Join(base, res.PublicID))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)

	require.NoError(t, host.Destroy(context.Background(), res.PublicID))
	_, err = os.Stat(filepath.Join(base, res.PublicID))
	assert.True(t, os.IsNotExist(err))
}

func TestLocal_DestroyMissingIsNoop(t *testing.T) {
	host, err := NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.NoError(t, host.Destroy(context.Background(), "does-not-exist.png"))
}

func TestLocal_DestroyStaysInsideBaseDir(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(root, "keep.png")
	require.NoError(t, os.WriteFile(outside, pngHeader, 0o600))

	host, err := NewLocal(filepath.Join(root, "uploads"), "/uploads")
	require.NoError(t, err)

	require.NoError(t, host.Destroy(context.Background(), "../keep.png"))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}

func TestLocal_UploadMissingFile(t *testing.T) {
	host, err := NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = host.Upload(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
