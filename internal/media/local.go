package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Local keeps binaries in BaseDir and serves them under URLPrefix. For development.
type Local struct {
	BaseDir   string
	URLPrefix string
}

func NewLocal(baseDir, urlPrefix string) (*Local, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &Local{BaseDir: baseDir, URLPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (l *Local) Upload(ctx context.Context, localPath string) (UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return UploadResult{}, err
	}

	mtype, err := mimetype.DetectFile(localPath)
	if err != nil {
		return UploadResult{}, fmt.Errorf("detect content type: %w", err)
	}

	src, err := os.Open(localPath)
	if err != nil {
		return UploadResult{}, err
	}
	defer src.Close()

	key := uuid.NewString() + mtype.Extension()

	dst, err := os.OpenFile(filepath.Join(l.BaseDir, key), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return UploadResult{}, err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return UploadResult{}, err
	}
	if err := dst.Close(); err != nil {
		return UploadResult{}, err
	}

	return UploadResult{SecureURL: l.URLPrefix + "/" + key, PublicID: key}, nil
}

// Destroy removes the file. Only the base name of publicID is used so it cannot escape BaseDir.
func (l *Local) Destroy(ctx context.Context, publicID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(l.BaseDir, filepath.Base(publicID)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
