// Package media talks to the Media Host that stores image binaries.
//
// A Host accepts a file already spooled to local disk and answers with a
// public URL plus an opaque identifier; the identifier is the only handle
// needed to delete the binary later. Cloudinary, S3 and local disk are
// supported; New picks one from config.
package media

import (
	"context"
	"fmt"

	"github.com/deppfellow/storefront-admin/internal/config"
	"github.com/rs/zerolog"
)

// UploadResult is what the Media Host returns for a stored binary.
type UploadResult struct {
	SecureURL string
	PublicID  string
}

// Host stores and deletes image binaries.
//
// Destroy of an identifier the host no longer knows is not an error.
type Host interface {
	Upload(ctx context.Context, localPath string) (UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

// New builds the Host selected by cfg.Driver.
func New(ctx context.Context, cfg *config.MediaConfig, logger *zerolog.Logger) (Host, error) {
	var (
		host Host
		err  error
	)

	switch cfg.Driver {
	case config.MediaDriverCloudinary:
		host, err = NewCloudinary(cfg.Cloudinary)
	case config.MediaDriverS3:
		host, err = NewS3(ctx, cfg.S3)
	case config.MediaDriverLocal:
		host, err = NewLocal(cfg.Local.BaseDir, cfg.Local.URLPrefix)
	default:
		return nil, fmt.Errorf("unknown media driver: %s", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s media host: %w", cfg.Driver, err)
	}

	logger.Info().Str("driver", cfg.Driver).Msgf("media host ready: %s", host)

	return host, nil
}
