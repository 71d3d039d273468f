package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/deppfellow/storefront-admin/internal/config"
)

type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinary builds a client from the account URL, or from the individual
// credentials when no URL is configured.
func NewCloudinary(cfg config.CloudinaryConfig) (*Cloudinary, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)

	if cfg.URL != "" {
		cld, err = cloudinary.NewFromURL(cfg.URL)
	} else {
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	}
	if err != nil {
		return nil, err
	}

	return &Cloudinary{cld: cld, folder: cfg.Folder}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, localPath string) (UploadResult, error) {
	res, err := c.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{Folder: c.folder})
	if err != nil {
		return UploadResult{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return UploadResult{}, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return UploadResult{}, errors.New("cloudinary upload: empty secure_url in response")
	}

	return UploadResult{SecureURL: res.SecureURL, PublicID: res.PublicID}, nil
}

// Destroy treats "not found" as success so a retried delete converges.
func (c *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy %s: %s", publicID, res.Error.Message)
	}

	switch res.Result {
	case "ok", "not found":
		return nil
	default:
		return fmt.Errorf("cloudinary destroy %s: unexpected result %q", publicID, res.Result)
	}
}

func (c *Cloudinary) String() string {
	return fmt.Sprintf("cloudinary(%s/%s)", c.cld.Config.Cloud.CloudName, c.folder)
}
