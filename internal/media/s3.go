package media

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/deppfellow/storefront-admin/internal/config"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// s3API is the subset of *s3.Client used here.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3 stores binaries as objects under Prefix. The object key is the public id.
type S3 struct {
	client        s3API
	bucket        string
	prefix        string
	publicBaseURL string
}

// NewS3 uses the default AWS credential chain.
func NewS3(ctx context.Context, cfg config.S3Config) (*S3, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}

	return newS3WithClient(s3.NewFromConfig(awsCfg), cfg), nil
}

func newS3WithClient(client s3API, cfg config.S3Config) *S3 {
	return &S3{
		client:        client,
		bucket:        cfg.Bucket,
		prefix:        strings.Trim(cfg.Prefix, "/"),
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

func (s *S3) Upload(ctx context.Context, localPath string) (UploadResult, error) {
	mtype, err := mimetype.DetectFile(localPath)
	if err != nil {
		return UploadResult{}, fmt.Errorf("detect content type: %w", err)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return UploadResult{}, err
	}
	defer f.Close()

	key := uuid.NewString() + mtype.Extension()
	if s.prefix != "" {
		key = path.Join(s.prefix, key)
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(mtype.String()),
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("s3 put %s: %w", key, err)
	}

	return UploadResult{SecureURL: s.publicBaseURL + "/" + key, PublicID: key}, nil
}

// Destroy deletes the object. S3 answers success for keys that do not exist.
func (s *S3) Destroy(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", publicID, err)
	}
	return nil
}

func (s *S3) String() string { return fmt.Sprintf("s3(%s/%s)", s.bucket, s.prefix) }
