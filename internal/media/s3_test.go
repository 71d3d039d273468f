package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/deppfellow/storefront-admin/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	putKey         string
	putContentType string
	putBody        []byte
	deletedKeys    []string
	err            error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.putKey = *in.Key
	f.putContentType = *in.ContentType
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.putBody = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deletedKeys = append(f.deletedKeys, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3_Upload(t *testing.T) {
	client := &fakeS3{}
	host := newS3WithClient(client, config.S3Config{
		Bucket:        "catalog",
		Prefix:        "/uploads/",
		PublicBaseURL: "https://cdn.example.com/",
	})

	res, err := host.Upload(context.Background(), writeTempImage(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(client.putKey, "uploads/"))
	assert.True(t, strings.HasSuffix(client.putKey, ".png"))
	assert.Equal(t, "image/png", client.putContentType)
	assert.Equal(t, pngHeader, client.putBody)

	assert.Equal(t, client.putKey, res.PublicID)
	assert.Equal(t, "https://cdn.example.com/"+client.putKey, res.SecureURL)
}

func TestS3_Destroy(t *testing.T) {
	client := &fakeS3{}
	host := newS3WithClient(client, config.S3Config{Bucket: "catalog"})

	require.NoError(t, host.Destroy(context.Background(), "uploads/a.png"))
	assert.Equal(t, []string{"uploads/a.png"}, client.deletedKeys)
}

func TestS3_PropagatesClientErrors(t *testing.T) {
	client := &fakeS3{err: errors.New("access denied")}
	host := newS3WithClient(client, config.S3Config{Bucket: "catalog"})

	_, err := host.Upload(context.Background(), writeTempImage(t))
	assert.ErrorContains(t, err, "access denied")

	assert.ErrorContains(t, host.Destroy(context.Background(), "k"), "access denied")
}
