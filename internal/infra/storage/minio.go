package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func NewMinioStore(cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

var _ Store = (*MinioStore)(nil)

// MinioStore writes artifacts to an S3-compatible bucket. The returned path
// is the object key, prefixed with the bucket for audit logs.
type MinioStore struct {
	client *minio.Client
	bucket string
}

func (s *MinioStore) Save(ctx context.Context, data []byte, filename string, dir string) (string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("checking bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("creating bucket: %w", err)
		}
	}

	key := path.Join(dir, filename)
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentTypeFor(filename),
	})
	if err != nil {
		return "", fmt.Errorf("putting object: %w", err)
	}

	return path.Join(s.bucket, key), nil
}

func contentTypeFor(filename string) string {
	contentType := mime.TypeByExtension(path.Ext(filename))
	if contentType == "" {
		return "application/octet-stream"
	}

	return contentType
}
