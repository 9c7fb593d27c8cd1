package blob

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"course-service/internal/logger"
)

// uploadVerifyAttempts bounds the post-upload existence check.
const uploadVerifyAttempts = 3

// S3Store stores objects in an S3-compatible bucket using path-style
// addressing.
type S3Store struct {
	client *minio.Client
	bucket string
}

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

func NewS3Store(cfg S3Config) (*S3Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       cfg.UseSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return &S3Store{client: client, bucket: cfg.Bucket}, nil
}

func (s *S3Store) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("%w: upload %s: %v", ErrStorage, key, err)
	}

	// Verify the object landed before the caller records the key.
	var statErr error
	for attempt := 0; attempt < uploadVerifyAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(200 * time.Millisecond)
		}
		if _, statErr = s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); statErr == nil {
			return nil
		}
	}

	return fmt.Errorf("%w: upload %s not visible after %d attempts: %v",
		ErrStorage, key, uploadVerifyAttempts, statErr)
}

func (s *S3Store) Download(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: download %s: %v", ErrStorage, key, err)
	}

	// GetObject is lazy; Stat surfaces NoSuchKey before any bytes flow.
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, 0, fmt.Errorf("%w: download %s: %v", ErrStorage, key, err)
	}

	return obj, info.Size, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		// S3 delete of a missing key already succeeds; anything surfacing
		// here is a real backend failure.
		return fmt.Errorf("%w: delete %s: %v", ErrStorage, key, err)
	}
	return nil
}

func (s *S3Store) List(ctx context.Context) ([]string, error) {
	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("%w: list: %v", ErrStorage, obj.Err)
		}
		keys = append(keys, obj.Key)
	}

	logger.Info("listed bucket objects", map[string]any{"count": len(keys)})
	return keys, nil
}
