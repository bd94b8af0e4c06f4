package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Ved-B18/ground-finder-pro/internal/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	BucketAvatars     = "avatars"
	BucketVenueImages = "venue-images"

	maxAvatarSize     = 5 << 20
	maxVenueImageSize = 10 << 20
)

var (
	ErrUnknownBucket   = errors.New("unknown bucket")
	ErrInvalidFileType = errors.New("only JPG, PNG, and WebP images are allowed")
	ErrFileTooLarge    = errors.New("file exceeds the maximum size for this bucket")
)

// extensions double as the content-type whitelist.
var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

func MaxSize(bucket string) (int64, error) {
	switch bucket {
	case BucketAvatars:
		return maxAvatarSize, nil
	case BucketVenueImages:
		return maxVenueImageSize, nil
	default:
		return 0, ErrUnknownBucket
	}
}

// ValidateUpload checks the content type and size against the bucket's
// limits before any bytes are moved.
func ValidateUpload(bucket, contentType string, size int64) error {
	max, err := MaxSize(bucket)
	if err != nil {
		return err
	}
	if _, ok := extensions[contentType]; !ok {
		return ErrInvalidFileType
	}
	if size > max {
		return ErrFileTooLarge
	}
	return nil
}

// ObjectName builds a collision-resistant object key under the given
// folder, keeping the original extension.
func ObjectName(folder, contentType string) string {
	buf := make([]byte, 8)
	rand.Read(buf)
	name := fmt.Sprintf("%s_%d.%s", hex.EncodeToString(buf), time.Now().Unix(), extensions[contentType])
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

type Service struct {
	client        *minio.Client
	publicBaseURL string
}

func New(endpoint, accessKey, secretKey string, useSSL bool, publicBaseURL string) (*Service, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to object storage: %w", err)
	}

	return &Service{client: client, publicBaseURL: publicBaseURL}, nil
}

// EnsureBuckets creates the image buckets if they do not exist yet.
func (s *Service) EnsureBuckets(ctx context.Context) error {
	for _, bucket := range []string{BucketAvatars, BucketVenueImages} {
		exists, err := s.client.BucketExists(ctx, bucket)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
		logger.Info("Bucket created", "bucket", bucket)
	}
	return nil
}

// Upload stores an image and returns its public URL.
func (s *Service) Upload(ctx context.Context, bucket, folder string, reader io.Reader, size int64, contentType string) (string, error) {
	if err := ValidateUpload(bucket, contentType, size); err != nil {
		return "", err
	}

	objectName := ObjectName(folder, contentType)

	_, err := s.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("uploading object: %w", err)
	}

	logger.Info("Image uploaded", "bucket", bucket, "object", objectName, "size", size)

	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, bucket, objectName), nil
}
