// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"

	"github.com/study-cards/backend/config"
	"github.com/study-cards/backend/internal/application/adapter"
)

// storageService implements the adapter.StorageService interface on top of
// a MinIO/S3 bucket. When a redis client is provided, presigned URLs are
// cached with a TTL shorter than the URL expiry so cached URLs never
// outlive their signature.
type storageService struct {
	client    *minio.Client
	bucket    string
	urlExpiry time.Duration
	cache     *redis.Client
	cacheTTL  time.Duration
}

// NewStorageService creates a new object storage service instance.
// The redis client is optional; pass nil to disable URL caching.
func NewStorageService(cfg config.StorageConfig, cache *redis.Client) (adapter.StorageService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &storageService{
		client:    client,
		bucket:    cfg.Bucket,
		urlExpiry: cfg.URLExpiry,
		cache:     cache,
		cacheTTL:  cfg.URLCacheTTL,
	}, nil
}

// EnsureBucket creates the configured bucket if it does not exist yet.
func EnsureBucket(ctx context.Context, svc adapter.StorageService) error {
	s, ok := svc.(*storageService)
	if !ok {
		return nil
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Put uploads an object under the given key.
func (s *storageService) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return nil
}

// PresignedURL issues a time-limited signed download URL for the given key.
func (s *storageService) PresignedURL(ctx context.Context, key string) (string, error) {
	cacheKey := "presign:" + key

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			slog.Warn("Presigned URL cache lookup failed", "key", key, "error", err)
		}
	}

	signed, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.urlExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", key, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, signed.String(), s.cacheTTL).Err(); err != nil {
			slog.Warn("Presigned URL cache store failed", "key", key, "error", err)
		}
	}

	return signed.String(), nil
}

// List returns the object keys under the given prefix.
func (s *storageService) List(ctx context.Context, prefix string) ([]string, error) {
	keys := []string{}
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects under %s: %w", prefix, object.Err)
		}
		keys = append(keys, object.Key)
	}
	return keys, nil
}

// Remove deletes the object under the given key and drops any cached URL.
func (s *storageService) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %s: %w", key, err)
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, "presign:"+key).Err(); err != nil {
			slog.Warn("Presigned URL cache delete failed", "key", key, "error", err)
		}
	}

	return nil
}
