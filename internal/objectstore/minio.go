package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"podcaster/internal/domain"
)

type Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Region        string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string
}

// Store keeps opaque blobs in one S3-compatible bucket.
type Store struct {
	client     *minio.Client
	bucket     string
	publicBase *url.URL
	logger     *slog.Logger
}

func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("created bucket", "bucket", cfg.Bucket)
	}

	base := *client.EndpointURL()
	base.Path = "/" + cfg.Bucket
	if cfg.PublicBaseURL != "" {
		parsed, err := url.Parse(strings.TrimRight(cfg.PublicBaseURL, "/"))
		if err != nil {
			return nil, fmt.Errorf("parse public base url: %w", err)
		}
		base = *parsed
	}

	logger.Info("connected to object storage",
		"endpoint", cfg.Endpoint,
		"bucket", cfg.Bucket,
	)

	return &Store{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: &base,
		logger:     logger,
	}, nil
}

// Put stores data under key and returns its public URL.
func (s *Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", domain.Wrap(domain.ErrUpstreamUnavailable, "put object "+key, err)
	}

	s.logger.Debug("stored object", "key", key, "bytes", len(data), "content_type", contentType)

	return s.PublicURL(key), nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.classify("get object "+key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.classify("read object "+key, err)
	}
	return data, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return domain.Wrap(domain.ErrUpstreamUnavailable, "delete object "+key, err)
	}
	return nil
}

// PublicURL returns the URL readers use to fetch key. It does not check that key exists.
func (s *Store) PublicURL(key string) string {
	u := *s.publicBase
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(key, "/")
	return u.String()
}

func (s *Store) classify(op string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return domain.Wrap(domain.ErrNotFound, op, err)
	}
	return domain.Wrap(domain.ErrUpstreamUnavailable, op, err)
}
