// Package minio implements the artifact store on an S3-compatible object
// store, for deployments where the database tree is mirrored into a bucket.
package minio

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/storage"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
)

// Store serves files from one bucket, keyed by catalog-relative path.
type Store struct {
	client *minio.Client
	bucket string
	log    logging.Logger
}

var _ storage.Store = (*Store)(nil)

// NewStore connects to the object store and verifies the bucket exists.
func NewStore(ctx context.Context, cfg config.MinioConfig, log logging.Logger) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageError, "creating object store client")
	}

	ok, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageError, "checking bucket")
	}
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrCodeStorageError, "bucket %q does not exist", cfg.Bucket)
	}

	log.Info("object store connected",
		logging.String("endpoint", cfg.Endpoint),
		logging.String("bucket", cfg.Bucket),
	)
	return &Store{client: client, bucket: cfg.Bucket, log: log.Named("minio")}, nil
}

// Open returns the object content at path.
func (s *Store) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageError, "fetching object")
	}
	// GetObject is lazy; a Stat surfaces missing keys before the caller
	// starts streaming.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, apperrors.Newf(apperrors.ErrCodeNotFound, "object %q not found", path)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageError, "reading object metadata")
	}
	return obj, nil
}

// Exists reports whether an object is present at path.
func (s *Store) Exists(ctx context.Context, path string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, path, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, apperrors.Wrap(err, apperrors.ErrCodeStorageError, "probing object")
	}
	return true, nil
}
