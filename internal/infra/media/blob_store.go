// Package media implements image hosting on top of a gocloud blob bucket.
package media

import (
	"context"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers resolved from the media.bucketUrl scheme. fileblob serves
	// local development, memblob serves tests; cloud drivers register the same
	// way when needed.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
)

// blobImageStore implements the ImageStore interface using a gocloud bucket.
type blobImageStore struct {
	bucket        *blob.Bucket
	prefix        string
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as a service.ImageStore.
// The bucket is closed on shutdown through the Fx lifecycle.
func New(params Params) (service.ImageStore, error) {
	if params.Config.Media == nil || params.Config.Media.BucketURL == "" {
		return nil, errors.New("media bucket url must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:        bucket,
		prefix:        strings.Trim(params.Config.Media.Prefix, "/"),
		publicBaseURL: strings.TrimRight(params.Config.Media.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload writes the image under a random key and returns the key and the
// public URL it is reachable at. The original filename only contributes its
// extension; keys never collide with user input.
func (s *blobImageStore) Upload(ctx context.Context, filename string, data []byte) (*service.StoredImage, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := uuid.New().String() + ext
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}

	opts := &blob.WriterOptions{}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		opts.ContentType = contentType
	}

	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return nil, errors.Wrap(err, "failed to write image to bucket")
	}

	s.logger.Debug("Stored image", slog.String("key", key), slog.Int("bytes", len(data)))

	return &service.StoredImage{
		Key: key,
		URL: s.publicBaseURL + "/" + key,
	}, nil
}

// Delete removes a stored image. Deleting a missing key is not an error so
// retried cleanups stay idempotent.
func (s *blobImageStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil {
		exists, existsErr := s.bucket.Exists(ctx, key)
		if existsErr == nil && !exists {
			return nil
		}

		return errors.Wrap(err, "failed to delete image from bucket")
	}

	return nil
}
