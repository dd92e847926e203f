// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// Image uploads are capped well below typical proxy body limits; product
// photos are expected to be pre-resized by the admin frontend.
const maxImageSize = 10 << 20

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	store  service.ImageStore
	logger *slog.Logger
}

// MediaServiceParams holds dependencies for mediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Store  service.ImageStore
	Logger *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		store:  params.Store,
		logger: params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage validates the file and pushes it to the media host.
func (srv *mediaService) UploadImage(ctx context.Context, filename string, data []byte) (*service.StoredImage, error) {
	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("empty image file")
	}
	if len(data) > maxImageSize {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("image file too large")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unsupported image type")
	}

	stored, err := srv.store.Upload(ctx, filename, data)
	if err != nil {
		srv.log(ctx).Error("Image upload failed", slog.String("filename", filename), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upload image")
	}
	srv.log(ctx).Info("Image uploaded", slog.String("key", stored.Key))

	return stored, nil
}

// DeleteImage removes a previously uploaded image from the media host.
func (srv *mediaService) DeleteImage(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("image key is required")
	}

	if err := srv.store.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete image")
	}
	srv.log(ctx).Info("Image deleted", slog.String("key", key))

	return nil
}
