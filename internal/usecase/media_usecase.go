// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// MediaUsecase defines the interface for image hosting operations.
type MediaUsecase interface {
	// UploadImage pushes the image to the external media host and returns its
	// key and public URL.
	UploadImage(ctx context.Context, filename string, data []byte) (*service.StoredImage, error)

	// DeleteImage removes a previously uploaded image.
	DeleteImage(ctx context.Context, key string) error
}
