package service

import "context"

// StoredImage describes an uploaded image at the external media host.
type StoredImage struct {
	Key string // Storage key, used for later deletion.
	URL string // Publicly servable URL.
}

// ImageStore defines the interface for hosting product images on an external
// media service. Calls are synchronous; failures are translated to error
// responses without retry.
type ImageStore interface {
	// Upload stores the image bytes under a generated key and returns its
	// public location.
	Upload(ctx context.Context, filename string, data []byte) (*StoredImage, error)

	// Delete removes a previously uploaded image by its storage key.
	Delete(ctx context.Context, key string) error
}
