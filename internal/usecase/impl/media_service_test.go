package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"
)

func newMediaService(t *testing.T) (usecase.MediaUsecase, *mockSvc.MockImageStore) {
	t.Helper()

	mockStore := mockSvc.NewMockImageStore(t)
	svc := NewMediaService(MediaServiceParams{
		Store:  mockStore,
		Logger: testLogger(),
	})

	return svc, mockStore
}

func TestMediaService_UploadImage_Success(t *testing.T) {
	svc, mockStore := newMediaService(t)
	ctx := context.Background()
	data := []byte("fake png bytes")

	mockStore.EXPECT().
		Upload(ctx, "product.png", data).
		Return(&service.StoredImage{Key: "products/abc.png", URL: "https://cdn.example.com/products/abc.png"}, nil)

	stored, err := svc.UploadImage(ctx, "product.png", data)
	require.NoError(t, err)
	assert.Equal(t, "products/abc.png", stored.Key)
}

func TestMediaService_UploadImage_RejectsInvalidInput(t *testing.T) {
	svc, _ := newMediaService(t)
	ctx := context.Background()

	t.Run("empty file", func(t *testing.T) {
		_, err := svc.UploadImage(ctx, "product.png", nil)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("oversized file", func(t *testing.T) {
		_, err := svc.UploadImage(ctx, "product.png", make([]byte, maxImageSize+1))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := svc.UploadImage(ctx, "notes.pdf", []byte("data"))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("extension case is ignored", func(t *testing.T) {
		svc2, mockStore := newMediaService(t)
		mockStore.EXPECT().
			Upload(ctx, "PHOTO.JPG", []byte("data")).
			Return(&service.StoredImage{Key: "k", URL: "u"}, nil)

		_, err := svc2.UploadImage(ctx, "PHOTO.JPG", []byte("data"))
		assert.NoError(t, err)
	})
}

func TestMediaService_DeleteImage_RequiresKey(t *testing.T) {
	svc, _ := newMediaService(t)

	err := svc.DeleteImage(context.Background(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMediaService_DeleteImage_Success(t *testing.T) {
	svc, mockStore := newMediaService(t)
	ctx := context.Background()

	mockStore.EXPECT().Delete(ctx, "products/abc.png").Return(nil)

	require.NoError(t, svc.DeleteImage(ctx, "products/abc.png"))
}
