package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"
)

type catalogTestMocks struct {
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	brandRepo    *mockRepo.MockBrandRepository
	variantRepo  *mockRepo.MockVariantRepository
}

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, *catalogTestMocks) {
	t.Helper()

	m := &catalogTestMocks{
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		brandRepo:    mockRepo.NewMockBrandRepository(t),
		variantRepo:  mockRepo.NewMockVariantRepository(t),
	}

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo:  m.productRepo,
		CategoryRepo: m.categoryRepo,
		BrandRepo:    m.brandRepo,
		VariantRepo:  m.variantRepo,
		Logger:       testLogger(),
	})

	return service, m
}

func TestCatalogService_ListProducts_PassesFilter(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()
	categoryID := int64(3)

	m.productRepo.EXPECT().
		ListActive(ctx, repository.ProductFilter{CategoryID: &categoryID, Search: "key"}).
		Return([]*entity.Product{{ID: 1, Name: "Keyboard", Price: dec("10.00"), IsActive: true}}, nil)

	views, err := service.ListProducts(ctx, usecase.ListProductsFilter{CategoryID: &categoryID, Search: "key"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Keyboard", views[0].Name)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.productRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.GetProduct(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateProduct_DefaultsToActive(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			assert.True(t, product.IsActive)
			product.ID = 10
			return nil
		})

	m.productRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Product{ID: 10, Name: "Keyboard", Price: dec("10.00"), IsActive: true}, nil)

	view, err := service.CreateProduct(ctx, &usecase.ProductInput{Name: "Keyboard", Price: dec("10.00")})
	require.NoError(t, err)
	assert.True(t, view.IsActive)
}

func TestCatalogService_CreateProduct_UnknownCategoryRejected(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()
	categoryID := int64(77)

	m.categoryRepo.EXPECT().
		FindByID(ctx, int64(77)).
		Return(nil, repository.ErrCategoryNotFound)

	_, err := service.CreateProduct(ctx, &usecase.ProductInput{
		Name:       "Keyboard",
		Price:      dec("10.00"),
		CategoryID: &categoryID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_UpdateProduct_KeepsImageWhenInputOmitsIt(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	existing := &entity.Product{
		ID:       10,
		Name:     "Keyboard",
		Price:    dec("10.00"),
		Image:    "https://cdn.example.com/kb.png",
		ImageKey: "products/kb.png",
		IsActive: true,
	}

	m.productRepo.EXPECT().FindByID(ctx, int64(10)).Return(existing, nil).Twice()

	m.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			assert.Equal(t, "https://cdn.example.com/kb.png", product.Image)
			assert.Equal(t, "products/kb.png", product.ImageKey)
			assert.True(t, product.IsActive, "nil active flag leaves the current value")
			return nil
		})

	_, err := service.UpdateProduct(ctx, 10, &usecase.ProductInput{Name: "Keyboard v2", Price: dec("12.00")})
	require.NoError(t, err)
}

func TestCatalogService_ListVariants_ChecksProductExists(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.productRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.ListVariants(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateVariant_Success(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.productRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Product{ID: 10, Name: "Keyboard", Price: dec("10.00")}, nil)

	m.variantRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ProductVariant")).
		RunAndReturn(func(_ context.Context, variant *entity.ProductVariant) error {
			assert.Equal(t, int64(10), variant.ProductID)
			variant.ID = 4
			return nil
		})

	variant, err := service.CreateVariant(ctx, 10, &usecase.VariantInput{Name: "Red", Price: dec("11.00")})
	require.NoError(t, err)
	assert.Equal(t, int64(4), variant.ID)
}

func TestCatalogService_DeleteCategory_NotFound(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.categoryRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrCategoryNotFound)

	err := service.DeleteCategory(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_UpdateBrand_Success(t *testing.T) {
	service, m := newCatalogService(t)
	ctx := context.Background()

	m.brandRepo.EXPECT().
		FindByID(ctx, int64(2)).
		Return(&entity.Brand{ID: 2, Name: "Old"}, nil)

	m.brandRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Brand")).
		Return(nil)

	brand, err := service.UpdateBrand(ctx, 2, &usecase.BrandInput{Name: "Aurora", Description: "peripherals"})
	require.NoError(t, err)
	assert.Equal(t, "Aurora", brand.Name)
}
