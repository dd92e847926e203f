package impl

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"
)

// passthroughTx wires a MockTransactionManager to run the callback against
// the given factory, so transactional flows are exercised without a database.
func passthroughTx(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	mockTx := mockRepo.NewMockTransactionManager(t)
	mockTx.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return mockTx
}

func TestCartService_GetCart_CreatesOnFirstAccess(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCartService(CartServiceParams{
		TxManager: passthroughTx(t, mockFactory),
		CartRepo:  mockCartRepo,
		Logger:    testLogger(),
	})

	ctx := context.Background()

	mockCartRepo.EXPECT().
		FindByUserID(ctx, int64(5)).
		Return(nil, repository.ErrCartNotFound)

	mockCartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cart")).
		RunAndReturn(func(_ context.Context, cart *entity.Cart) error {
			cart.ID = 11
			return nil
		})

	view, err := service.GetCart(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(11), view.ID)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
}

func TestCartService_AddToCart_NewLine(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
	mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

	service := NewCartService(CartServiceParams{
		TxManager: passthroughTx(t, mockFactory),
		CartRepo:  mockCartRepo,
		Logger:    testLogger(),
	})

	ctx := context.Background()
	cart := &entity.Cart{ID: 11, UserID: 5}
	product := &entity.Product{ID: 2, Name: "Mouse", Price: decimal.NewFromInt(30), IsActive: true}

	mockCartRepo.EXPECT().
		FindByUserID(ctx, int64(5)).
		Return(cart, nil).Twice()

	mockProductRepo.EXPECT().
		FindActiveByID(ctx, int64(2)).
		Return(product, nil)

	mockCartRepo.EXPECT().
		FindItem(ctx, int64(11), int64(2)).
		Return(nil, repository.ErrCartItemNotFound)

	mockCartRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		RunAndReturn(func(_ context.Context, item *entity.CartItem) error {
			assert.Equal(t, int64(11), item.CartID)
			assert.Equal(t, int64(2), item.ProductID)
			assert.Equal(t, 3, item.Quantity)
			return nil
		})

	_, err := service.AddToCart(ctx, 5, &usecase.AddToCartInput{ProductID: 2, Quantity: 3})
	require.NoError(t, err)
}

func TestCartService_AddToCart_IncrementsExistingLine(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
	mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

	service := NewCartService(CartServiceParams{
		TxManager: passthroughTx(t, mockFactory),
		CartRepo:  mockCartRepo,
		Logger:    testLogger(),
	})

	ctx := context.Background()
	cart := &entity.Cart{ID: 11, UserID: 5}

	mockCartRepo.EXPECT().
		FindByUserID(ctx, int64(5)).
		Return(cart, nil).Twice()

	mockProductRepo.EXPECT().
		FindActiveByID(ctx, int64(2)).
		Return(&entity.Product{ID: 2, Price: decimal.NewFromInt(30), IsActive: true}, nil)

	mockCartRepo.EXPECT().
		FindItem(ctx, int64(11), int64(2)).
		Return(&entity.CartItem{ID: 9, CartID: 11, ProductID: 2, Quantity: 1}, nil)

	// The delta goes to the database as an atomic increment; the loaded
	// quantity is never written back.
	mockCartRepo.EXPECT().
		IncrementItemQuantity(ctx, int64(9), 2).
		Return(nil)

	_, err := service.AddToCart(ctx, 5, &usecase.AddToCartInput{ProductID: 2, Quantity: 2})
	require.NoError(t, err)
}

func TestCartService_AddToCart_InactiveProduct(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
	mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

	service := NewCartService(CartServiceParams{
		TxManager: passthroughTx(t, mockFactory),
		CartRepo:  mockCartRepo,
		Logger:    testLogger(),
	})

	ctx := context.Background()

	mockCartRepo.EXPECT().
		FindByUserID(ctx, int64(5)).
		Return(&entity.Cart{ID: 11, UserID: 5}, nil)

	mockProductRepo.EXPECT().
		FindActiveByID(ctx, int64(2)).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.AddToCart(ctx, 5, &usecase.AddToCartInput{ProductID: 2, Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_UpdateItem_OwnershipViolation(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCartService(CartServiceParams{
		TxManager: passthroughTx(t, mockFactory),
		CartRepo:  mockCartRepo,
		Logger:    testLogger(),
	})

	ctx := context.Background()

	mockCartRepo.EXPECT().
		FindByUserID(ctx, int64(5)).
		Return(&entity.Cart{ID: 11, UserID: 5}, nil)

	// Item exists but hangs off someone else's cart.
	mockCartRepo.EXPECT().
		FindItemByID(ctx, int64(40)).
		Return(&entity.CartItem{ID: 40, CartID: 99, ProductID: 2, Quantity: 1}, nil)

	_, err := service.UpdateItem(ctx, 5, 40, &usecase.UpdateCartItemInput{Quantity: 4})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCartService(CartServiceParams{
		TxManager: passthroughTx(t, mockFactory),
		CartRepo:  mockCartRepo,
		Logger:    testLogger(),
	})

	ctx := context.Background()

	mockCartRepo.EXPECT().
		FindByUserID(ctx, int64(5)).
		Return(&entity.Cart{ID: 11, UserID: 5}, nil).Twice()

	mockCartRepo.EXPECT().
		FindItemByID(ctx, int64(40)).
		Return(&entity.CartItem{ID: 40, CartID: 11, ProductID: 2, Quantity: 1}, nil)

	mockCartRepo.EXPECT().
		DeleteItem(ctx, int64(40)).
		Return(nil)

	_, err := service.RemoveItem(ctx, 5, 40)
	require.NoError(t, err)
}

func TestCartService_ClearCart_KeepsCartRow(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCartService(CartServiceParams{
		TxManager: passthroughTx(t, mockFactory),
		CartRepo:  mockCartRepo,
		Logger:    testLogger(),
	})

	ctx := context.Background()

	mockCartRepo.EXPECT().
		FindByUserID(ctx, int64(5)).
		Return(&entity.Cart{ID: 11, UserID: 5}, nil)

	// Only the items are deleted; no call ever touches the cart row itself.
	mockCartRepo.EXPECT().
		DeleteItemsByCartID(ctx, int64(11)).
		Return(nil)

	err := service.ClearCart(ctx, 5)
	require.NoError(t, err)
}
