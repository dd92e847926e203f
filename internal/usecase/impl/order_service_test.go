package impl

import (
	"context"
	"net/http"
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

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type orderTestMocks struct {
	cartRepo    *mockRepo.MockCartRepository
	userRepo    *mockRepo.MockUserRepository
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	factory     *mockRepo.MockRepositoryFactory
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, *orderTestMocks) {
	t.Helper()

	m := &orderTestMocks{
		cartRepo:    mockRepo.NewMockCartRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
	}
	m.factory.EXPECT().CartRepo().Return(m.cartRepo).Maybe()
	m.factory.EXPECT().UserRepo().Return(m.userRepo).Maybe()
	m.factory.EXPECT().OrderRepo().Return(m.orderRepo).Maybe()
	m.factory.EXPECT().ProductRepo().Return(m.productRepo).Maybe()

	service := NewOrderService(OrderServiceParams{
		TxManager: passthroughTx(t, m.factory),
		OrderRepo: m.orderRepo,
		Logger:    testLogger(),
	})

	return service, m
}

func checkoutInput() *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		ShippingAddress:  "12 Main St",
		ShippingCity:     "Springfield",
		ShippingDistrict: "Central",
		ShippingWard:     "Ward 4",
		ShippingPhone:    "0901234567",
		ShippingFee:      decPtr("2.00"),
		PaymentMethod:    "COD",
		DiscountAmount:   decPtr("1.00"),
	}
}

func TestOrderService_CreateOrderFromCart_SnapshotsPricesAndClearsCart(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	cart := &entity.Cart{ID: 11, UserID: 5}
	items := []*entity.CartItem{
		{
			ID: 1, CartID: 11, ProductID: 100, Quantity: 2,
			Product: &entity.Product{ID: 100, Name: "Keyboard", Image: "kb.png", Price: dec("10.00")},
		},
		{
			ID: 2, CartID: 11, ProductID: 101, Quantity: 1,
			Product: &entity.Product{ID: 101, Name: "Cable", Image: "cable.png", Price: dec("5.00"), DiscountPrice: decPtr("3.00")},
		},
	}

	m.cartRepo.EXPECT().LockByUserID(ctx, int64(5)).Return(cart, nil)
	m.cartRepo.EXPECT().FindItems(ctx, int64(11)).Return(items, nil)
	m.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.User{ID: 5, Name: "Alice"}, nil)

	var created *entity.Order
	m.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.ID = 77
			created = order
			return nil
		})

	m.orderRepo.EXPECT().
		CreateDetails(ctx, mock.AnythingOfType("[]*entity.OrderDetail")).
		RunAndReturn(func(_ context.Context, details []*entity.OrderDetail) error {
			require.Len(t, details, 2)
			assert.Equal(t, int64(77), details[0].OrderID)
			assert.Equal(t, "Keyboard", details[0].ProductName)
			assert.True(t, details[0].Price.Equal(dec("10.00")))
			// The discounted unit price is frozen, not the list price.
			assert.True(t, details[1].Price.Equal(dec("3.00")))
			return nil
		})

	m.cartRepo.EXPECT().DeleteItemsByCartID(ctx, int64(11)).Return(nil)

	m.orderRepo.EXPECT().
		FindByID(ctx, int64(77)).
		RunAndReturn(func(context.Context, int64) (*entity.Order, error) {
			return created, nil
		})

	view, err := service.CreateOrderFromCart(ctx, 5, checkoutInput())
	require.NoError(t, err)

	// 2 x 10.00 + 1 x 3.00 = 23.00; plus 2.00 fee minus 1.00 discount.
	assert.True(t, view.TotalPrice.Equal(dec("23.00")), "total %s", view.TotalPrice)
	assert.True(t, view.FinalTotal.Equal(dec("24.00")), "final %s", view.FinalTotal)
	assert.Equal(t, "PENDING", view.Status)
	assert.Equal(t, "PENDING", view.PaymentStatus)
	assert.Equal(t, "Alice", view.UserName)
	assert.Nil(t, view.PaidAt)
}

func TestOrderService_CreateOrderFromCart_EmptyCart(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	m.cartRepo.EXPECT().LockByUserID(ctx, int64(5)).Return(&entity.Cart{ID: 11, UserID: 5}, nil)
	m.cartRepo.EXPECT().FindItems(ctx, int64(11)).Return(nil, nil)

	_, err := service.CreateOrderFromCart(ctx, 5, checkoutInput())
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_CreateOrderFromCart_NoCartRow(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	m.cartRepo.EXPECT().LockByUserID(ctx, int64(5)).Return(nil, repository.ErrCartNotFound)

	_, err := service.CreateOrderFromCart(ctx, 5, checkoutInput())
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestOrderService_CreateOrderFromCart_UnknownPaymentMethod(t *testing.T) {
	service, _ := newOrderService(t)

	input := checkoutInput()
	input.PaymentMethod = "CRYPTO"

	_, err := service.CreateOrderFromCart(context.Background(), 5, input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrderFromCart_NegativeFinalTotalAllowed(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	items := []*entity.CartItem{
		{
			ID: 1, CartID: 11, ProductID: 100, Quantity: 1,
			Product: &entity.Product{ID: 100, Name: "Sticker", Price: dec("1.00")},
		},
	}

	m.cartRepo.EXPECT().LockByUserID(ctx, int64(5)).Return(&entity.Cart{ID: 11, UserID: 5}, nil)
	m.cartRepo.EXPECT().FindItems(ctx, int64(11)).Return(items, nil)
	m.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.User{ID: 5, Name: "Alice"}, nil)

	var created *entity.Order
	m.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.ID = 78
			created = order
			return nil
		})
	m.orderRepo.EXPECT().CreateDetails(ctx, mock.Anything).Return(nil)
	m.cartRepo.EXPECT().DeleteItemsByCartID(ctx, int64(11)).Return(nil)
	m.orderRepo.EXPECT().
		FindByID(ctx, int64(78)).
		RunAndReturn(func(context.Context, int64) (*entity.Order, error) {
			return created, nil
		})

	input := checkoutInput()
	input.ShippingFee = decPtr("0.00")
	input.DiscountAmount = decPtr("5.00")

	view, err := service.CreateOrderFromCart(ctx, 5, input)
	require.NoError(t, err)
	assert.True(t, view.FinalTotal.Equal(dec("-4.00")), "final %s", view.FinalTotal)
}

// Checkout must take the cart row lock before reading the items; a loser of
// the lock race then re-reads an already emptied cart. The call order is what
// makes concurrent checkouts serialize, so it is pinned here.
func TestOrderService_CreateOrderFromCart_LocksCartBeforeReadingItems(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	var calls []string

	m.cartRepo.EXPECT().
		LockByUserID(ctx, int64(5)).
		RunAndReturn(func(context.Context, int64) (*entity.Cart, error) {
			calls = append(calls, "lock")
			return &entity.Cart{ID: 11, UserID: 5}, nil
		})
	m.cartRepo.EXPECT().
		FindItems(ctx, int64(11)).
		RunAndReturn(func(context.Context, int64) ([]*entity.CartItem, error) {
			calls = append(calls, "read")
			return nil, nil
		})

	_, err := service.CreateOrderFromCart(ctx, 5, checkoutInput())
	require.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	assert.Equal(t, []string{"lock", "read"}, calls)
}

// Deactivating a product blocks new cart additions but not checkout of a
// cart that already holds it.
func TestOrderService_CreateOrderFromCart_InactiveProductStillOrderable(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	items := []*entity.CartItem{
		{
			ID: 1, CartID: 11, ProductID: 100, Quantity: 1,
			Product: &entity.Product{ID: 100, Name: "Retired Keyboard", Price: dec("10.00"), IsActive: false},
		},
	}

	m.cartRepo.EXPECT().LockByUserID(ctx, int64(5)).Return(&entity.Cart{ID: 11, UserID: 5}, nil)
	m.cartRepo.EXPECT().FindItems(ctx, int64(11)).Return(items, nil)
	m.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.User{ID: 5, Name: "Alice"}, nil)

	var created *entity.Order
	m.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.ID = 79
			created = order
			return nil
		})
	m.orderRepo.EXPECT().CreateDetails(ctx, mock.Anything).Return(nil)
	m.cartRepo.EXPECT().DeleteItemsByCartID(ctx, int64(11)).Return(nil)
	m.orderRepo.EXPECT().
		FindByID(ctx, int64(79)).
		RunAndReturn(func(context.Context, int64) (*entity.Order, error) {
			return created, nil
		})

	view, err := service.CreateOrderFromCart(ctx, 5, checkoutInput())
	require.NoError(t, err)
	assert.True(t, view.TotalPrice.Equal(dec("10.00")))
}

func TestOrderService_GetUserOrder_OwnershipEnforced(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	m.orderRepo.EXPECT().
		FindByID(ctx, int64(77)).
		Return(&entity.Order{ID: 77, UserID: 9}, nil)

	_, err := service.GetUserOrder(ctx, 5, 77)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_GetUserOrder_NotFound(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	m.orderRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrOrderNotFound)

	_, err := service.GetUserOrder(ctx, 5, 404)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

// A status update against a missing order is a bad request, matching the rest
// of the order workflow, not a generic 404.
func TestOrderService_UpdateOrderStatus_MissingOrderIsBadRequest(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	m.orderRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrOrderNotFound)

	_, err := service.UpdateOrderStatus(ctx, 404, &usecase.UpdateOrderStatusInput{Status: "PROCESSING"})
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestOrderService_GetOrdersByStatus_UnknownStatus(t *testing.T) {
	service, _ := newOrderService(t)

	_, err := service.GetOrdersByStatus(context.Background(), "TELEPORTED")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateOrderStatus_CODCompletionMarksPaid(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	order := &entity.Order{
		ID:            77,
		UserID:        5,
		Status:        entity.OrderStatusProcessing,
		PaymentMethod: entity.PaymentMethodCOD,
		PaymentStatus: entity.PaymentStatusPending,
	}

	m.orderRepo.EXPECT().FindByID(ctx, int64(77)).Return(order, nil)
	m.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, updated *entity.Order) error {
			assert.Equal(t, entity.OrderStatusCompleted, updated.Status)
			assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)
			assert.NotNil(t, updated.PaidAt)
			return nil
		})

	view, err := service.UpdateOrderStatus(ctx, 77, &usecase.UpdateOrderStatusInput{Status: "COMPLETED"})
	require.NoError(t, err)
	assert.Equal(t, "PAID", view.PaymentStatus)
	assert.NotNil(t, view.PaidAt)
}

func TestOrderService_UpdateOrderStatus_CODCompletionLeavesSettledPaymentAlone(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	paid := &entity.Order{
		ID:            77,
		UserID:        5,
		Status:        entity.OrderStatusProcessing,
		PaymentMethod: entity.PaymentMethodCOD,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	m.orderRepo.EXPECT().FindByID(ctx, int64(77)).Return(paid, nil)
	m.orderRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, updated *entity.Order) error {
			assert.Equal(t, entity.PaymentStatusPaid, updated.PaymentStatus)
			assert.Nil(t, updated.PaidAt)
			return nil
		})

	_, err := service.UpdateOrderStatus(ctx, 77, &usecase.UpdateOrderStatusInput{Status: "COMPLETED"})
	require.NoError(t, err)
}

func TestOrderService_UpdateOrderStatus_AnyTransitionAllowed(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	// A completed order may move back to PENDING; no transition graph exists.
	order := &entity.Order{
		ID:            77,
		Status:        entity.OrderStatusCompleted,
		PaymentMethod: entity.PaymentMethodCOD,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	m.orderRepo.EXPECT().FindByID(ctx, int64(77)).Return(order, nil)
	m.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	notes := "customer dispute"
	view, err := service.UpdateOrderStatus(ctx, 77, &usecase.UpdateOrderStatusInput{Status: "PENDING", Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", view.Status)
	assert.Equal(t, "customer dispute", view.Notes)
}
