// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrderFromCart converts the user's cart into an order. The cart lock,
// total computation, order insert, price snapshot and cart clearing all happen
// in one transaction; a failure at any step leaves both cart and orders
// untouched.
func (srv *orderService) CreateOrderFromCart(ctx context.Context, userID int64, input *usecase.CreateOrderInput) (*usecase.OrderView, error) {
	paymentMethod, err := entity.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unsupported payment method")
	}

	shippingFee := decimal.Zero
	if input.ShippingFee != nil {
		shippingFee = *input.ShippingFee
	}
	discountAmount := decimal.Zero
	if input.DiscountAmount != nil {
		discountAmount = *input.DiscountAmount
	}

	var orderID int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		userRepo := repoFactory.UserRepo()
		orderRepo := repoFactory.OrderRepo()

		// The row lock serializes concurrent checkouts of the same cart; the
		// loser re-reads an already emptied cart and fails on ErrEmptyCart.
		cart, err := cartRepo.LockByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return domainerrors.ErrCartNotFound.WrapMessage("order creation failed")
			}

			return errors.Wrap(err, "failed to lock cart")
		}

		items, err := cartRepo.FindItems(ctx, cart.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart items")
		}
		if len(items) == 0 {
			return domainerrors.ErrEmptyCart.WrapMessage("order creation failed")
		}

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load user")
		}

		totalPrice := decimal.Zero
		details := make([]*entity.OrderDetail, 0, len(items))
		for _, item := range items {
			if item.Product == nil {
				return errors.Errorf("cart item %d has no product loaded", item.ID)
			}

			unitPrice := item.Product.EffectivePrice()
			totalPrice = totalPrice.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
			details = append(details, &entity.OrderDetail{
				ProductID:    item.Product.ID,
				ProductName:  item.Product.Name,
				ProductImage: item.Product.Image,
				Quantity:     item.Quantity,
				Price:        unitPrice,
			})
		}

		order := &entity.Order{
			UserID:           userID,
			UserName:         user.Name,
			TotalPrice:       totalPrice,
			Status:           entity.OrderStatusPending,
			ShippingAddress:  input.ShippingAddress,
			ShippingCity:     input.ShippingCity,
			ShippingDistrict: input.ShippingDistrict,
			ShippingWard:     input.ShippingWard,
			ShippingPhone:    input.ShippingPhone,
			ShippingFee:      shippingFee,
			PaymentMethod:    paymentMethod,
			PaymentStatus:    entity.PaymentStatusPending,
			Notes:            input.Notes,
			DiscountAmount:   discountAmount,
			FinalTotal:       totalPrice.Add(shippingFee).Sub(discountAmount),
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, detail := range details {
			detail.OrderID = order.ID
		}
		if err := orderRepo.CreateDetails(ctx, details); err != nil {
			return errors.Wrap(err, "failed to create order details")
		}

		if err := cartRepo.DeleteItemsByCartID(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		orderID = order.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation failed", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Order created", slog.Int64("userID", userID), slog.Int64("orderID", orderID))

	return srv.loadOrder(ctx, orderID)
}

// GetUserOrders lists the user's orders, newest first.
func (srv *orderService) GetUserOrders(ctx context.Context, userID int64) ([]*usecase.OrderView, error) {
	orders, err := srv.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return mapOrders(orders), nil
}

// GetUserOrder returns one of the user's orders, rejecting orders that belong
// to someone else.
func (srv *orderService) GetUserOrder(ctx context.Context, userID, orderID int64) (*usecase.OrderView, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		srv.log(ctx).Warn("Order ownership violation",
			slog.Int64("userID", userID), slog.Int64("orderID", orderID))

		return nil, domainerrors.ErrForbidden.WrapMessage("order does not belong to user")
	}

	return usecase.NewOrderView(order), nil
}

// GetAllOrders lists every order, newest first.
func (srv *orderService) GetAllOrders(ctx context.Context) ([]*usecase.OrderView, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return mapOrders(orders), nil
}

// GetOrdersByStatus lists orders in one fulfillment status.
func (srv *orderService) GetOrdersByStatus(ctx context.Context, status string) ([]*usecase.OrderView, error) {
	parsed, err := entity.ParseOrderStatus(status)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	orders, err := srv.orderRepo.FindByStatus(ctx, parsed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by status")
	}

	return mapOrders(orders), nil
}

// UpdateOrderStatus sets the order's fulfillment status. Any known status may
// be set from any other. Completing a COD order whose payment is still pending
// marks it paid and stamps the paid-at time.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID int64, input *usecase.UpdateOrderStatusInput) (*usecase.OrderView, error) {
	status, err := entity.ParseOrderStatus(input.Status)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if input.Notes != nil {
		order.Notes = *input.Notes
	}

	if status == entity.OrderStatusCompleted &&
		order.PaymentMethod == entity.PaymentMethodCOD &&
		order.PaymentStatus == entity.PaymentStatusPending {
		now := time.Now()
		order.PaymentStatus = entity.PaymentStatusPaid
		order.PaidAt = &now
		srv.log(ctx).Info("COD payment confirmed on completion", slog.Int64("orderID", orderID))
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	return usecase.NewOrderView(order), nil
}

// findOrder retrieves an order, translating the repository error.
func (srv *orderService) findOrder(ctx context.Context, orderID int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// loadOrder retrieves an order and maps it for the response.
func (srv *orderService) loadOrder(ctx context.Context, orderID int64) (*usecase.OrderView, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return usecase.NewOrderView(order), nil
}

func mapOrders(orders []*entity.Order) []*usecase.OrderView {
	views := make([]*usecase.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, usecase.NewOrderView(order))
	}

	return views
}
