// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart, lazily creating an empty one on first
// access.
func (srv *cartService) GetCart(ctx context.Context, userID int64) (*usecase.CartView, error) {
	cart, err := srv.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	return usecase.NewCartView(cart), nil
}

// AddToCart adds an active product to the cart, incrementing the quantity of
// an existing line instead of inserting a duplicate (cart, product) row.
func (srv *cartService) AddToCart(ctx context.Context, userID int64, input *usecase.AddToCartInput) (*usecase.CartView, error) {
	cart, err := srv.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Find-or-increment runs in one transaction so two concurrent adds of the
	// same product cannot both take the insert path.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindActiveByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("add to cart failed")
			}

			return errors.Wrap(err, "failed to find product")
		}

		existing, err := cartRepo.FindItem(ctx, cart.ID, product.ID)
		if err == nil {
			// The increment happens in the database, not on the loaded row,
			// so a concurrent add of the same product cannot overwrite it.
			return errors.Wrap(cartRepo.IncrementItemQuantity(ctx, existing.ID, input.Quantity),
				"failed to increment cart item")
		}
		if !errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(err, "failed to find cart item")
		}

		newItem := &entity.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  input.Quantity,
		}

		return errors.Wrap(cartRepo.CreateItem(ctx, newItem), "failed to create cart item")
	})
	if err != nil {
		srv.log(ctx).Warn("Add to cart failed", slog.Int64("userID", userID),
			slog.Int64("productID", input.ProductID), slog.Any("error", err))

		return nil, err
	}

	return srv.reloadCart(ctx, userID)
}

// UpdateItem sets the quantity of a cart line after checking ownership.
func (srv *cartService) UpdateItem(ctx context.Context, userID, itemID int64, input *usecase.UpdateCartItemInput) (*usecase.CartView, error) {
	item, err := srv.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	item.Quantity = input.Quantity
	if err := srv.cartRepo.UpdateItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return srv.reloadCart(ctx, userID)
}

// RemoveItem deletes a cart line after checking ownership.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID int64) (*usecase.CartView, error) {
	item, err := srv.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.DeleteItem(ctx, item.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete cart item")
	}

	return srv.reloadCart(ctx, userID)
}

// ClearCart deletes every line of the user's cart. The cart row persists.
func (srv *cartService) ClearCart(ctx context.Context, userID int64) error {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrCartNotFound.WrapMessage("clear cart failed")
		}

		return errors.Wrap(err, "failed to find cart")
	}

	if err := srv.cartRepo.DeleteItemsByCartID(ctx, cart.ID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}
	srv.log(ctx).Debug("Cart cleared", slog.Int64("userID", userID), slog.Int64("cartID", cart.ID))

	return nil
}

// getOrCreateCart loads the user's cart, creating an empty one when absent.
func (srv *cartService) getOrCreateCart(ctx context.Context, userID int64) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	newCart := &entity.Cart{UserID: userID}
	if err := srv.cartRepo.Create(ctx, newCart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}
	srv.log(ctx).Debug("Created cart on first access", slog.Int64("userID", userID))

	return newCart, nil
}

// ownedItem loads the user's cart and a cart item, enforcing that the item
// belongs to that cart.
func (srv *cartService) ownedItem(ctx context.Context, userID, itemID int64) (*entity.CartItem, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound.WrapMessage("cart item lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	item, err := srv.cartRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("cart item not found")
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	if item.CartID != cart.ID {
		srv.log(ctx).Warn("Cart item ownership violation",
			slog.Int64("userID", userID), slog.Int64("itemID", itemID))

		return nil, domainerrors.ErrForbidden.WrapMessage("cart item does not belong to user")
	}

	return item, nil
}

// reloadCart re-reads the cart and maps it for the response.
func (srv *cartService) reloadCart(ctx context.Context, userID int64) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload cart")
	}

	return usecase.NewCartView(cart), nil
}
