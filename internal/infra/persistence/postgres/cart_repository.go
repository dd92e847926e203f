package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain's CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByUserID retrieves the user's cart with items and products preloaded.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items.Product.Category").
		Preload("Items.Product.Brand").
		Preload("Items.Product").
		Preload("Items").
		Where("user_id = ?", userID).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user id")
	}

	return toCartDomain(&cartM), nil
}

// Create persists a new empty cart for the user.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM := &model.CartModel{UserID: cart.UserID}
	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Lost a race against another request creating the same cart.
			return domainerrors.ErrConflict.WrapMessage("cart already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// LockByUserID acquires a FOR UPDATE row lock on the user's cart. It only
// makes sense inside a TransactionManager Execute callback; outside one the
// lock is released immediately.
func (repo *cartRepository) LockByUserID(ctx context.Context, userID int64) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to lock cart")
	}

	return toCartDomain(&cartM), nil
}

// FindItems retrieves all items of a cart with products preloaded.
func (repo *cartRepository) FindItems(ctx context.Context, cartID int64) ([]*entity.CartItem, error) {
	var itemsM []*model.CartItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product.Category").
		Preload("Product.Brand").
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("id").
		Find(&itemsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart items")
	}

	items := make([]*entity.CartItem, 0, len(itemsM))
	for _, itemM := range itemsM {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// FindItem retrieves the item for a (cart, product) pair.
func (repo *cartRepository) FindItem(ctx context.Context, cartID, productID int64) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	err := repo.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(&itemM), nil
}

// FindItemByID retrieves a cart item by its own ID.
func (repo *cartRepository) FindItemByID(ctx context.Context, itemID int64) (*entity.CartItem, error) {
	var itemM model.CartItemModel
	if err := repo.db.WithContext(ctx).First(&itemM, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by id")
	}

	return toCartItemDomain(&itemM), nil
}

// CreateItem persists a new cart item.
func (repo *cartRepository) CreateItem(ctx context.Context, item *entity.CartItem) error {
	itemM := &model.CartItemModel{
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product already in cart")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// UpdateItem modifies an existing cart item's quantity.
func (repo *cartRepository) UpdateItem(ctx context.Context, item *entity.CartItem) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", item.ID).
		Update("quantity", item.Quantity).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart item")
	}

	return nil
}

// IncrementItemQuantity adds delta to the stored quantity in a single UPDATE
// so concurrent increments serialize on the row instead of overwriting each
// other.
func (repo *cartRepository) IncrementItemQuantity(ctx context.Context, itemID int64, delta int) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", itemID).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment cart item")
	}

	return nil
}

// DeleteItem removes a single cart item.
func (repo *cartRepository) DeleteItem(ctx context.Context, itemID int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.CartItemModel{}, itemID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart item")
	}

	return nil
}

// DeleteItemsByCartID removes all items of a cart. The cart row persists.
func (repo *cartRepository) DeleteItemsByCartID(ctx context.Context, cartID int64) error {
	err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart items")
	}

	return nil
}
