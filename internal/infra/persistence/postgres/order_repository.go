package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain's OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order row. Details are inserted separately through
// CreateDetails once the generated order ID is known.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Details").Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("order user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CreateDetails persists the order's line items in one insert.
func (repo *orderRepository) CreateDetails(ctx context.Context, details []*entity.OrderDetail) error {
	if len(details) == 0 {
		return nil
	}

	detailsM := make([]*model.OrderDetailModel, 0, len(details))
	for _, detail := range details {
		detailsM = append(detailsM, fromOrderDetailDomain(detail))
	}

	if err := repo.db.WithContext(ctx).Create(&detailsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order details")
	}

	for i, detailM := range detailsM {
		details[i].ID = detailM.ID
		details[i].CreatedAt = detailM.CreatedAt
		details[i].UpdatedAt = detailM.UpdatedAt
	}

	return nil
}

// FindByID retrieves an order with its details.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Details").
		First(&orderM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM)
}

// FindByUserID retrieves a user's orders with details, newest first.
func (repo *orderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error) {
	var ordersM []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Details").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ordersM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user id")
	}

	return mapOrderModels(ordersM)
}

// FindAll retrieves every order with details, newest first.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var ordersM []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Details").
		Order("created_at DESC").
		Find(&ordersM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return mapOrderModels(ordersM)
}

// FindByStatus retrieves all orders in the given status, newest first.
func (repo *orderRepository) FindByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	var ordersM []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Details").
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&ordersM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by status")
	}

	return mapOrderModels(ordersM)
}

// Update persists the mutable fields of an existing order. Monetary and
// shipping columns are never touched after creation.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Select("status", "payment_status", "paid_at", "notes").
		Updates(map[string]any{
			"status":         string(order.Status),
			"payment_status": string(order.PaymentStatus),
			"paid_at":        order.PaidAt,
			"notes":          order.Notes,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}

	return nil
}

func mapOrderModels(ordersM []*model.OrderModel) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(ordersM))
	for _, orderM := range ordersM {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}
