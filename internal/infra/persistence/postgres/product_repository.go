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

// productRepository implements the domain's ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a product regardless of its active flag.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		First(&productM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindActiveByID retrieves a product only if it is active. Inactive products
// are indistinguishable from absent ones to callers.
func (repo *productRepository) FindActiveByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Where("id = ? AND is_active = ?", id, true).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find active product by id")
	}

	return toProductDomain(&productM), nil
}

// ListActive retrieves active products matching the filter, newest first.
func (repo *productRepository) ListActive(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Where("is_active = ?", true)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	var productsM []*model.ProductModel
	if err := query.Order("created_at DESC").Find(&productsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	return mapProductModels(productsM), nil
}

// List retrieves all products, newest first.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productsM []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Brand").
		Order("created_at DESC").
		Find(&productsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return mapProductModels(productsM), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product name already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category or brand reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product. Select("*") forces zero values and
// cleared pointers (e.g. removing a discount price) to be written.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productM.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(productM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product name already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category or brand reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// Delete removes a product.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product is referenced by carts or orders")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}

func mapProductModels(productsM []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productsM))
	for _, productM := range productsM {
		products = append(products, toProductDomain(productM))
	}

	return products
}
