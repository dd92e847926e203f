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

// categoryRepository implements the domain's CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).First(&categoryM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoriesM []*model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&categoriesM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoriesM))
	for _, categoryM := range categoriesM {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("category name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Save(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("category name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update category")
	}

	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.CategoryModel{}, id).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("category is referenced by products")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete category")
	}

	return nil
}

// brandRepository implements the domain's BrandRepository interface using GORM.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

func (repo *brandRepository) FindByID(ctx context.Context, id int64) (*entity.Brand, error) {
	var brandM model.BrandModel
	if err := repo.db.WithContext(ctx).First(&brandM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by id")
	}

	return toBrandDomain(&brandM), nil
}

func (repo *brandRepository) List(ctx context.Context) ([]*entity.Brand, error) {
	var brandsM []*model.BrandModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&brandsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(brandsM))
	for _, brandM := range brandsM {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("brand name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	brand.ID = brandM.ID
	brand.CreatedAt = brandM.CreatedAt
	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

func (repo *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Save(brandM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("brand name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update brand")
	}

	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

func (repo *brandRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.BrandModel{}, id).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("brand is referenced by products")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete brand")
	}

	return nil
}

// variantRepository implements the domain's VariantRepository interface using GORM.
type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository is the constructor for variantRepository.
func NewVariantRepository(db *gorm.DB) repository.VariantRepository {
	return &variantRepository{db: db}
}

func (repo *variantRepository) FindByID(ctx context.Context, id int64) (*entity.ProductVariant, error) {
	var variantM model.ProductVariantModel
	if err := repo.db.WithContext(ctx).First(&variantM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find product variant by id")
	}

	return toVariantDomain(&variantM), nil
}

func (repo *variantRepository) ListByProductID(ctx context.Context, productID int64) ([]*entity.ProductVariant, error) {
	var variantsM []*model.ProductVariantModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id").
		Find(&variantsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product variants")
	}

	variants := make([]*entity.ProductVariant, 0, len(variantsM))
	for _, variantM := range variantsM {
		variants = append(variants, toVariantDomain(variantM))
	}

	return variants, nil
}

func (repo *variantRepository) Create(ctx context.Context, variant *entity.ProductVariant) error {
	variantM := fromVariantDomain(variant)

	if err := repo.db.WithContext(ctx).Create(variantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product variant")
	}

	variant.ID = variantM.ID
	variant.CreatedAt = variantM.CreatedAt
	variant.UpdatedAt = variantM.UpdatedAt

	return nil
}

func (repo *variantRepository) Update(ctx context.Context, variant *entity.ProductVariant) error {
	variantM := fromVariantDomain(variant)

	if err := repo.db.WithContext(ctx).Save(variantM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product variant")
	}

	variant.UpdatedAt = variantM.UpdatedAt

	return nil
}

func (repo *variantRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.ProductVariantModel{}, id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product variant")
	}

	return nil
}
