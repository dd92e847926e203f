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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	variantRepo  repository.VariantRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	BrandRepo    repository.BrandRepository
	VariantRepo  repository.VariantRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		brandRepo:    params.BrandRepo,
		variantRepo:  params.VariantRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Public browsing ---

// ListProducts returns active products matching the filter, newest first.
func (srv *catalogService) ListProducts(ctx context.Context, filter usecase.ListProductsFilter) ([]*usecase.ProductView, error) {
	products, err := srv.productRepo.ListActive(ctx, repository.ProductFilter{
		CategoryID: filter.CategoryID,
		BrandID:    filter.BrandID,
		Search:     filter.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	return mapProducts(products), nil
}

// GetProduct returns one product regardless of its active flag. Hiding
// inactive products from detail pages is left to the storefront client.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*usecase.ProductView, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewProductView(product), nil
}

// ListCategories returns every category.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListBrands returns every brand.
func (srv *catalogService) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	brands, err := srv.brandRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// ListVariants returns the variants of a product.
func (srv *catalogService) ListVariants(ctx context.Context, productID int64) ([]*entity.ProductVariant, error) {
	if _, err := srv.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	variants, err := srv.variantRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product variants")
	}

	return variants, nil
}

// --- Admin product management ---

// ListAllProducts returns every product including inactive ones.
func (srv *catalogService) ListAllProducts(ctx context.Context) ([]*usecase.ProductView, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return mapProducts(products), nil
}

// CreateProduct adds a catalog entry. New products default to active unless
// the input says otherwise.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*usecase.ProductView, error) {
	if err := srv.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	product := &entity.Product{
		Name:          input.Name,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Description:   input.Description,
		Image:         input.Image,
		ImageKey:      input.ImageKey,
		StockQuantity: input.StockQuantity,
		IsActive:      isActive,
		CategoryID:    input.CategoryID,
		BrandID:       input.BrandID,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.String("name", product.Name))

	return srv.GetProduct(ctx, product.ID)
}

// UpdateProduct overwrites a product's fields. A nil active flag leaves the
// current flag unchanged.
func (srv *catalogService) UpdateProduct(ctx context.Context, id int64, input *usecase.ProductInput) (*usecase.ProductView, error) {
	product, err := srv.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := srv.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Price = input.Price
	product.DiscountPrice = input.DiscountPrice
	product.Description = input.Description
	if input.Image != "" {
		product.Image = input.Image
		product.ImageKey = input.ImageKey
	}
	product.StockQuantity = input.StockQuantity
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.CategoryID = input.CategoryID
	product.BrandID = input.BrandID

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return srv.GetProduct(ctx, id)
}

// DeleteProduct removes a product from the catalog. Historical order details
// keep their own copy of the name, image and price.
func (srv *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := srv.findProduct(ctx, id); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))

	return nil
}

// --- Admin category management ---

func (srv *catalogService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{Name: input.Name, Description: input.Description}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, id int64, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("category not found")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	category.Name = input.Name
	category.Description = input.Description
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

func (srv *catalogService) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := srv.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("category not found")
		}

		return errors.Wrap(err, "failed to find category")
	}

	return errors.Wrap(srv.categoryRepo.Delete(ctx, id), "failed to delete category")
}

// --- Admin brand management ---

func (srv *catalogService) CreateBrand(ctx context.Context, input *usecase.BrandInput) (*entity.Brand, error) {
	brand := &entity.Brand{Name: input.Name, Description: input.Description}
	if err := srv.brandRepo.Create(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to create brand")
	}

	return brand, nil
}

func (srv *catalogService) UpdateBrand(ctx context.Context, id int64, input *usecase.BrandInput) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("brand not found")
		}

		return nil, errors.Wrap(err, "failed to find brand")
	}

	brand.Name = input.Name
	brand.Description = input.Description
	if err := srv.brandRepo.Update(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to update brand")
	}

	return brand, nil
}

func (srv *catalogService) DeleteBrand(ctx context.Context, id int64) error {
	if _, err := srv.brandRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("brand not found")
		}

		return errors.Wrap(err, "failed to find brand")
	}

	return errors.Wrap(srv.brandRepo.Delete(ctx, id), "failed to delete brand")
}

// --- Admin variant management ---

func (srv *catalogService) CreateVariant(ctx context.Context, productID int64, input *usecase.VariantInput) (*entity.ProductVariant, error) {
	if _, err := srv.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	variant := &entity.ProductVariant{
		ProductID:     productID,
		Name:          input.Name,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
	}
	if err := srv.variantRepo.Create(ctx, variant); err != nil {
		return nil, errors.Wrap(err, "failed to create product variant")
	}

	return variant, nil
}

func (srv *catalogService) UpdateVariant(ctx context.Context, id int64, input *usecase.VariantInput) (*entity.ProductVariant, error) {
	variant, err := srv.variantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVariantNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("product variant not found")
		}

		return nil, errors.Wrap(err, "failed to find product variant")
	}

	variant.Name = input.Name
	variant.Price = input.Price
	variant.StockQuantity = input.StockQuantity
	if err := srv.variantRepo.Update(ctx, variant); err != nil {
		return nil, errors.Wrap(err, "failed to update product variant")
	}

	return variant, nil
}

func (srv *catalogService) DeleteVariant(ctx context.Context, id int64) error {
	if _, err := srv.variantRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVariantNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("product variant not found")
		}

		return errors.Wrap(err, "failed to find product variant")
	}

	return errors.Wrap(srv.variantRepo.Delete(ctx, id), "failed to delete product variant")
}

// --- helpers ---

// findProduct retrieves a product, translating the repository error.
func (srv *catalogService) findProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// checkReferences verifies the category and brand a product points at exist.
func (srv *catalogService) checkReferences(ctx context.Context, input *usecase.ProductInput) error {
	if input.CategoryID != nil {
		if _, err := srv.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrValidationFailed.WrapMessage("category does not exist")
			}

			return errors.Wrap(err, "failed to find category")
		}
	}
	if input.BrandID != nil {
		if _, err := srv.brandRepo.FindByID(ctx, *input.BrandID); err != nil {
			if errors.Is(err, repository.ErrBrandNotFound) {
				return domainerrors.ErrValidationFailed.WrapMessage("brand does not exist")
			}

			return errors.Wrap(err, "failed to find brand")
		}
	}

	return nil
}

func mapProducts(products []*entity.Product) []*usecase.ProductView {
	views := make([]*usecase.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, usecase.NewProductView(product))
	}

	return views
}
