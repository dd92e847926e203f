package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// CatalogHandler serves public catalog browsing and admin catalog management.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	logger         *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		logger:         logger,
	}
}

// ListProducts handles GET /products with optional categoryId, brandId and
// search query parameters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter := usecase.ListProductsFilter{
		Search: c.QueryParam("search"),
	}
	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid categoryId parameter")
		}
		filter.CategoryID = &id
	}
	if raw := c.QueryParam("brandId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid brandId parameter")
		}
		filter.BrandID = &id
	}

	products, err := h.catalogUsecase.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct handles GET /products/:id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.catalogUsecase.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// ListVariants handles GET /products/:id/variants.
func (h *CatalogHandler) ListVariants(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	variants, err := h.catalogUsecase.ListVariants(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, variants, "")
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUsecase.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// ListBrands handles GET /brands.
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.catalogUsecase.ListBrands(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brands, "")
}

// --- Admin product management ---

// ListAllProducts handles GET /admin/products, including inactive products.
func (h *CatalogHandler) ListAllProducts(c echo.Context) error {
	products, err := h.catalogUsecase.ListAllProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// CreateProduct handles POST /admin/products.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	input := new(usecase.ProductInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	product, err := h.catalogUsecase.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// UpdateProduct handles PUT /admin/products/:id.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.ProductInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	product, err := h.catalogUsecase.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.catalogUsecase.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// --- Admin category management ---

// CreateCategory handles POST /admin/categories.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	input := new(usecase.CategoryInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	category, err := h.catalogUsecase.CreateCategory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}

// UpdateCategory handles PUT /admin/categories/:id.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.CategoryInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	category, err := h.catalogUsecase.UpdateCategory(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated")
}

// DeleteCategory handles DELETE /admin/categories/:id.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.catalogUsecase.DeleteCategory(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted")
}

// --- Admin brand management ---

// CreateBrand handles POST /admin/brands.
func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	input := new(usecase.BrandInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	brand, err := h.catalogUsecase.CreateBrand(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, brand, "Brand created")
}

// UpdateBrand handles PUT /admin/brands/:id.
func (h *CatalogHandler) UpdateBrand(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.BrandInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	brand, err := h.catalogUsecase.UpdateBrand(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brand, "Brand updated")
}

// DeleteBrand handles DELETE /admin/brands/:id.
func (h *CatalogHandler) DeleteBrand(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.catalogUsecase.DeleteBrand(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Brand deleted")
}

// --- Admin variant management ---

// CreateVariant handles POST /admin/products/:id/variants.
func (h *CatalogHandler) CreateVariant(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.VariantInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	variant, err := h.catalogUsecase.CreateVariant(c.Request().Context(), productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, variant, "Variant created")
}

// UpdateVariant handles PUT /admin/variants/:id.
func (h *CatalogHandler) UpdateVariant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.VariantInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	variant, err := h.catalogUsecase.UpdateVariant(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, variant, "Variant updated")
}

// DeleteVariant handles DELETE /admin/variants/:id.
func (h *CatalogHandler) DeleteVariant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.catalogUsecase.DeleteVariant(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Variant deleted")
}
