package postgres

import (
	"storefront/internal/domain/entity"
	"storefront/internal/infra/persistence/model"
)

// Mapping between persistence models and domain entities. Roles decode
// leniently; order and payment statuses are decoded by the order repository
// because a bad stored value there must surface as an error.

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.DecodeRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromCategoryDomain(category *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func toBrandDomain(m *model.BrandModel) *entity.Brand {
	return &entity.Brand{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromBrandDomain(brand *entity.Brand) *model.BrandModel {
	return &model.BrandModel{
		ID:          brand.ID,
		Name:        brand.Name,
		Description: brand.Description,
		CreatedAt:   brand.CreatedAt,
		UpdatedAt:   brand.UpdatedAt,
	}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:            m.ID,
		Name:          m.Name,
		Price:         m.Price,
		DiscountPrice: m.DiscountPrice,
		Description:   m.Description,
		Image:         m.Image,
		ImageKey:      m.ImageKey,
		StockQuantity: m.StockQuantity,
		IsActive:      m.IsActive,
		CategoryID:    m.CategoryID,
		BrandID:       m.BrandID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Category != nil {
		product.Category = toCategoryDomain(m.Category)
	}
	if m.Brand != nil {
		product.Brand = toBrandDomain(m.Brand)
	}

	return product
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:            product.ID,
		Name:          product.Name,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		Description:   product.Description,
		Image:         product.Image,
		ImageKey:      product.ImageKey,
		StockQuantity: product.StockQuantity,
		IsActive:      product.IsActive,
		CategoryID:    product.CategoryID,
		BrandID:       product.BrandID,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

func toVariantDomain(m *model.ProductVariantModel) *entity.ProductVariant {
	return &entity.ProductVariant{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Name:          m.Name,
		Price:         m.Price,
		StockQuantity: m.StockQuantity,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromVariantDomain(variant *entity.ProductVariant) *model.ProductVariantModel {
	return &model.ProductVariantModel{
		ID:            variant.ID,
		ProductID:     variant.ProductID,
		Name:          variant.Name,
		Price:         variant.Price,
		StockQuantity: variant.StockQuantity,
		CreatedAt:     variant.CreatedAt,
		UpdatedAt:     variant.UpdatedAt,
	}
}

func toCartDomain(m *model.CartModel) *entity.Cart {
	cart := &entity.Cart{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for _, item := range m.Items {
		cart.Items = append(cart.Items, toCartItemDomain(item))
	}

	return cart
}

func toCartItemDomain(m *model.CartItemModel) *entity.CartItem {
	item := &entity.CartItem{
		ID:        m.ID,
		CartID:    m.CartID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Product != nil {
		item.Product = toProductDomain(m.Product)
	}

	return item
}

func toOrderDomain(m *model.OrderModel) (*entity.Order, error) {
	status, err := entity.ParseOrderStatus(m.Status)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := entity.ParsePaymentMethod(m.PaymentMethod)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := entity.ParsePaymentStatus(m.PaymentStatus)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:               m.ID,
		UserID:           m.UserID,
		UserName:         m.UserName,
		TotalPrice:       m.TotalPrice,
		Status:           status,
		ShippingAddress:  m.ShippingAddress,
		ShippingCity:     m.ShippingCity,
		ShippingDistrict: m.ShippingDistrict,
		ShippingWard:     m.ShippingWard,
		ShippingPhone:    m.ShippingPhone,
		ShippingFee:      m.ShippingFee,
		PaymentMethod:    paymentMethod,
		PaymentStatus:    paymentStatus,
		PaidAt:           m.PaidAt,
		Notes:            m.Notes,
		DiscountAmount:   m.DiscountAmount,
		FinalTotal:       m.FinalTotal,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	for _, detail := range m.Details {
		order.Details = append(order.Details, toOrderDetailDomain(detail))
	}

	return order, nil
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:               order.ID,
		UserID:           order.UserID,
		UserName:         order.UserName,
		TotalPrice:       order.TotalPrice,
		Status:           string(order.Status),
		ShippingAddress:  order.ShippingAddress,
		ShippingCity:     order.ShippingCity,
		ShippingDistrict: order.ShippingDistrict,
		ShippingWard:     order.ShippingWard,
		ShippingPhone:    order.ShippingPhone,
		ShippingFee:      order.ShippingFee,
		PaymentMethod:    string(order.PaymentMethod),
		PaymentStatus:    string(order.PaymentStatus),
		PaidAt:           order.PaidAt,
		Notes:            order.Notes,
		DiscountAmount:   order.DiscountAmount,
		FinalTotal:       order.FinalTotal,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}

func toOrderDetailDomain(m *model.OrderDetailModel) *entity.OrderDetail {
	return &entity.OrderDetail{
		ID:           m.ID,
		OrderID:      m.OrderID,
		ProductID:    m.ProductID,
		ProductName:  m.ProductName,
		ProductImage: m.ProductImage,
		Quantity:     m.Quantity,
		Price:        m.Price,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromOrderDetailDomain(detail *entity.OrderDetail) *model.OrderDetailModel {
	return &model.OrderDetailModel{
		ID:           detail.ID,
		OrderID:      detail.OrderID,
		ProductID:    detail.ProductID,
		ProductName:  detail.ProductName,
		ProductImage: detail.ProductImage,
		Quantity:     detail.Quantity,
		Price:        detail.Price,
		CreatedAt:    detail.CreatedAt,
		UpdatedAt:    detail.UpdatedAt,
	}
}
