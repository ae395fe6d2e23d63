package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"flowermarket-backend/entity"
)

type ProductService struct {
	DB     *gorm.DB
	Stores StoreResolver
	Log    *zap.Logger
}

func NewProductService(db *gorm.DB, stores StoreResolver, log *zap.Logger) *ProductService {
	return &ProductService{DB: db, Stores: stores, Log: log}
}

// ListForVendor returns the caller's store products; empty without a store.
func (s *ProductService) ListForVendor(vendorID uint) ([]entity.Product, error) {
	store, err := s.Stores.StoreFor(vendorID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return []entity.Product{}, nil
	}

	var products []entity.Product
	if err := s.DB.Where("store_id = ?", store.ID).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListActive is the public catalogue.
func (s *ProductService) ListActive() ([]entity.Product, error) {
	var products []entity.Product
	if err := s.DB.Where("is_active = ?", true).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

type CreateProductInput struct {
	Name        string
	Price       float64
	Stock       int
	Category    string
	Description string
	ImageURL    string
}

func (s *ProductService) Create(vendorID uint, in CreateProductInput) (*entity.Product, error) {
	store, err := s.Stores.StoreFor(vendorID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		s.Log.Warn("product create without store", zap.Uint("vendorId", vendorID))
		return nil, ErrNoStore
	}

	product := &entity.Product{
		Name:        in.Name,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		IsActive:    true,
		StoreID:     store.ID,
	}
	if err := s.DB.Create(product).Error; err != nil {
		s.Log.Error("product create failed",
			zap.Uint("storeId", store.ID), zap.String("name", in.Name), zap.Error(err))
		return nil, err
	}

	s.Log.Info("product created",
		zap.Uint("productId", product.ID), zap.Uint("storeId", store.ID))
	return product, nil
}

type UpdateProductInput struct {
	Name        string
	Price       float64
	Stock       int
	Category    string
	Description string
	ImageURL    string
	IsActive    bool
}

// Update overwrites all mutable fields of an owned product.
func (s *ProductService) Update(vendorID, productID uint, in UpdateProductInput) (*entity.Product, error) {
	store, err := s.Stores.StoreFor(vendorID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrNoStore
	}

	var product entity.Product
	err = s.DB.Where("id = ? AND store_id = ?", productID, store.ID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Price = in.Price
	product.Stock = in.Stock
	product.Category = in.Category
	product.Description = in.Description
	product.ImageURL = in.ImageURL
	product.IsActive = in.IsActive

	if err := s.DB.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes an owned product permanently.
func (s *ProductService) Delete(vendorID, productID uint) error {
	store, err := s.Stores.StoreFor(vendorID)
	if err != nil {
		return err
	}
	if store == nil {
		return ErrNoStore
	}

	var product entity.Product
	err = s.DB.Where("id = ? AND store_id = ?", productID, store.ID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.DB.Unscoped().Delete(&product).Error
}
