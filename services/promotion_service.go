package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flowermarket-backend/entity"
)

const defaultPromotionWindow = 7 * 24 * time.Hour

type PromotionService struct {
	DB     *gorm.DB
	Stores StoreResolver
}

func NewPromotionService(db *gorm.DB, stores StoreResolver) *PromotionService {
	return &PromotionService{DB: db, Stores: stores}
}

// VendorPromotion is the listing projection with the product name joined in.
type VendorPromotion struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Code            string    `json:"code"`
	DiscountPercent float64   `json:"discountPercent"`
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	UsageCount      int       `json:"usageCount"`
	UsageLimit      int       `json:"usageLimit"`
	ProductID       uint      `json:"productId"`
	ProductName     string    `json:"productName"`
}

// ListForVendor returns promotions on the caller's store products, the ones
// ending last first.
func (s *PromotionService) ListForVendor(vendorID uint) ([]VendorPromotion, error) {
	store, err := s.Stores.StoreFor(vendorID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return []VendorPromotion{}, nil
	}

	var rows []VendorPromotion
	err = s.DB.Table("promotions AS pm").
		Select("pm.id, pm.title, pm.code, pm.discount_percent, pm.start_at, pm.end_at, "+
			"pm.usage_count, pm.usage_limit, pm.product_id, p.name AS product_name").
		Joins("JOIN products p ON p.id = pm.product_id").
		Where("p.store_id = ?", store.ID).
		Order("pm.end_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []VendorPromotion{}
	}
	return rows, nil
}

type CreatePromotionInput struct {
	ProductID       uint
	Title           string
	Description     string
	Code            string
	DiscountPercent float64
	StartAt         time.Time
	EndAt           time.Time
	UsageLimit      int
}

// Create adds a promotion to one of the caller's products. Blank code gets
// an auto-generated token, zero dates default to now / now+7d.
func (s *PromotionService) Create(vendorID uint, in CreatePromotionInput) (*entity.Promotion, error) {
	store, err := s.Stores.StoreFor(vendorID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrNoStore
	}

	var owned int64
	err = s.DB.Model(&entity.Product{}).
		Where("id = ? AND store_id = ?", in.ProductID, store.ID).
		Count(&owned).Error
	if err != nil {
		return nil, err
	}
	if owned == 0 {
		return nil, ErrForeignProduct
	}

	title := in.Title
	if title == "" {
		title = "Promotion"
	}
	code := strings.TrimSpace(in.Code)
	if code == "" {
		code = GenerateCode()
	}
	startAt := in.StartAt
	if startAt.IsZero() {
		startAt = time.Now()
	}
	endAt := in.EndAt
	if endAt.IsZero() {
		endAt = time.Now().Add(defaultPromotionWindow)
	}

	promo := &entity.Promotion{
		Title:           title,
		Description:     in.Description,
		Code:            code,
		DiscountPercent: in.DiscountPercent,
		StartAt:         startAt,
		EndAt:           endAt,
		UsageLimit:      in.UsageLimit,
		ProductID:       in.ProductID,
	}
	if err := s.DB.Create(promo).Error; err != nil {
		return nil, err
	}
	return promo, nil
}

type UpdatePromotionInput struct {
	Title           string
	Description     string
	DiscountPercent float64
	StartAt         time.Time
	EndAt           time.Time
}

// Update overwrites the mutable fields of an owned promotion. Code and
// product binding are immutable after creation; zero-valued dates keep the
// stored ones.
func (s *PromotionService) Update(vendorID, promoID uint, in UpdatePromotionInput) (*entity.Promotion, error) {
	store, err := s.Stores.StoreFor(vendorID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrNoStore
	}

	promo, err := s.findOwned(promoID, store.ID)
	if err != nil {
		return nil, err
	}

	promo.Title = in.Title
	promo.Description = in.Description
	promo.DiscountPercent = in.DiscountPercent
	if !in.StartAt.IsZero() {
		promo.StartAt = in.StartAt
	}
	if !in.EndAt.IsZero() {
		promo.EndAt = in.EndAt
	}

	if err := s.DB.Save(promo).Error; err != nil {
		return nil, err
	}
	return promo, nil
}

// Delete removes an owned promotion permanently.
func (s *PromotionService) Delete(vendorID, promoID uint) error {
	store, err := s.Stores.StoreFor(vendorID)
	if err != nil {
		return err
	}
	if store == nil {
		return ErrNoStore
	}

	promo, err := s.findOwned(promoID, store.ID)
	if err != nil {
		return err
	}
	return s.DB.Unscoped().Delete(promo).Error
}

// findOwned loads a promotion only when its product belongs to the store.
func (s *PromotionService) findOwned(promoID, storeID uint) (*entity.Promotion, error) {
	var promo entity.Promotion
	err := s.DB.
		Joins("JOIN products p ON p.id = promotions.product_id").
		Where("promotions.id = ? AND p.store_id = ?", promoID, storeID).
		First(&promo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

// GenerateCode produces an 8-character uppercase promotion code.
func GenerateCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:8])
}
