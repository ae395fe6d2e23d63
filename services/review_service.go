package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"flowermarket-backend/entity"
)

type ReviewService struct {
	DB     *gorm.DB
	Stores StoreResolver
}

func NewReviewService(db *gorm.DB, stores StoreResolver) *ReviewService {
	return &ReviewService{DB: db, Stores: stores}
}

// VendorReview is the store-scoped listing projection.
type VendorReview struct {
	ID            uint      `json:"id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
	ProductName   string    `json:"productName"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
}

// ListForVendor returns reviews on the caller's store products, newest first.
func (s *ReviewService) ListForVendor(vendorID uint) ([]VendorReview, error) {
	store, err := s.Stores.StoreFor(vendorID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return []VendorReview{}, nil
	}

	var rows []VendorReview
	err = s.DB.Table("reviews AS r").
		Select("r.id, r.rating, r.comment, r.created_at, p.name AS product_name, "+
			"u.full_name AS customer_name, u.email AS customer_email").
		Joins("JOIN products p ON p.id = r.product_id").
		Joins("JOIN users u ON u.id = r.user_id").
		Where("p.store_id = ?", store.ID).
		Order("r.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []VendorReview{}
	}
	return rows, nil
}

// ListForProduct is the public per-product listing.
func (s *ReviewService) ListForProduct(productID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := s.DB.Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

type ReviewInput struct {
	Rating  int
	Comment string
}

// Create adds a review by the acting user on an existing product.
func (s *ReviewService) Create(userID, productID uint, in ReviewInput) (*entity.Review, error) {
	var count int64
	if err := s.DB.Model(&entity.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrProductNotFound
	}

	review := &entity.Review{
		Rating:    in.Rating,
		Comment:   in.Comment,
		ProductID: productID,
		UserID:    userID,
	}
	if err := s.DB.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// Update mutates a review by id. Only existence is checked, matching the
// upstream access policy (see DESIGN.md).
func (s *ReviewService) Update(reviewID uint, in ReviewInput) (*entity.Review, error) {
	var review entity.Review
	err := s.DB.First(&review, reviewID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	review.Rating = in.Rating
	review.Comment = in.Comment
	if err := s.DB.Save(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Delete removes a review by id, existence-checked only.
func (s *ReviewService) Delete(reviewID uint) error {
	var review entity.Review
	err := s.DB.First(&review, reviewID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return s.DB.Unscoped().Delete(&review).Error
}
