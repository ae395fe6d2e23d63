package services

import (
	"gorm.io/gorm"

	"flowermarket-backend/entity"
)

type StatsService struct {
	DB     *gorm.DB
	Stores StoreResolver
}

func NewStatsService(db *gorm.DB, stores StoreResolver) *StatsService {
	return &StatsService{DB: db, Stores: stores}
}

type VendorStats struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalOrders   int64   `json:"totalOrders"`
	PendingOrders int64   `json:"pendingOrders"`
	TotalReviews  int64   `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// ForVendor aggregates over the caller's store. Vendors without a store get
// all-zero stats, never an error.
func (s *StatsService) ForVendor(vendorID uint) (*VendorStats, error) {
	store, err := s.Stores.StoreFor(vendorID)
	if err != nil {
		return nil, err
	}
	stats := &VendorStats{}
	if store == nil {
		return stats, nil
	}

	if err := s.DB.Model(&entity.Product{}).
		Where("store_id = ?", store.ID).
		Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	orders := s.DB.Model(&entity.Order{}).Where("store_id = ?", store.ID)
	if err := orders.Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Order{}).
		Where("store_id = ? AND status = ?", store.ID, "pending").
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Order{}).
		Where("store_id = ?", store.ID).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}

	reviews := s.DB.Table("reviews AS r").
		Joins("JOIN products p ON p.id = r.product_id").
		Where("p.store_id = ?", store.ID)
	if err := reviews.Count(&stats.TotalReviews).Error; err != nil {
		return nil, err
	}
	if stats.TotalReviews > 0 {
		if err := s.DB.Table("reviews AS r").
			Joins("JOIN products p ON p.id = r.product_id").
			Where("p.store_id = ?", store.ID).
			Select("AVG(r.rating)").
			Scan(&stats.AverageRating).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}
