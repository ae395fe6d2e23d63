package services

import (
	"errors"

	"gorm.io/gorm"

	"flowermarket-backend/entity"
)

// StoreResolver maps a vendor id to their owned store, or nil when the
// vendor has not opened one yet. All store-scoped services depend on it.
type StoreResolver interface {
	StoreFor(vendorID uint) (*entity.Store, error)
}

type StoreService struct {
	DB *gorm.DB
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{DB: db}
}

// StoreFor returns (nil, nil) when the vendor owns no store.
func (s *StoreService) StoreFor(vendorID uint) (*entity.Store, error) {
	var store entity.Store
	err := s.DB.Where("vendor_id = ?", vendorID).First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

type UpsertStoreInput struct {
	Name        string
	Description string
	Address     string
}

// Upsert creates the vendor's store on first call, updates it afterwards.
func (s *StoreService) Upsert(vendorID uint, in UpsertStoreInput) (*entity.Store, error) {
	store, err := s.StoreFor(vendorID)
	if err != nil {
		return nil, err
	}

	if store == nil {
		store = &entity.Store{
			VendorID:    vendorID,
			Name:        in.Name,
			Description: in.Description,
			Address:     in.Address,
		}
		if err := s.DB.Create(store).Error; err != nil {
			return nil, err
		}
		return store, nil
	}

	store.Name = in.Name
	store.Description = in.Description
	store.Address = in.Address
	if err := s.DB.Save(store).Error; err != nil {
		return nil, err
	}
	return store, nil
}
