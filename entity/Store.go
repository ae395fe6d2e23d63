package entity

import (
	"gorm.io/gorm"
)

// Store is a vendor's selling entity. Each vendor owns at most one.
type Store struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`

	VendorID uint `gorm:"uniqueIndex" json:"vendorId"`
	Vendor   User `json:"-"`

	Products []Product `json:"-"`
}
