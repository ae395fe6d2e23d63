package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// free-text status ("pending", "confirmed", ...)
	Status     string  `gorm:"not null;default:pending" json:"status"`
	TotalPrice float64 `gorm:"type:decimal(10,2)" json:"totalPrice"`
	Quantity   int     `json:"quantity"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	// denormalised from the product's store, used for vendor scoping
	StoreID uint `json:"storeId"`
}
