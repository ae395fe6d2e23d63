package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`

	StoreID uint  `json:"storeId"`
	Store   Store `json:"-"`

	Promotions []Promotion `json:"-"`
	Reviews    []Review    `json:"-"`
}
