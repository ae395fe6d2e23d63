package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// preload only when needed
	Store   *Store   `gorm:"foreignKey:VendorID" json:"-"`
	Orders  []Order  `json:"-"`
	Reviews []Review `json:"-"`
}
