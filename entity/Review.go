package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}
