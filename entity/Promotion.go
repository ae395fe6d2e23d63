package entity

import (
	"time"

	"gorm.io/gorm"
)

type Promotion struct {
	gorm.Model
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Code            string    `gorm:"size:50;uniqueIndex" json:"code"`
	DiscountPercent float64   `json:"discountPercent"`
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	UsageCount      int       `json:"usageCount"`
	UsageLimit      int       `json:"usageLimit"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`
}
