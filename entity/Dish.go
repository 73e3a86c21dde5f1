package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex"`
	Price       int64  `json:"price"` // cents
	Image       string `json:"image"`
	Description string `json:"description"`
	Status      int    `json:"status"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only on detail

	// ordered flavor-option groups, replaced wholesale on edit
	Flavors []DishFlavor `json:"flavors" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
