package entity

import (
	"gorm.io/gorm"
)

type Setmeal struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex"`
	Price       int64  `json:"price"` // cents
	Image       string `json:"image"`
	Description string `json:"description"`
	Status      int    `json:"status"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	// bill of materials, owned by the setmeal, replaced wholesale on edit
	Dishes []SetmealDish `json:"setmealDishes" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
