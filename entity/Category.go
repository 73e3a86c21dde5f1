package entity

import (
	"gorm.io/gorm"
)

const (
	CategoryTypeDish    = 1
	CategoryTypeSetmeal = 2
)

type Category struct {
	gorm.Model
	Type   int    `json:"type"` // 1 dish category, 2 setmeal category
	Name   string `json:"name" gorm:"uniqueIndex"`
	Sort   int    `json:"sort"`
	Status int    `json:"status"`

	Dishes   []Dish    `json:"-"`
	Setmeals []Setmeal `json:"-"`
}
