package entity

import (
	"gorm.io/gorm"
)

// DishFlavor is one flavor-option group of a dish, e.g. name "辣度" with
// value `["不辣","微辣","中辣"]` stored as a JSON array string.
type DishFlavor struct {
	gorm.Model
	DishID uint   `json:"dishId"`
	Name   string `json:"name"`
	Value  string `json:"value"`
}
