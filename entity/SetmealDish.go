package entity

import (
	"gorm.io/gorm"
)

// SetmealDish records how many copies of a dish belong to a setmeal.
// Name and Price are display snapshots of the member dish.
type SetmealDish struct {
	gorm.Model
	SetmealID uint   `json:"setmealId"`
	DishID    uint   `json:"dishId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Copies    int    `json:"copies"`
}
