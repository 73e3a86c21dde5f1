package entity

import (
	"gorm.io/gorm"
)

// OrderDetail is the immutable snapshot of a cart line at submission time.
// Rows are written once and never updated afterwards.
type OrderDetail struct {
	gorm.Model
	OrderID uint  `json:"orderId" gorm:"index"`
	Order   Order `json:"-"`

	DishID    *uint `json:"dishId"`
	SetmealID *uint `json:"setmealId"`

	Name       string `json:"name"`
	Image      string `json:"image"`
	DishFlavor string `json:"dishFlavor"`
	Amount     int64  `json:"amount"` // unit price, cents
	Number     int    `json:"number"`
}
