package entity

import (
	"gorm.io/gorm"
)

// ShoppingCart is one consolidated cart line. Exactly one of DishID and
// SetmealID is set; together with UserID it is the line identity. The
// chosen DishFlavor string is a display snapshot only and is deliberately
// not part of the identity, so two differently-customized additions of the
// same dish merge into one line.
type ShoppingCart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"index"`
	User   User `json:"-"`

	DishID    *uint `json:"dishId"`
	SetmealID *uint `json:"setmealId"`

	Name       string `json:"name"`
	Image      string `json:"image"`
	DishFlavor string `json:"dishFlavor"`
	Amount     int64  `json:"amount"` // unit price snapshot, cents
	Number     int    `json:"number"` // always >= 1; 0 means the row is deleted
}
