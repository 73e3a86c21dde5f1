package entity

import (
	"gorm.io/gorm"
)

// User is a customer account.
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`

	Addresses []AddressBook  `json:"-"`
	CartLines []ShoppingCart `json:"-"`
	Orders    []Order        `json:"-"`
}
