package entity

import (
	"gorm.io/gorm"
)

// Employee is a merchant-side account (admin console login).
type Employee struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex"`
	Name     string `json:"name"`
	Password string `json:"-"`
	Phone    string `json:"phone"`
	Status   int    `json:"status"`
}
