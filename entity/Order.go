package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Number string      `json:"number" gorm:"uniqueIndex"`
	Status OrderStatus `json:"status"`

	UserID uint `json:"userId" gorm:"index"`
	User   User `json:"-"`

	AddressBookID uint   `json:"addressBookId"`
	Consignee     string `json:"consignee"` // address snapshot
	Phone         string `json:"phone"`

	Amount    int64     `json:"amount"` // fixed at submission
	PayStatus PayStatus `json:"payStatus"`
	Remark    string    `json:"remark"`

	OrderTime    time.Time  `json:"orderTime"`
	CheckoutTime *time.Time `json:"checkoutTime,omitempty"`
	CancelReason string     `json:"cancelReason"`
	CancelTime   *time.Time `json:"cancelTime,omitempty"`

	// preload only on detail
	OrderDetails []OrderDetail `json:"-"`
}
