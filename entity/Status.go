package entity

// Sale status shared by Dish and Setmeal.
const (
	StatusOffSale = 0
	StatusOnSale  = 1
)

// OrderStatus is the order lifecycle position. The ordinal order matters:
// user-side cancellation is allowed only while Status <= ToBeConfirmed.
type OrderStatus int

const (
	OrderPendingPayment OrderStatus = iota + 1
	OrderToBeConfirmed
	OrderConfirmed
	OrderDelivering
	OrderCompleted
	OrderCancelled
)

func (s OrderStatus) String() string {
	switch s {
	case OrderPendingPayment:
		return "PENDING_PAYMENT"
	case OrderToBeConfirmed:
		return "TO_BE_CONFIRMED"
	case OrderConfirmed:
		return "CONFIRMED"
	case OrderDelivering:
		return "DELIVERING"
	case OrderCompleted:
		return "COMPLETED"
	case OrderCancelled:
		return "CANCELLED"
	}
	return "UNKNOWN"
}

// PayStatus is the payment axis, parallel to OrderStatus.
type PayStatus int

const (
	PayUnPaid PayStatus = iota
	PayPaid
	PayRefunded
)

func (s PayStatus) String() string {
	switch s {
	case PayUnPaid:
		return "UNPAID"
	case PayPaid:
		return "PAID"
	case PayRefunded:
		return "REFUNDED"
	}
	return "UNKNOWN"
}
