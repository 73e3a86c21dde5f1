package services

import (
	"errors"
	"fmt"
	"strings"
)

// Business-rule violations. These are surfaced to the caller as-is and are
// never retried; anything else coming out of a service is a storage failure
// that already rolled the enclosing transaction back.
var (
	ErrDishOnSale       = errors.New("dish is on sale and cannot be deleted")
	ErrDishInSetmeal    = errors.New("dish is referenced by a setmeal and cannot be deleted")
	ErrSetmealOnSale    = errors.New("setmeal is on sale and cannot be deleted")
	ErrCartItemNotFound = errors.New("cart line not found")
	ErrAddressNotFound  = errors.New("address not found")
	ErrCartEmpty        = errors.New("shopping cart is empty")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderStatus      = errors.New("order status does not allow this operation")
)

// SetmealEnableBlockedError reports which off-sale member dishes block
// enabling a setmeal.
type SetmealEnableBlockedError struct {
	DishNames []string
}

func (e *SetmealEnableBlockedError) Error() string {
	return fmt.Sprintf("setmeal cannot be enabled, off-sale dishes: %s",
		strings.Join(e.DishNames, ", "))
}
