package order

import "errors"

var (
	ErrUserNotAuthenticated = errors.New("user not authenticated")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrOrderNotFound        = errors.New("order not found")

	ErrFailedCreateOrder = errors.New("failed to create order")
	ErrFailedListOrders  = errors.New("failed to list orders")
)
