package services

import "errors"

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrCategoryInUse    = errors.New("category still has menu items")
)
