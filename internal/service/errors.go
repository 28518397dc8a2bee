package service

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNoActiveOrder    = errors.New("no active order")
	ErrItemNotInCart    = errors.New("item not in cart")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCheckoutInvalid  = errors.New("checkout form invalid")
)
