package domain

import "errors"

var (
	// ErrInvalidProduct — product_id отсутствует, не число или <= 0.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrForbidden — отсутствует или не прошёл проверку anti-forgery токен.
	ErrForbidden = errors.New("forbidden")

	// ErrOrderNotFound — заказ из индекса позиций больше не загружается.
	ErrOrderNotFound = errors.New("order not found")
)
