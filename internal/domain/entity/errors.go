package entity

import "errors"

var (
	// ErrNonPositiveQuantity is returned when adding zero or negative units.
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
	// ErrNoStock is returned when a product with no units left is added.
	ErrNoStock = errors.New("product has no stock")
)
