package cart

import "errors"

var (
	// ErrOutOfStock signals an add against a zero-stock book. The cart is
	// left untouched; the caller decides how to surface it.
	ErrOutOfStock = errors.New("book is out of stock")

	// ErrInvalidQuantity signals a non-positive requested quantity on add.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)
