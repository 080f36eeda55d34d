package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrReviewExists       = errors.New("review already exists for this product")
	ErrProductUnavailable = errors.New("product is not available")
)

// Checkout and payment failures surfaced to the customer as actionable
// messages, never swallowed into a default.
var (
	ErrEmptyCart                = errors.New("cart is empty")
	ErrLocationRequired         = errors.New("delivery location has not been verified")
	ErrOutsideDeliveryRadius    = errors.New("delivery is not available for this location")
	ErrInvalidStatusTransition  = errors.New("invalid order status transition")
	ErrOrderNotAssigned         = errors.New("order is not assigned to this delivery person")
	ErrInvalidPaymentSignature  = errors.New("invalid payment signature")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
)
