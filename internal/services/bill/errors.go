package bill

import "errors"

// Bill-related errors
var (
	// Customer validation errors
	ErrEmptyName    = errors.New("customer name cannot be empty")
	ErrInvalidPhone = errors.New("phone must be exactly 10 digits")
	ErrInvalidEmail = errors.New("invalid email address")

	// Bill validation errors
	ErrEmptyItemName   = errors.New("item name cannot be empty")
	ErrInvalidQuantity = errors.New("invalid quantity: must be a whole number from 0 to 2147483647")
	ErrInvalidPrice    = errors.New("invalid price: must be a number >= 0 with at most 2 decimals")
	ErrInvalidTotal    = errors.New("invalid total: must be a number >= 0 with at most 2 decimals")
	ErrInvalidBillID   = errors.New("invalid bill ID")
	ErrInvalidCustomer = errors.New("invalid customer ID")
)
