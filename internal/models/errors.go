package models

import "errors"

// Domain-specific errors shared by the storage and service layers
var (
	// ErrBillNotFound indicates that no bill has the requested ID
	ErrBillNotFound = errors.New("bill not found")

	// ErrCustomerNotFound indicates that no customer has the requested ID
	ErrCustomerNotFound = errors.New("customer not found")
)
