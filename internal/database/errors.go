package database

import (
	"fmt"

	"github.com/thenoetrevino/billform/internal/models"
)

// ErrBillNotFound is returned (inside a *StorageError) when a bill ID has no row
var ErrBillNotFound = models.ErrBillNotFound

// StorageError reports a failed storage operation. Connectivity failures and
// constraint violations are not distinguished; Err carries the driver error.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// storageErr wraps err as a *StorageError for op, passing nil through
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
