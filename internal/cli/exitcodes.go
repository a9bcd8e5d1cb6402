package cli

import (
	"errors"
	"strings"

	"github.com/thenoetrevino/billform/internal/models"
	billservice "github.com/thenoetrevino/billform/internal/services/bill"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or unknown flags.
	ExitUsage = 2

	// ExitNotFound indicates a requested bill or customer was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Export files that cannot be written.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Bad phone or email, non-numeric quantity or price,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// CodedError carries the exit code for an error that has already been
// reported to the user
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string { return e.Err.Error() }
func (e *CodedError) Unwrap() error { return e.Err }

// WithExitCode marks err as reported with the given exit code
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}

var validationErrors = []error{
	billservice.ErrEmptyName,
	billservice.ErrInvalidPhone,
	billservice.ErrInvalidEmail,
	billservice.ErrEmptyItemName,
	billservice.ErrInvalidQuantity,
	billservice.ErrInvalidPrice,
	billservice.ErrInvalidTotal,
	billservice.ErrInvalidBillID,
	billservice.ErrInvalidCustomer,
}

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}

	switch {
	case errors.Is(err, models.ErrBillNotFound), errors.Is(err, models.ErrCustomerNotFound):
		return ExitNotFound
	case isValidation(err):
		return ExitValidation
	case isUsage(err):
		return ExitUsage
	default:
		return ExitError
	}
}

// ErrorCode is the machine-readable code reported in JSON error output
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitDataErr:
		return "DATA_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

func isValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// cobra reports flag problems as plain errors
func isUsage(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "required flag") ||
		strings.Contains(msg, "unknown flag") ||
		strings.Contains(msg, "unknown command") ||
		strings.Contains(msg, "invalid argument")
}
