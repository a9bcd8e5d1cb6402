package bill

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidateName checks a customer name
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidatePhone checks for exactly ten digits
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// ValidateEmail checks the address against the form's email pattern
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateItemName checks a bill's item name
func ValidateItemName(item string) error {
	if strings.TrimSpace(item) == "" {
		return ErrEmptyItemName
	}
	return nil
}

func validateCustomer(name, phone, email string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	return ValidateEmail(email)
}

// validateItem checks the mutable bill fields and resolves the total,
// computing it from quantity and price when none was given
func validateItem(item string, quantity int, price decimal.Decimal, total *decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateItemName(item); err != nil {
		return decimal.Zero, err
	}
	if !validQuantity(quantity) {
		return decimal.Zero, ErrInvalidQuantity
	}
	if !validMoney(price) {
		return decimal.Zero, ErrInvalidPrice
	}
	if total == nil {
		return ComputeTotal(quantity, price), nil
	}
	if !validMoney(*total) {
		return decimal.Zero, ErrInvalidTotal
	}
	return *total, nil
}
