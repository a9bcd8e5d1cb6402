package bill

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/thenoetrevino/billform/internal/models"
)

const zeroTotal = "0.00"

// MaxQuantity is the largest quantity the bills.quantity INTEGER column holds
const MaxQuantity = math.MaxInt32

// CalculateTotal returns quantity * price formatted with two decimals.
// It is called on every keystroke, so incomplete input is normal: anything
// empty or unparsable yields "0.00" instead of an error.
func CalculateTotal(quantityText, priceText string) string {
	quantity, err := strconv.Atoi(strings.TrimSpace(quantityText))
	if err != nil {
		return zeroTotal
	}

	price, err := decimal.NewFromString(strings.TrimSpace(priceText))
	if err != nil {
		return zeroTotal
	}

	return ComputeTotal(quantity, price).StringFixed(models.MoneyPlaces)
}

// ComputeTotal multiplies quantity by price
func ComputeTotal(quantity int, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// ParseQuantity converts form text into a quantity.
// Only whole numbers between 0 and MaxQuantity are accepted.
func ParseQuantity(s string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !validQuantity(q) {
		return 0, ErrInvalidQuantity
	}
	return q, nil
}

// ParsePrice converts form text into a non-negative price with at most
// two decimal places
func ParsePrice(s string) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !validMoney(p) {
		return decimal.Zero, ErrInvalidPrice
	}
	return p, nil
}

// ParseTotal converts an explicit total. Empty input means "not given".
func ParseTotal(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := decimal.NewFromString(s)
	if err != nil || !validMoney(t) {
		return nil, ErrInvalidTotal
	}
	return &t, nil
}

func validQuantity(q int) bool {
	return q >= 0 && q <= MaxQuantity
}

// validMoney reports whether d is non-negative and is stored without rounding
func validMoney(d decimal.Decimal) bool {
	return !d.IsNegative() && d.Equal(d.Round(models.MoneyPlaces))
}
