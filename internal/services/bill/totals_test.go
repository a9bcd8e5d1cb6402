package bill

import (
	"errors"
	"testing"
)

func TestCalculateTotal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		quantity string
		price    string
		want     string
	}{
		{"3", "2.50", "7.50"},
		{"2", "0.333", "0.67"},
		{"10", "1", "10.00"},
		{"0", "99.99", "0.00"},
		{" 4 ", " 1.25 ", "5.00"},
		{"", "2.50", "0.00"},
		{"3", "", "0.00"},
		{"abc", "2.50", "0.00"},
		{"3", "x", "0.00"},
		{"2.5", "2", "0.00"},
	}

	for _, tt := range tests {
		if got := CalculateTotal(tt.quantity, tt.price); got != tt.want {
			t.Errorf("CalculateTotal(%q, %q) = %q, want %q", tt.quantity, tt.price, got, tt.want)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	t.Parallel()
	if q, err := ParseQuantity("12"); err != nil || q != 12 {
		t.Errorf("ParseQuantity(12) = %d, %v", q, err)
	}
	for _, in := range []string{"", "abc", "-1", "1.5", "2147483648"} {
		if _, err := ParseQuantity(in); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("ParseQuantity(%q): expected ErrInvalidQuantity, got %v", in, err)
		}
	}
}

func TestParsePrice(t *testing.T) {
	t.Parallel()
	p, err := ParsePrice("19.99")
	if err != nil {
		t.Fatalf("ParsePrice failed: %v", err)
	}
	if p.String() != "19.99" {
		t.Errorf("Expected 19.99, got %s", p)
	}
	// trailing zeros do not count as extra precision
	if _, err := ParsePrice("2.5000"); err != nil {
		t.Errorf("ParsePrice(2.5000) failed: %v", err)
	}
	for _, in := range []string{"", "ten", "-0.01", "2.555", "0.001"} {
		if _, err := ParsePrice(in); !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("ParsePrice(%q): expected ErrInvalidPrice, got %v", in, err)
		}
	}
}

func TestParseTotal(t *testing.T) {
	t.Parallel()
	if got, err := ParseTotal(""); err != nil || got != nil {
		t.Errorf("Empty total should be nil, got %v, %v", got, err)
	}
	if got, err := ParseTotal("7.5"); err != nil || got.StringFixed(2) != "7.50" {
		t.Errorf("ParseTotal(7.5) = %v, %v", got, err)
	}
	for _, in := range []string{"-1", "7.665"} {
		if _, err := ParseTotal(in); !errors.Is(err, ErrInvalidTotal) {
			t.Errorf("ParseTotal(%q): expected ErrInvalidTotal, got %v", in, err)
		}
	}
}

func TestValidators(t *testing.T) {
	t.Parallel()
	if err := ValidateEmail("first.last+tag@mail.example.org"); err != nil {
		t.Errorf("Expected valid email, got %v", err)
	}
	if err := ValidateEmail("no-at-sign.com"); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("Expected ErrInvalidEmail, got %v", err)
	}
	if err := ValidatePhone("0123456789"); err != nil {
		t.Errorf("Expected valid phone, got %v", err)
	}
	if err := ValidatePhone("01234567890"); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("Expected ErrInvalidPhone for 11 digits, got %v", err)
	}
}
