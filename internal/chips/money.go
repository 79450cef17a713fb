package chips

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when a money amount cannot be parsed or is negative
var ErrInvalidAmount = errors.New("invalid amount")

// Largest dollar amount that still fits in Cents
const maxDollars = float64(math.MaxInt64/100) / 10

// Cents is an amount of money in hundredths of a dollar
type Cents int64

// FromDollars converts a dollar amount to cents, rounding to the nearest cent
func FromDollars(d float64) Cents {
	return Cents(math.Round(d * 100))
}

// Dollars returns the amount as a float
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// String formats the amount as "$1.04"
func (c Cents) String() string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, int64(c/100), int64(c%100))
}

// Abs returns the absolute value
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}

// ParseAmount parses a non-negative decimal dollar amount such as "12.50".
// A leading "$" is accepted.
func ParseAmount(s string) (Cents, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	if v > maxDollars {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, s)
	}

	return FromDollars(v), nil
}
