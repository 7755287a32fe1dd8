package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in tenths of the base currency unit (1.20 == 12).
type Money int64

// MoneyScale is the number of minor units in one base unit.
const MoneyScale = 10

// String formats the amount with two decimal places, e.g. "1.20".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/MoneyScale, (v%MoneyScale)*(100/MoneyScale))
}

// ParseMoney parses a decimal string such as "3", "3.2" or "3.20".
// Amounts finer than one tenth are rejected rather than rounded.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	frac = strings.TrimRight(frac, "0")
	var tenths int64
	switch len(frac) {
	case 0:
	case 1:
		if frac[0] < '0' || frac[0] > '9' {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		tenths = int64(frac[0] - '0')
	default:
		return 0, fmt.Errorf("amount %q is finer than 0.1", s)
	}

	m := Money(units*MoneyScale + tenths)
	if neg {
		m = -m
	}
	return m, nil
}
