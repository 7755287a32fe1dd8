package domain

import (
	"fmt"
	"strings"
)

// Denomination is one coin value accepted and paid out by the machine.
type Denomination string

const (
	DenominationFive  Denomination = "5.0"
	DenominationTwo   Denomination = "2.0"
	DenominationOne   Denomination = "1.0"
	DenominationHalf  Denomination = "0.5"
	DenominationFifth Denomination = "0.2"
	DenominationTenth Denomination = "0.1"
)

// denominations is ordered strictly descending by value. The change
// algorithm depends on this order.
var denominations = []Denomination{
	DenominationFive,
	DenominationTwo,
	DenominationOne,
	DenominationHalf,
	DenominationFifth,
	DenominationTenth,
}

var denominationValues = map[Denomination]Money{
	DenominationFive:  50,
	DenominationTwo:   20,
	DenominationOne:   10,
	DenominationHalf:  5,
	DenominationFifth: 2,
	DenominationTenth: 1,
}

// Denominations returns every supported denomination, largest first.
func Denominations() []Denomination {
	out := make([]Denomination, len(denominations))
	copy(out, denominations)
	return out
}

// Value returns the monetary value of the coin. Unknown denominations are worth 0.
func (d Denomination) Value() Money {
	return denominationValues[d]
}

// IsValid reports whether d is one of the supported denominations.
func (d Denomination) IsValid() bool {
	_, ok := denominationValues[d]
	return ok
}

// ParseDenomination accepts any decimal spelling of a supported coin
// ("0.5", ".5", "0.50", "2").
func ParseDenomination(s string) (Denomination, error) {
	m, err := ParseMoney(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("parse denomination: %w", err)
	}
	for _, d := range denominations {
		if d.Value() == m {
			return d, nil
		}
	}
	return "", fmt.Errorf("unsupported denomination %q", s)
}

// SumCoins returns the total value of coins.
func SumCoins(coins []Denomination) Money {
	var total Money
	for _, c := range coins {
		total += c.Value()
	}
	return total
}
