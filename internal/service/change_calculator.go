package service

import (
	"fmt"

	"vending-machine/internal/core/domain"
)

// ChangeResult is the outcome of one change calculation.
type ChangeResult struct {
	Coins     []domain.Denomination // Released from the inventory, in release order
	Remaining domain.Money          // Change still owed; zero on success
}

// Covered returns true when the released coins add up to the change due.
func (r ChangeResult) Covered() bool {
	return r.Remaining == 0
}

// Status maps the result onto the transaction lifecycle.
func (r ChangeResult) Status() domain.TransactionStatus {
	if r.Covered() {
		return domain.TransactionStatusReadyToRelease
	}
	return domain.TransactionStatusInsufficientMoney
}

// CalculateChange greedily pays out due from src. Each pass walks the
// denominations from largest to smallest and releases at most one coin of
// each; passes repeat until the change is paid or the remainder is smaller
// than every coin still held. A coin, once released, is never given back.
// Coins released before an insufficiency is detected stay released; the
// caller decides what to do with them.
func CalculateChange(due domain.Money, src CoinSource) (ChangeResult, error) {
	result := ChangeResult{Coins: []domain.Denomination{}, Remaining: due}
	if due <= 0 {
		result.Remaining = 0
		return result, nil
	}

	for {
		released := 0
		for _, d := range domain.Denominations() {
			if result.Remaining >= d.Value() && src.CanRelease(d) {
				coin, err := src.Release(d)
				if err != nil {
					return result, fmt.Errorf("release %s for change: %w", d, err)
				}
				result.Coins = append(result.Coins, coin)
				result.Remaining -= coin.Value()
				released++
			}

			if result.Remaining == 0 {
				return result, nil
			}
			if smallerThanAllAvailable(result.Remaining, src) {
				return result, nil
			}
		}
		// Unreachable while src is consistent: some coin fits the
		// remainder, so the pass must have released it.
		if released == 0 {
			return result, nil
		}
	}
}

func smallerThanAllAvailable(amount domain.Money, src CoinSource) bool {
	for _, d := range src.AvailableDenominations() {
		if amount >= d.Value() {
			return false
		}
	}
	return true
}
