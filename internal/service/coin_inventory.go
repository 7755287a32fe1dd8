package service

import (
	"sync"

	"vending-machine/internal/core/domain"
	"vending-machine/pkg/apperror"
)

// CoinSource is the coin holder as seen from inside one critical section.
type CoinSource interface {
	Deposit(coin domain.Denomination) error
	Release(coin domain.Denomination) (domain.Denomination, error)
	CanRelease(coin domain.Denomination) bool
	AvailableDenominations() []domain.Denomination
}

// CoinInventory is the machine's coin holder: a count per denomination.
// Counts never go negative. All access is serialized, so one inventory may
// back several machines.
type CoinInventory struct {
	mu     sync.Mutex
	counts map[domain.Denomination]int
}

// NewCoinInventory creates an empty coin holder.
func NewCoinInventory() *CoinInventory {
	return &CoinInventory{counts: make(map[domain.Denomination]int)}
}

// Deposit adds one coin. Only unknown denominations are rejected.
func (c *CoinInventory) Deposit(coin domain.Denomination) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deposit(coin)
}

// Release takes one coin out. Releasing a denomination with zero count is a
// caller bug: check CanRelease first.
func (c *CoinInventory) Release(coin domain.Denomination) (domain.Denomination, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.release(coin)
}

// CanRelease reports whether at least one coin of that denomination is held.
func (c *CoinInventory) CanRelease(coin domain.Denomination) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[coin] > 0
}

// AvailableDenominations returns held denominations, largest first.
func (c *CoinInventory) AvailableDenominations() []domain.Denomination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.available()
}

// Load puts count coins of one denomination into the holder (operator refill).
func (c *CoinInventory) Load(coin domain.Denomination, count int) error {
	if count <= 0 {
		return apperror.Validation("coin count must be positive")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !coin.IsValid() {
		return apperror.ErrUnknownDenomination(string(coin))
	}
	c.counts[coin] += count
	return nil
}

// Count returns how many coins of a denomination are held.
func (c *CoinInventory) Count(coin domain.Denomination) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[coin]
}

// Counts returns a snapshot of every denomination's count, zeros included.
func (c *CoinInventory) Counts() map[domain.Denomination]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[domain.Denomination]int, len(c.counts))
	for _, d := range domain.Denominations() {
		out[d] = c.counts[d]
	}
	return out
}

// Total returns the value of all held coins.
func (c *CoinInventory) Total() domain.Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total domain.Money
	for d, n := range c.counts {
		total += d.Value() * domain.Money(n)
	}
	return total
}

// Clear empties the holder.
func (c *CoinInventory) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts = make(map[domain.Denomination]int)
}

// Atomically runs fn while holding the inventory lock. fn must only touch the
// inventory through src.
func (c *CoinInventory) Atomically(fn func(src CoinSource)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(lockedCoins{c})
}

func (c *CoinInventory) deposit(coin domain.Denomination) error {
	if !coin.IsValid() {
		return apperror.ErrUnknownDenomination(string(coin))
	}
	c.counts[coin]++
	return nil
}

func (c *CoinInventory) release(coin domain.Denomination) (domain.Denomination, error) {
	if !coin.IsValid() {
		return "", apperror.ErrUnknownDenomination(string(coin))
	}
	if c.counts[coin] <= 0 {
		return "", apperror.ErrCoinUnavailable(string(coin))
	}
	c.counts[coin]--
	return coin, nil
}

func (c *CoinInventory) available() []domain.Denomination {
	var out []domain.Denomination
	for _, d := range domain.Denominations() {
		if c.counts[d] > 0 {
			out = append(out, d)
		}
	}
	return out
}

// lockedCoins is handed out by Atomically; the lock is already held.
type lockedCoins struct {
	c *CoinInventory
}

func (l lockedCoins) Deposit(coin domain.Denomination) error { return l.c.deposit(coin) }

func (l lockedCoins) Release(coin domain.Denomination) (domain.Denomination, error) {
	return l.c.release(coin)
}

func (l lockedCoins) CanRelease(coin domain.Denomination) bool { return l.c.counts[coin] > 0 }

func (l lockedCoins) AvailableDenominations() []domain.Denomination { return l.c.available() }
