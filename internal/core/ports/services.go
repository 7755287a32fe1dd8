package ports

import (
	"context"
	"time"

	"vending-machine/internal/core/domain"
)

// HashService handles operator password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations for operator sessions.
type TokenService interface {
	Generate(operator string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Operator  string
	MachineID string
}

// --- Service Ports (Business Logic) ---

// MachineService is the front panel of a vending machine.
type MachineService interface {
	SelectShelf(ctx context.Context, shelfID int) (*Selection, error)
	InsertCoin(ctx context.Context, coin domain.Denomination) (*Insertion, error)
	Cancel(ctx context.Context) (*Cancellation, error)
	CurrentTransaction() *domain.Transaction // nil when idle
	TransactionHistory() []domain.Transaction
}

// Selection is the outcome of pressing a shelf button.
type Selection struct {
	Product     domain.Product
	Transaction *domain.Transaction // nil when the shelf is empty
	ShelfEmpty  bool
	Resumed     bool // an IN_PROGRESS transaction was already open
}

// Insertion is the outcome of dropping a coin into the slot.
type Insertion struct {
	Accepted    bool // false when no transaction was open; the coin is handed back
	AmountDue   domain.Money
	Transaction *domain.Transaction
}

// Cancellation is the outcome of pressing the cancel button.
type Cancellation struct {
	Canceled    bool // false when there was nothing to cancel
	Transaction *domain.Transaction
}

// OperatorService covers the maintenance side of the machine.
type OperatorService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
	CoinCounts() map[domain.Denomination]int
	LoadCoins(coin domain.Denomination, count int) error
	Shelves() []domain.Shelf
	Restock(shelfID int, count int) error
}
