package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the lifecycle state of a purchase attempt.
type TransactionStatus string

const (
	TransactionStatusInProgress        TransactionStatus = "IN_PROGRESS"
	TransactionStatusReadyToRelease    TransactionStatus = "READY_TO_RELEASE"
	TransactionStatusInsufficientMoney TransactionStatus = "INSUFFICIENT_MONEY"
	TransactionStatusSuccess           TransactionStatus = "SUCCESS"
	TransactionStatusCanceled          TransactionStatus = "CANCELED"
)

var (
	ErrInvalidTransition = errors.New("invalid transaction status transition")
	ErrNotInProgress     = errors.New("transaction is not in progress")
)

// allowedTransitions maps a status to the statuses it may move to.
// Nothing ever moves back to IN_PROGRESS.
var allowedTransitions = map[TransactionStatus][]TransactionStatus{
	TransactionStatusInProgress: {
		TransactionStatusReadyToRelease,
		TransactionStatusInsufficientMoney,
		TransactionStatusCanceled,
	},
	TransactionStatusReadyToRelease: {
		TransactionStatusSuccess,
	},
	TransactionStatusInsufficientMoney: {}, // Terminal state
	TransactionStatusSuccess:           {}, // Terminal state
	TransactionStatusCanceled:          {}, // Terminal state
}

// CanTransition checks if a status change is allowed.
func CanTransition(from, to TransactionStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CompletionListener is notified synchronously when a transaction leaves
// IN_PROGRESS. Returning an error aborts the remaining notifications.
type CompletionListener interface {
	TransactionCompleted(tx *Transaction) error
}

// Transaction tracks a single purchase attempt from shelf selection to
// product release, refund, or cancellation.
type Transaction struct {
	ID            uuid.UUID         `json:"id"`
	ShelfID       int               `json:"shelf_id"`
	ProductName   string            `json:"product_name"`
	ProductPrice  Money             `json:"product_price"` // Copied at creation
	CoveredAmount Money             `json:"covered_amount"`
	ChangeAmount  Money             `json:"change_amount"`
	InsertedCoins []Denomination    `json:"inserted_coins"`
	CoinsToReturn []Denomination    `json:"coins_to_return"`
	RefundedCoins []Denomination    `json:"refunded_coins"`
	StrandedCoins []Denomination    `json:"stranded_coins,omitempty"` // Released by a failed change attempt
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`

	listeners []CompletionListener
}

// NewTransaction opens an IN_PROGRESS transaction for the product on shelfID.
func NewTransaction(shelfID int, product Product, listeners ...CompletionListener) *Transaction {
	return &Transaction{
		ID:            uuid.New(),
		ShelfID:       shelfID,
		ProductName:   product.Name,
		ProductPrice:  product.Price,
		InsertedCoins: []Denomination{},
		CoinsToReturn: []Denomination{},
		RefundedCoins: []Denomination{},
		Status:        TransactionStatusInProgress,
		CreatedAt:     time.Now().UTC(),
		listeners:     listeners,
	}
}

// Subscribe registers an additional completion listener.
func (t *Transaction) Subscribe(l CompletionListener) {
	t.listeners = append(t.listeners, l)
}

// InsertCoin records a paid coin and raises the covered amount.
func (t *Transaction) InsertCoin(d Denomination) error {
	if t.Status != TransactionStatusInProgress {
		return ErrNotInProgress
	}
	t.InsertedCoins = append(t.InsertedCoins, d)
	t.CoveredAmount += d.Value()
	return nil
}

// AmountDue returns how much is still missing to cover the price.
func (t *Transaction) AmountDue() Money {
	if t.CoveredAmount >= t.ProductPrice {
		return 0
	}
	return t.ProductPrice - t.CoveredAmount
}

// IsCovered returns true once the inserted coins pay for the product.
func (t *Transaction) IsCovered() bool {
	return t.CoveredAmount >= t.ProductPrice
}

// IsInProgress returns true while coins can still be inserted.
func (t *Transaction) IsInProgress() bool {
	return t.Status == TransactionStatusInProgress
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusSuccess ||
		t.Status == TransactionStatusInsufficientMoney ||
		t.Status == TransactionStatusCanceled
}

// Update moves the transaction to status and, when it leaves IN_PROGRESS,
// notifies listeners in registration order before returning.
func (t *Transaction) Update(status TransactionStatus) error {
	from := t.Status
	if err := t.transition(status); err != nil {
		return err
	}
	if from != TransactionStatusInProgress {
		return nil
	}
	for _, l := range t.listeners {
		if err := l.TransactionCompleted(t); err != nil {
			return err
		}
	}
	return nil
}

// End moves the transaction to status without notifying listeners.
func (t *Transaction) End(status TransactionStatus) error {
	return t.transition(status)
}

func (t *Transaction) transition(to TransactionStatus) error {
	if !CanTransition(t.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, to)
	}
	t.Status = to
	if t.IsTerminal() {
		now := time.Now().UTC()
		t.CompletedAt = &now
	}
	return nil
}

// Snapshot returns a deep copy without listeners, safe to hand to callers.
func (t *Transaction) Snapshot() Transaction {
	c := *t
	c.listeners = nil
	c.InsertedCoins = append([]Denomination{}, t.InsertedCoins...)
	c.CoinsToReturn = append([]Denomination{}, t.CoinsToReturn...)
	c.RefundedCoins = append([]Denomination{}, t.RefundedCoins...)
	if t.StrandedCoins != nil {
		c.StrandedCoins = append([]Denomination{}, t.StrandedCoins...)
	}
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	return c
}
