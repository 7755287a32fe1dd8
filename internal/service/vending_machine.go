package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports"
	"vending-machine/pkg/apperror"

	"github.com/rs/zerolog"
)

// MachineOptions tunes the transaction state machine.
type MachineOptions struct {
	// RollbackOnInsufficient puts coins released by a failed change attempt
	// back into the holder. When false they are recorded as stranded.
	RollbackOnInsufficient bool
}

// VendingMachine implements ports.MachineService. It owns at most one
// IN_PROGRESS transaction and drives it to SUCCESS, CANCELED or
// INSUFFICIENT_MONEY. Every operation runs to completion under one lock.
type VendingMachine struct {
	mu      sync.Mutex
	catalog ports.ProductCatalog
	display ports.Display
	coins   *CoinInventory
	journal ports.TransactionJournal // nil = journaling disabled
	opts    MachineOptions
	current *domain.Transaction
	history []*domain.Transaction
	log     zerolog.Logger
}

// NewVendingMachine creates a machine selling from catalog and paying change from coins.
func NewVendingMachine(
	catalog ports.ProductCatalog,
	display ports.Display,
	coins *CoinInventory,
	journal ports.TransactionJournal,
	opts MachineOptions,
	log zerolog.Logger,
) *VendingMachine {
	return &VendingMachine{
		catalog: catalog,
		display: display,
		coins:   coins,
		journal: journal,
		opts:    opts,
		history: []*domain.Transaction{},
		log:     log,
	}
}

// SelectShelf opens a transaction for the product on shelfID, or returns the
// transaction already in progress.
func (m *VendingMachine) SelectShelf(ctx context.Context, shelfID int) (*ports.Selection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.log.Info().Int("shelf_id", shelfID).Msg("shelf selected")

	product, err := m.catalog.Lookup(shelfID)
	if err != nil {
		return nil, err
	}
	empty, err := m.catalog.IsEmpty(product)
	if err != nil {
		return nil, err
	}
	if empty {
		m.display.Show(emptyShelfMessage(shelfID))
		return &ports.Selection{Product: product, ShelfEmpty: true}, nil
	}
	if !product.IsSellable() {
		return nil, apperror.ErrProductNotSellable(shelfID)
	}

	if m.current != nil && m.current.IsInProgress() {
		tx := m.current
		m.display.Show(selectedMessage(domain.Product{Name: tx.ProductName, Price: tx.ProductPrice}))
		snap := tx.Snapshot()
		return &ports.Selection{Product: product, Transaction: &snap, Resumed: true}, nil
	}

	m.display.Show(selectedMessage(product))
	tx := domain.NewTransaction(shelfID, product, completion{m: m})
	m.current = tx

	m.log.Info().
		Str("tx_id", tx.ID.String()).
		Int("shelf_id", shelfID).
		Str("price", tx.ProductPrice.String()).
		Msg("transaction opened")

	snap := tx.Snapshot()
	return &ports.Selection{Product: product, Transaction: &snap}, nil
}

// InsertCoin accepts a coin for the open transaction. Once the price is
// covered the change is computed and the transaction is resolved before
// this call returns.
func (m *VendingMachine) InsertCoin(ctx context.Context, coin domain.Denomination) (*ports.Insertion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !coin.IsValid() {
		return nil, apperror.ErrUnknownDenomination(string(coin))
	}
	if m.current == nil || !m.current.IsInProgress() {
		m.display.Show(msgChooseShelf)
		return &ports.Insertion{Accepted: false}, nil
	}

	tx := m.current

	// The deposit and the change run share one critical section so the
	// coin just paid in is available as change.
	var (
		change  ChangeResult
		covered bool
		opErr   error
	)
	m.coins.Atomically(func(src CoinSource) {
		if opErr = src.Deposit(coin); opErr != nil {
			return
		}
		if err := tx.InsertCoin(coin); err != nil {
			opErr = apperror.InternalError(err)
			return
		}
		if covered = tx.IsCovered(); !covered {
			return
		}
		tx.ChangeAmount = tx.CoveredAmount - tx.ProductPrice
		change, opErr = m.payChange(tx.ChangeAmount, src)
	})
	if opErr != nil {
		if apperror.HasCode(opErr, "SYS_002") {
			m.log.Error().Err(opErr).Str("tx_id", tx.ID.String()).Msg("change calculation failed")
		}
		return nil, opErr
	}

	m.log.Debug().
		Str("tx_id", tx.ID.String()).
		Str("denomination", string(coin)).
		Str("covered", tx.CoveredAmount.String()).
		Msg("coin inserted")

	if !covered {
		due := tx.AmountDue()
		m.display.Show(amountDueMessage(due))
		snap := tx.Snapshot()
		return &ports.Insertion{Accepted: true, AmountDue: due, Transaction: &snap}, nil
	}

	if change.Covered() {
		tx.CoinsToReturn = change.Coins
	} else {
		if !m.opts.RollbackOnInsufficient && len(change.Coins) > 0 {
			tx.StrandedCoins = change.Coins
		}
		m.display.Show(msgInsufficientMoney)
		m.log.Warn().
			Str("tx_id", tx.ID.String()).
			Str("change_due", tx.ChangeAmount.String()).
			Str("remaining", change.Remaining.String()).
			Int("stranded", len(tx.StrandedCoins)).
			Msg("not enough coins to give change")
	}

	if err := m.resolve(ctx, tx, change.Status()); err != nil {
		return nil, err
	}

	snap := tx.Snapshot()
	return &ports.Insertion{Accepted: true, Transaction: &snap}, nil
}

// Cancel aborts the open transaction and refunds every inserted coin.
func (m *VendingMachine) Cancel(ctx context.Context) (*ports.Cancellation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || !m.current.IsInProgress() {
		m.display.Show(msgNothingToCancel)
		return &ports.Cancellation{Canceled: false}, nil
	}

	tx := m.current
	if err := m.resolve(ctx, tx, domain.TransactionStatusCanceled); err != nil {
		return nil, err
	}

	snap := tx.Snapshot()
	return &ports.Cancellation{Canceled: true, Transaction: &snap}, nil
}

// CurrentTransaction returns the open transaction, or nil when idle.
func (m *VendingMachine) CurrentTransaction() *domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || !m.current.IsInProgress() {
		return nil
	}
	snap := m.current.Snapshot()
	return &snap
}

// TransactionHistory returns every finished transaction, oldest first.
func (m *VendingMachine) TransactionHistory() []domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Transaction, 0, len(m.history))
	for _, tx := range m.history {
		out = append(out, tx.Snapshot())
	}
	return out
}

// resolve moves tx out of IN_PROGRESS. The completion listener runs inside
// Update, so by the time it returns the product or coins have been handed out.
func (m *VendingMachine) resolve(ctx context.Context, tx *domain.Transaction, status domain.TransactionStatus) error {
	if !domain.CanTransition(tx.Status, status) {
		return apperror.ErrInvalidTransition(fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, tx.Status, status))
	}

	err := tx.Update(status)
	m.archive(ctx, tx)

	if err != nil {
		m.log.Error().
			Err(err).
			Str("tx_id", tx.ID.String()).
			Str("status", string(tx.Status)).
			Msg("transaction finalization failed")
		return err
	}
	return nil
}

func (m *VendingMachine) archive(ctx context.Context, tx *domain.Transaction) {
	m.history = append(m.history, tx)
	if m.current == tx {
		m.current = nil
	}

	m.log.Info().
		Str("tx_id", tx.ID.String()).
		Str("status", string(tx.Status)).
		Str("covered", tx.CoveredAmount.String()).
		Msg("transaction closed")

	if m.journal != nil {
		m.journal.Record(ctx, tx.Snapshot())
	}
}

// finalizeRelease hands out the product and the change computed for tx.
func (m *VendingMachine) finalizeRelease(tx *domain.Transaction) error {
	product, err := m.catalog.ReleaseOne(tx.ShelfID)
	if err != nil {
		return fmt.Errorf("release product from shelf %d: %w", tx.ShelfID, err)
	}
	if err := tx.End(domain.TransactionStatusSuccess); err != nil {
		return apperror.ErrInvalidTransition(err)
	}

	m.log.Info().
		Str("tx_id", tx.ID.String()).
		Str("product", product.Name).
		Interface("change", tx.CoinsToReturn).
		Msg("product released")
	return nil
}

// finalizeInsufficiency gives back every inserted coin; no product is released.
func (m *VendingMachine) finalizeInsufficiency(tx *domain.Transaction) error {
	return m.refundInserted(tx)
}

// finalizeCancel gives back every inserted coin of a canceled transaction.
func (m *VendingMachine) finalizeCancel(tx *domain.Transaction) error {
	return m.refundInserted(tx)
}

func (m *VendingMachine) refundInserted(tx *domain.Transaction) error {
	refunded, stranded, err := m.refund(tx.InsertedCoins, tx.StrandedCoins)
	tx.RefundedCoins = refunded
	tx.StrandedCoins = stranded
	if err != nil {
		return err
	}

	m.log.Info().
		Str("tx_id", tx.ID.String()).
		Str("status", string(tx.Status)).
		Interface("refunded", refunded).
		Msg("coins refunded")
	return nil
}

// payChange runs the change calculation on src, putting released coins back
// when the change cannot be paid in full and rollback is enabled.
func (m *VendingMachine) payChange(due domain.Money, src CoinSource) (ChangeResult, error) {
	change, err := CalculateChange(due, src)
	if err != nil {
		return change, apperror.ErrInventoryDesync(err)
	}
	if change.Covered() || !m.opts.RollbackOnInsufficient {
		return change, nil
	}
	for _, c := range change.Coins {
		if err := src.Deposit(c); err != nil {
			return change, apperror.ErrInventoryDesync(fmt.Errorf("roll back %s: %w", c, err))
		}
	}
	return change, nil
}

// refund hands coins back to the customer. Coins already outside the holder,
// released by a failed change run, are handed back first; the rest are
// released from the holder. Every coin is attempted even when one fails.
// It returns the refunded coins and the outside coins left over.
func (m *VendingMachine) refund(coins, outside []domain.Denomination) ([]domain.Denomination, []domain.Denomination, error) {
	refunded := make([]domain.Denomination, 0, len(coins))
	leftover := slices.Clone(outside)
	var missing []error

	m.coins.Atomically(func(src CoinSource) {
		for _, c := range coins {
			if i := slices.Index(leftover, c); i >= 0 {
				leftover = slices.Delete(leftover, i, i+1)
				refunded = append(refunded, c)
				continue
			}
			coin, err := src.Release(c)
			if err != nil {
				missing = append(missing, fmt.Errorf("refund %s: %w", c, err))
				continue
			}
			refunded = append(refunded, coin)
		}
	})

	if len(leftover) == 0 {
		leftover = nil
	}
	if len(missing) > 0 {
		return refunded, leftover, apperror.ErrInventoryDesync(errors.Join(missing...))
	}
	return refunded, leftover, nil
}

// completion is the listener a machine registers on its transactions.
type completion struct {
	m *VendingMachine
}

// TransactionCompleted runs with the machine lock already held by the
// operation that triggered the status change.
func (c completion) TransactionCompleted(tx *domain.Transaction) error {
	switch tx.Status {
	case domain.TransactionStatusReadyToRelease:
		return c.m.finalizeRelease(tx)
	case domain.TransactionStatusInsufficientMoney:
		return c.m.finalizeInsufficiency(tx)
	case domain.TransactionStatusCanceled:
		return c.m.finalizeCancel(tx)
	}
	return nil
}
