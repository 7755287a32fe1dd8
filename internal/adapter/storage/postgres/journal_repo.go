package postgres

import (
	"context"
	"fmt"

	"vending-machine/internal/core/domain"
)

// Coin row kinds in vend_transaction_coins.
const (
	coinKindInserted = "INSERTED"
	coinKindReturned = "RETURNED"
	coinKindRefunded = "REFUNDED"
	coinKindStranded = "STRANDED"
)

// JournalRepo implements ports.JournalRepository. Rows are only ever
// inserted; the machine does not read its history back on startup.
type JournalRepo struct {
	pool      Pool
	machineID string
}

// NewJournalRepo creates a new JournalRepo writing entries for machineID.
func NewJournalRepo(pool Pool, machineID string) *JournalRepo {
	return &JournalRepo{pool: pool, machineID: machineID}
}

// Create stores a finished transaction and its coin movements atomically.
func (r *JournalRepo) Create(ctx context.Context, t *domain.Transaction) error {
	dbTx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin journal tx: %w", err)
	}

	query := `INSERT INTO vend_transactions (id, machine_id, shelf_id, product_name, price_tenths,
		covered_tenths, change_tenths, status, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING`

	_, err = dbTx.Exec(ctx, query,
		t.ID, r.machineID, t.ShelfID, t.ProductName,
		int64(t.ProductPrice), int64(t.CoveredAmount), int64(t.ChangeAmount),
		string(t.Status), t.CreatedAt, t.CompletedAt,
	)
	if err != nil {
		_ = dbTx.Rollback(ctx)
		return fmt.Errorf("insert journal entry: %w", err)
	}

	for _, row := range coinRows(t) {
		_, err = dbTx.Exec(ctx,
			`INSERT INTO vend_transaction_coins (transaction_id, kind, denomination, quantity)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (transaction_id, kind, denomination) DO NOTHING`,
			t.ID, row.kind, string(row.denomination), row.quantity,
		)
		if err != nil {
			_ = dbTx.Rollback(ctx)
			return fmt.Errorf("insert journal coins: %w", err)
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit journal tx: %w", err)
	}
	return nil
}

type coinRow struct {
	kind         string
	denomination domain.Denomination
	quantity     int
}

// coinRows groups the coin lists of t by kind and denomination, largest first.
func coinRows(t *domain.Transaction) []coinRow {
	groups := []struct {
		kind  string
		coins []domain.Denomination
	}{
		{coinKindInserted, t.InsertedCoins},
		{coinKindReturned, t.CoinsToReturn},
		{coinKindRefunded, t.RefundedCoins},
		{coinKindStranded, t.StrandedCoins},
	}

	var rows []coinRow
	for _, g := range groups {
		counts := make(map[domain.Denomination]int, len(g.coins))
		for _, c := range g.coins {
			counts[c]++
		}
		for _, d := range domain.Denominations() {
			if n := counts[d]; n > 0 {
				rows = append(rows, coinRow{kind: g.kind, denomination: d, quantity: n})
			}
		}
	}
	return rows
}
