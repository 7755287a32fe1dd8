package postgres

import (
	"context"
	"errors"
	"testing"

	"vending-machine/internal/core/domain"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournalEntry() *domain.Transaction {
	tx := domain.NewTransaction(15, domain.Product{Name: "Snickers", Price: 12})
	_ = tx.InsertCoin(domain.DenominationOne)
	_ = tx.InsertCoin(domain.DenominationOne)
	tx.ChangeAmount = 8
	tx.CoinsToReturn = []domain.Denomination{domain.DenominationHalf, domain.DenominationFifth, domain.DenominationTenth}
	_ = tx.End(domain.TransactionStatusSuccess)
	snap := tx.Snapshot()
	return &snap
}

func expectHeader(mock pgxmock.PgxPoolIface, tx *domain.Transaction) *pgxmock.ExpectedExec {
	return mock.ExpectExec("INSERT INTO vend_transactions").
		WithArgs(
			tx.ID, "vm-01", tx.ShelfID, tx.ProductName,
			int64(12), int64(20), int64(8),
			"SUCCESS", tx.CreatedAt, tx.CompletedAt,
		)
}

func TestJournalRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJournalRepo(mock, "vm-01")
	tx := newTestJournalEntry()

	mock.ExpectBegin()
	expectHeader(mock, tx).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO vend_transaction_coins").
		WithArgs(tx.ID, "INSERTED", "1.0", 2).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	for _, d := range []string{"0.5", "0.2", "0.1"} {
		mock.ExpectExec("INSERT INTO vend_transaction_coins").
			WithArgs(tx.ID, "RETURNED", d, 1).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalRepo_Create_HeaderFails(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJournalRepo(mock, "vm-01")
	tx := newTestJournalEntry()

	mock.ExpectBegin()
	expectHeader(mock, tx).WillReturnError(errors.New("relation does not exist"))
	mock.ExpectRollback()

	err = repo.Create(context.Background(), tx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert journal entry")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalRepo_Create_CoinsFail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJournalRepo(mock, "vm-01")
	tx := newTestJournalEntry()

	mock.ExpectBegin()
	expectHeader(mock, tx).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO vend_transaction_coins").
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	err = repo.Create(context.Background(), tx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert journal coins")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalRepo_Create_BeginFails(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewJournalRepo(mock, "vm-01")

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	err = repo.Create(context.Background(), newTestJournalEntry())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCoinRows(t *testing.T) {
	tx := &domain.Transaction{
		InsertedCoins: []domain.Denomination{
			domain.DenominationTenth, domain.DenominationTwo, domain.DenominationTenth,
		},
		RefundedCoins: []domain.Denomination{domain.DenominationTwo},
		StrandedCoins: []domain.Denomination{domain.DenominationHalf},
	}

	assert.Equal(t, []coinRow{
		{kind: coinKindInserted, denomination: domain.DenominationTwo, quantity: 1},
		{kind: coinKindInserted, denomination: domain.DenominationTenth, quantity: 2},
		{kind: coinKindRefunded, denomination: domain.DenominationTwo, quantity: 1},
		{kind: coinKindStranded, denomination: domain.DenominationHalf, quantity: 1},
	}, coinRows(tx))
}

func TestHealthCheck_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)
	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))

	assert.NoError(t, hc.Ping(context.Background()))
	assert.Equal(t, "postgresql", hc.Name())
	assert.NoError(t, mock.ExpectationsWereMet())
}
