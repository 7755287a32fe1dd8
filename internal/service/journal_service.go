package service

import (
	"context"
	"sync"
	"time"

	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports"
	"vending-machine/pkg/apperror"

	"github.com/rs/zerolog"
)

const journalWriteTimeout = 5 * time.Second

// JournalService implements ports.TransactionJournal on top of a JournalRepository.
type JournalService struct {
	repo ports.JournalRepository
	log  zerolog.Logger
	wg   sync.WaitGroup
}

// NewJournalService creates the sales journal. If repo is nil, finished
// transactions are only written to the logger.
func NewJournalService(repo ports.JournalRepository, log zerolog.Logger) *JournalService {
	return &JournalService{repo: repo, log: log}
}

// Record writes tx to the journal in the background (fire-and-forget).
// The machine never waits on, or fails because of, the journal.
func (s *JournalService) Record(_ context.Context, tx domain.Transaction) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.log.Info().
			Str("tx_id", tx.ID.String()).
			Int("shelf_id", tx.ShelfID).
			Str("product", tx.ProductName).
			Str("status", string(tx.Status)).
			Str("covered", tx.CoveredAmount.String()).
			Str("change", tx.ChangeAmount.String()).
			Msg("journal")

		if s.repo == nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), journalWriteTimeout)
		defer cancel()
		if err := s.repo.Create(ctx, &tx); err != nil {
			appErr := apperror.ErrDatabaseError(err)
			s.log.Warn().
				Err(appErr).
				Str("error_code", appErr.Code).
				Str("tx_id", tx.ID.String()).
				Msg("failed to persist journal entry")
		}
	}()
}

// Wait blocks until every pending write has finished. Called on shutdown.
func (s *JournalService) Wait() {
	s.wg.Wait()
}

// Journals fans every closed transaction out to several journals, in order.
type Journals []ports.TransactionJournal

// Record implements ports.TransactionJournal.
func (js Journals) Record(ctx context.Context, tx domain.Transaction) {
	for _, j := range js {
		j.Record(ctx, tx)
	}
}
