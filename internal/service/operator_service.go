package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports"
	"vending-machine/pkg/apperror"

	"github.com/rs/zerolog"
)

// OperatorCredentials is the single maintenance account of a machine.
type OperatorCredentials struct {
	Username     string
	PasswordHash string // Argon2id, empty disables login
}

// OperatorServiceImpl implements ports.OperatorService.
type OperatorServiceImpl struct {
	creds    OperatorCredentials
	catalog  *ShelfCatalog
	coins    *CoinInventory
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	log      zerolog.Logger
}

// NewOperatorService creates a new OperatorServiceImpl.
func NewOperatorService(
	creds OperatorCredentials,
	catalog *ShelfCatalog,
	coins *CoinInventory,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *OperatorServiceImpl {
	return &OperatorServiceImpl{
		creds:    creds,
		catalog:  catalog,
		coins:    coins,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		log:      log,
	}
}

// Login validates the operator credentials and returns a JWT token.
func (s *OperatorServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if s.creds.PasswordHash == "" {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	// Verify the password even for an unknown user so both paths cost the same.
	valid, err := s.hashSvc.Verify(password, s.creds.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	if !valid || !userOK {
		s.log.Warn().Str("username", username).Msg("operator login rejected")
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(s.creds.Username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	s.log.Info().Str("operator", s.creds.Username).Msg("operator logged in")
	return token, expiry, nil
}

// CoinCounts returns the coin holder contents per denomination.
func (s *OperatorServiceImpl) CoinCounts() map[domain.Denomination]int {
	return s.coins.Counts()
}

// LoadCoins refills the coin holder.
func (s *OperatorServiceImpl) LoadCoins(coin domain.Denomination, count int) error {
	if err := s.coins.Load(coin, count); err != nil {
		return err
	}
	s.log.Info().
		Str("denomination", string(coin)).
		Int("count", count).
		Str("total", s.coins.Total().String()).
		Msg("coins loaded")
	return nil
}

// Shelves returns every shelf with its stock level.
func (s *OperatorServiceImpl) Shelves() []domain.Shelf {
	return s.catalog.Shelves()
}

// Restock adds units to a shelf.
func (s *OperatorServiceImpl) Restock(shelfID int, count int) error {
	if err := s.catalog.Restock(shelfID, count); err != nil {
		return err
	}
	s.log.Info().Int("shelf_id", shelfID).Int("count", count).Msg("shelf restocked")
	return nil
}
