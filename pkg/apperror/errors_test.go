package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("SHELF_001", "Shelf missing", http.StatusNotFound),
			expected: "[SHELF_001] Shelf missing",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, New("COIN_001", "test", http.StatusBadRequest).Unwrap())
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("select: %w", ErrShelfNotFound(99))

	assert.True(t, HasCode(err, "SHELF_001"))
	assert.False(t, HasCode(err, "SHELF_002"))
	assert.False(t, HasCode(errors.New("plain"), "SHELF_001"))
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"ShelfNotFound", ErrShelfNotFound(99), "SHELF_001", 404},
		{"ProductNotFound", ErrProductNotFound("Twix"), "SHELF_002", 404},
		{"ShelfEmpty", ErrShelfEmpty(15), "SHELF_003", 409},
		{"ProductNotSellable", ErrProductNotSellable(31), "SHELF_004", 409},
		{"UnknownDenomination", ErrUnknownDenomination("0.3"), "COIN_001", 400},
		{"CoinUnavailable", ErrCoinUnavailable("0.5"), "COIN_002", 409},
		{"InvalidTransition", ErrInvalidTransition(errors.New("x")), "TXN_001", 409},
		{"InvalidCredentials", ErrInvalidCredentials(), "AUTH_001", 401},
		{"InvalidToken", ErrInvalidToken(), "AUTH_003", 401},
		{"RateLimit", ErrRateLimitExceeded(), "RATE_001", 429},
		{"Internal", InternalError(errors.New("x")), "SYS_001", 500},
		{"InventoryDesync", ErrInventoryDesync(errors.New("x")), "SYS_002", 500},
		{"Database", ErrDatabaseError(errors.New("x")), "SYS_003", 500},
		{"Validation", Validation("bad"), "REQ_001", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestMessagesCarryIdentifiers(t *testing.T) {
	assert.Equal(t, "Shelf with number 42 does not exist", ErrShelfNotFound(42).Message)
	assert.Equal(t, "Coin denomination 0.5 not found in coin holder", ErrCoinUnavailable("0.5").Message)
}
