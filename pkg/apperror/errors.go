package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Catalog (SHELF) ----

func ErrShelfNotFound(shelfID int) *AppError {
	return New("SHELF_001", fmt.Sprintf("Shelf with number %d does not exist", shelfID), http.StatusNotFound)
}

func ErrProductNotFound(name string) *AppError {
	return New("SHELF_002", fmt.Sprintf("Product with name %s not found", name), http.StatusNotFound)
}

func ErrShelfEmpty(shelfID int) *AppError {
	return New("SHELF_003", fmt.Sprintf("Shelf with number %d is empty", shelfID), http.StatusConflict)
}

// ErrProductNotSellable is for an existing shelf whose product lacks a name or price.
func ErrProductNotSellable(shelfID int) *AppError {
	return New("SHELF_004", fmt.Sprintf("Product on shelf %d has no name or price", shelfID), http.StatusConflict)
}

// ---- Coins (COIN) ----

func ErrUnknownDenomination(value string) *AppError {
	return New("COIN_001", fmt.Sprintf("Coin denomination %s is not accepted", value), http.StatusBadRequest)
}

func ErrCoinUnavailable(value string) *AppError {
	return New("COIN_002", fmt.Sprintf("Coin denomination %s not found in coin holder", value), http.StatusConflict)
}

// ---- Transaction lifecycle (TXN) ----

func ErrInvalidTransition(err error) *AppError {
	return Wrap("TXN_001", "Transaction cannot change to the requested status", http.StatusConflict, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrInventoryDesync is raised when a coin the machine accepted can no longer
// be released. The machine must not keep operating silently after this.
func ErrInventoryDesync(err error) *AppError {
	return Wrap("SYS_002", "Coin inventory out of sync with transaction", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_003", "Internal database error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
