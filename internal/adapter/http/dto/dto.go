package dto

// --- Front panel ---

// SelectShelfRequest is the request body for pressing a shelf button.
type SelectShelfRequest struct {
	ShelfID *int `json:"shelf_id" binding:"required,gte=0"`
}

// InsertCoinRequest is the request body for dropping a coin into the slot.
type InsertCoinRequest struct {
	Denomination string `json:"denomination" binding:"required,max=8"`
}

// ProductResponse describes a product on a shelf.
type ProductResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// TransactionResponse is the public view of a vending transaction.
// Amounts are decimal strings, e.g. "1.20".
type TransactionResponse struct {
	ID            string   `json:"id"`
	ShelfID       int      `json:"shelf_id"`
	ProductName   string   `json:"product_name"`
	ProductPrice  string   `json:"product_price"`
	CoveredAmount string   `json:"covered_amount"`
	AmountDue     string   `json:"amount_due"`
	ChangeAmount  string   `json:"change_amount"`
	InsertedCoins []string `json:"inserted_coins"`
	CoinsToReturn []string `json:"coins_to_return"`
	RefundedCoins []string `json:"refunded_coins"`
	StrandedCoins []string `json:"stranded_coins,omitempty"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"created_at"`
	CompletedAt   *string  `json:"completed_at,omitempty"`
}

// SelectionResponse is the response body for a shelf selection.
type SelectionResponse struct {
	Product     ProductResponse      `json:"product"`
	ShelfEmpty  bool                 `json:"shelf_empty"`
	Resumed     bool                 `json:"resumed"`
	Transaction *TransactionResponse `json:"transaction"`
	Display     string               `json:"display"`
}

// InsertionResponse is the response body for an inserted coin.
type InsertionResponse struct {
	Accepted    bool                 `json:"accepted"`
	AmountDue   string               `json:"amount_due"`
	Transaction *TransactionResponse `json:"transaction"`
	Display     string               `json:"display"`
}

// CancellationResponse is the response body for the cancel button.
type CancellationResponse struct {
	Canceled    bool                 `json:"canceled"`
	Transaction *TransactionResponse `json:"transaction"`
	Display     string               `json:"display"`
}

// DisplayResponse carries the message currently on the panel display.
type DisplayResponse struct {
	Message string `json:"message"`
}

// --- Operator ---

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required,safe_id,max=64"`
	Password string `json:"password" binding:"required,max=128" sanitize:"-"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// LoadCoinsRequest is the request body for refilling the coin holder.
type LoadCoinsRequest struct {
	Denomination string `json:"denomination" binding:"required,max=8"`
	Count        int    `json:"count" binding:"required,gt=0,lte=10000"`
}

// RestockRequest is the request body for adding units to a shelf.
type RestockRequest struct {
	Count int `json:"count" binding:"required,gt=0,lte=1000"`
}

// CoinCount is the number of coins held for one denomination.
type CoinCount struct {
	Denomination string `json:"denomination"`
	Count        int    `json:"count"`
}

// CoinInventoryResponse lists the coin holder contents, largest coin first.
type CoinInventoryResponse struct {
	Coins []CoinCount `json:"coins"`
	Total string      `json:"total"`
}

// ShelfResponse describes one shelf and its stock.
type ShelfResponse struct {
	ID      int             `json:"id"`
	Product ProductResponse `json:"product"`
	Count   int             `json:"count"`
}

// TransactionListResponse wraps the transaction history.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}
