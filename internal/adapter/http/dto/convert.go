package dto

import (
	"time"

	"vending-machine/internal/core/domain"
)

// FromTransaction converts a transaction snapshot. It returns nil for nil.
func FromTransaction(tx *domain.Transaction) *TransactionResponse {
	if tx == nil {
		return nil
	}
	resp := &TransactionResponse{
		ID:            tx.ID.String(),
		ShelfID:       tx.ShelfID,
		ProductName:   tx.ProductName,
		ProductPrice:  tx.ProductPrice.String(),
		CoveredAmount: tx.CoveredAmount.String(),
		AmountDue:     tx.AmountDue().String(),
		ChangeAmount:  tx.ChangeAmount.String(),
		InsertedCoins: coinStrings(tx.InsertedCoins),
		CoinsToReturn: coinStrings(tx.CoinsToReturn),
		RefundedCoins: coinStrings(tx.RefundedCoins),
		Status:        string(tx.Status),
		CreatedAt:     tx.CreatedAt.Format(time.RFC3339),
	}
	if len(tx.StrandedCoins) > 0 {
		resp.StrandedCoins = coinStrings(tx.StrandedCoins)
	}
	if tx.CompletedAt != nil {
		s := tx.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	return resp
}

// FromProduct converts a product.
func FromProduct(p domain.Product) ProductResponse {
	return ProductResponse{Name: p.Name, Price: p.Price.String()}
}

// FromShelves converts shelves, keeping their order.
func FromShelves(shelves []domain.Shelf) []ShelfResponse {
	out := make([]ShelfResponse, 0, len(shelves))
	for _, s := range shelves {
		out = append(out, ShelfResponse{ID: s.ID, Product: FromProduct(s.Product), Count: s.Count})
	}
	return out
}

// FromCoinCounts orders counts by denomination, largest first, and totals them.
func FromCoinCounts(counts map[domain.Denomination]int) CoinInventoryResponse {
	resp := CoinInventoryResponse{Coins: make([]CoinCount, 0, len(counts))}
	var total domain.Money
	for _, d := range domain.Denominations() {
		n := counts[d]
		resp.Coins = append(resp.Coins, CoinCount{Denomination: string(d), Count: n})
		total += d.Value() * domain.Money(n)
	}
	resp.Total = total.String()
	return resp
}

// FromHistory converts the transaction history, oldest first.
func FromHistory(history []domain.Transaction) TransactionListResponse {
	out := make([]TransactionResponse, 0, len(history))
	for i := range history {
		out = append(out, *FromTransaction(&history[i]))
	}
	return TransactionListResponse{Transactions: out, Total: len(out)}
}

func coinStrings(coins []domain.Denomination) []string {
	out := make([]string, 0, len(coins))
	for _, c := range coins {
		out = append(out, string(c))
	}
	return out
}
