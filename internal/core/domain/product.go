package domain

import "strings"

// Product is what a shelf sells. Name identity is case-insensitive.
type Product struct {
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

// SameAs compares product identity (case-insensitive name).
func (p Product) SameAs(other Product) bool {
	return strings.EqualFold(p.Name, other.Name)
}

// IsSellable reports whether the product can open a transaction.
func (p Product) IsSellable() bool {
	return strings.TrimSpace(p.Name) != "" && p.Price > 0
}

// Shelf is a numbered product slot with its stock count.
type Shelf struct {
	ID      int     `json:"id"`
	Product Product `json:"product"`
	Count   int     `json:"count"`
}

// IsEmpty returns true when no units are left on the shelf.
func (s *Shelf) IsEmpty() bool {
	return s.Count <= 0
}
