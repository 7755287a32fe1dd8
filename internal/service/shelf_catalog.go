package service

import (
	"sort"
	"sync"

	"vending-machine/internal/core/domain"
	"vending-machine/pkg/apperror"
)

// ShelfCatalog is an in-memory ports.ProductCatalog keyed by shelf number.
type ShelfCatalog struct {
	mu      sync.RWMutex
	shelves map[int]*domain.Shelf
}

// NewShelfCatalog creates a catalog holding the given shelves.
func NewShelfCatalog(shelves ...domain.Shelf) *ShelfCatalog {
	c := &ShelfCatalog{shelves: make(map[int]*domain.Shelf, len(shelves))}
	for _, s := range shelves {
		c.AddProduct(s.ID, s.Count, s.Product)
	}
	return c
}

// DefaultShelves is the factory planogram.
func DefaultShelves() []domain.Shelf {
	return []domain.Shelf{
		{ID: 15, Product: domain.Product{Name: "Snickers", Price: 12}, Count: 5},
		{ID: 16, Product: domain.Product{Name: "Mars", Price: 12}, Count: 5},
		{ID: 17, Product: domain.Product{Name: "Oshee", Price: 32}, Count: 5},
		{ID: 18, Product: domain.Product{Name: "Cola", Price: 30}, Count: 5},
	}
}

// Lookup returns the product placed on shelfID.
func (c *ShelfCatalog) Lookup(shelfID int) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	shelf, ok := c.shelves[shelfID]
	if !ok {
		return domain.Product{}, apperror.ErrShelfNotFound(shelfID)
	}
	return shelf.Product, nil
}

// IsEmpty reports whether the shelf selling product is out of stock.
func (c *ShelfCatalog) IsEmpty(product domain.Product) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.sortedIDs() {
		shelf := c.shelves[id]
		if shelf.Product.SameAs(product) {
			return shelf.IsEmpty(), nil
		}
	}
	return false, apperror.ErrProductNotFound(product.Name)
}

// ReleaseOne takes one unit off the shelf.
func (c *ShelfCatalog) ReleaseOne(shelfID int) (domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	shelf, ok := c.shelves[shelfID]
	if !ok {
		return domain.Product{}, apperror.ErrShelfNotFound(shelfID)
	}
	if shelf.IsEmpty() {
		return domain.Product{}, apperror.ErrShelfEmpty(shelfID)
	}
	shelf.Count--
	return shelf.Product, nil
}

// AddProduct places product on shelfID with count units, replacing what was there.
func (c *ShelfCatalog) AddProduct(shelfID int, count int, product domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if count < 0 {
		count = 0
	}
	c.shelves[shelfID] = &domain.Shelf{ID: shelfID, Product: product, Count: count}
}

// Restock adds count units to an existing shelf.
func (c *ShelfCatalog) Restock(shelfID int, count int) error {
	if count <= 0 {
		return apperror.Validation("restock count must be positive")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	shelf, ok := c.shelves[shelfID]
	if !ok {
		return apperror.ErrShelfNotFound(shelfID)
	}
	shelf.Count += count
	return nil
}

// Shelves returns a copy of every shelf ordered by number.
func (c *ShelfCatalog) Shelves() []domain.Shelf {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Shelf, 0, len(c.shelves))
	for _, id := range c.sortedIDs() {
		out = append(out, *c.shelves[id])
	}
	return out
}

// Clear removes every shelf.
func (c *ShelfCatalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shelves = make(map[int]*domain.Shelf)
}

func (c *ShelfCatalog) sortedIDs() []int {
	ids := make([]int, 0, len(c.shelves))
	for id := range c.shelves {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
