package ports

import (
	"context"

	"vending-machine/internal/core/domain"
)

// ProductCatalog is the shelf inventory the machine sells from.
type ProductCatalog interface {
	// Lookup returns the product on a shelf. Fails with SHELF_001 for unknown shelves.
	Lookup(shelfID int) (domain.Product, error)
	// IsEmpty reports whether the shelf holding product has no stock left.
	// Fails with SHELF_002 if no shelf holds the product.
	IsEmpty(product domain.Product) (bool, error)
	// ReleaseOne debits one unit from the shelf and returns the released product.
	ReleaseOne(shelfID int) (domain.Product, error)
}

// Display is a one-way sink for pre-formatted front panel messages.
type Display interface {
	Show(message string)
}

// JournalRepository persists completed transactions as an append-only sales journal.
type JournalRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
}

// TransactionJournal records finished transactions outside the machine.
type TransactionJournal interface {
	Record(ctx context.Context, tx domain.Transaction)
}
