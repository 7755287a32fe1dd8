package service

import (
	"fmt"
	"sync"

	"vending-machine/internal/core/domain"

	"github.com/rs/zerolog"
)

// Front panel messages.
const (
	msgShelfSelected     = "Product '%s' has been chosen, price: %s"
	msgEmptyShelf        = "Shelf number %d is empty. Product is not available"
	msgAmountToCover     = "Amount to cover price of product: %s"
	msgInsufficientMoney = "Insufficient money on coin holder, transaction must be canceled."
	msgChooseShelf       = "You have to choose shelf"
	msgNothingToCancel   = "There is no transaction to cancel"
)

func selectedMessage(p domain.Product) string { return fmt.Sprintf(msgShelfSelected, p.Name, p.Price) }

func emptyShelfMessage(shelfID int) string { return fmt.Sprintf(msgEmptyShelf, shelfID) }

func amountDueMessage(m domain.Money) string { return fmt.Sprintf(msgAmountToCover, m) }

// LogDisplay implements ports.Display. It logs every message and remembers
// the latest one so the panel can be polled.
type LogDisplay struct {
	mu   sync.RWMutex
	last string
	log  zerolog.Logger
}

// NewLogDisplay creates a display writing to log.
func NewLogDisplay(log zerolog.Logger) *LogDisplay {
	return &LogDisplay{log: log}
}

// Show puts message on the screen.
func (d *LogDisplay) Show(message string) {
	d.mu.Lock()
	d.last = message
	d.mu.Unlock()

	d.log.Info().Str("display", message).Msg("panel message")
}

// Last returns the message currently on the screen.
func (d *LogDisplay) Last() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.last
}
