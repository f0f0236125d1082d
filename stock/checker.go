package stock

import (
	"fmt"

	"github.com/ZeyadMahfouzz/supermarket-client/api"
)

// Warning thresholds for the storefront's stock hints.
const (
	LowThreshold      = 10
	CriticalThreshold = 5
)

type Level int

const (
	LevelNone Level = iota
	LevelLow
	LevelCritical
	LevelOut
)

func LevelFor(quantity int) Level {
	switch {
	case quantity <= 0:
		return LevelOut
	case quantity <= CriticalThreshold:
		return LevelCritical
	case quantity <= LowThreshold:
		return LevelLow
	}
	return LevelNone
}

// Label renders the stock hint shown next to an item. Admins always see the
// exact count; regular users only get the threshold warnings.
func Label(quantity int, admin bool) string {
	if admin {
		return fmt.Sprintf("%d in stock", quantity)
	}
	switch LevelFor(quantity) {
	case LevelOut:
		return "Out of stock"
	case LevelCritical:
		return "Almost gone"
	case LevelLow:
		return "Low stock"
	}
	return "In stock"
}

// Checker performs best-effort advisory stock reads. A failed check never
// blocks a cart mutation; the backend remains the authority on stock.
type Checker struct {
	items *api.ItemService
}

func NewChecker(items *api.ItemService) *Checker {
	return &Checker{items: items}
}

func (c *Checker) CheckStock(itemID int64) (int, error) {
	item, err := c.items.Details(itemID)
	if err != nil {
		return 0, err
	}
	return item.Quantity, nil
}
