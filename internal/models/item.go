package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is a stocked product. The (name, brand, type) tuple is the natural
// key: at most one row per tuple exists, enforced by a unique constraint.
type Item struct {
	ID                uuid.UUID `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Brand             string    `json:"brand" db:"brand"`
	Type              string    `json:"type" db:"type"`
	Quantity          int       `json:"quantity" db:"quantity"`
	LowStockThreshold int       `json:"lowStockThreshold" db:"low_stock_threshold"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// IsLowStock reports whether the item has fallen below its own threshold.
func (i *Item) IsLowStock() bool {
	return i.Quantity < i.LowStockThreshold
}

// ReportItem is an item on the restock report. ReorderQuantity and Status
// are derived at read time and never stored.
type ReportItem struct {
	Item
	ReorderQuantity int    `json:"reorderQuantity"`
	Status          string `json:"status"`
}
