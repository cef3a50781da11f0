package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is an immutable record of inventory depletion. ItemName is a
// snapshot taken at sale time so historical sales survive item renames.
// ItemID is a plain reference, not an ownership relation.
type Sale struct {
	ID       uuid.UUID       `json:"id" db:"id"`
	ItemID   uuid.UUID       `json:"itemId" db:"item_id"`
	ItemName string          `json:"itemName" db:"item_name"`
	Quantity int             `json:"quantity" db:"quantity"`
	Total    decimal.Decimal `json:"total" db:"total"`
	SaleDate time.Time       `json:"saleDate" db:"sale_date"`
}
