package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashFlow is an immutable inflow or outflow of money, unrelated to
// inventory.
type CashFlow struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Description string          `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	IsInflow    bool            `json:"isInflow" db:"is_inflow"`
	Date        time.Time       `json:"date" db:"date"`
}
