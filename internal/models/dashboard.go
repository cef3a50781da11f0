package models

import "github.com/shopspring/decimal"

// StockSummary holds the item-level counters the dashboard needs, computed
// in a single query.
type StockSummary struct {
	TotalItems    int `json:"totalItems"`
	TotalStock    int `json:"totalStock"`
	LowStockCount int `json:"lowStockCount"`
}

// MonthSale is one bucket of the monthly sales series.
type MonthSale struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// DashboardStats is derived on every request and never persisted.
type DashboardStats struct {
	TotalItems    int             `json:"totalItems"`
	TotalStock    int             `json:"totalStock"`
	LowStockCount int             `json:"lowStockCount"`
	CashBalance   decimal.Decimal `json:"cashBalance"`
	RecentSales   []*Sale         `json:"recentSales"`
	MonthlySales  []MonthSale     `json:"monthlySales"`
}
