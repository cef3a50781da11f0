package services

import (
	"context"
	"time"

	"stockflow/internal/models"
	"stockflow/internal/repositories"

	"github.com/shopspring/decimal"
)

type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardService struct {
	itemRepo         repositories.ItemRepository
	saleRepo         repositories.SaleRepository
	cashFlowRepo     repositories.CashFlowRepository
	recentSalesLimit int
	monthlyWindow    int
}

func NewDashboardService(itemRepo repositories.ItemRepository, saleRepo repositories.SaleRepository, cashFlowRepo repositories.CashFlowRepository, recentSalesLimit, monthlyWindow int) DashboardService {
	return &dashboardService{
		itemRepo:         itemRepo,
		saleRepo:         saleRepo,
		cashFlowRepo:     cashFlowRepo,
		recentSalesLimit: recentSalesLimit,
		monthlyWindow:    monthlyWindow,
	}
}

// GetDashboardStats fans out read-only over the three collections and is
// recomputed on every request. Nothing here is cached.
func (s *dashboardService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	summary, err := s.itemRepo.StockSummary(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := s.cashFlowRepo.Balance(ctx)
	if err != nil {
		return nil, err
	}

	recentSales, err := s.saleRepo.ListRecent(ctx, s.recentSalesLimit)
	if err != nil {
		return nil, err
	}
	if recentSales == nil {
		recentSales = []*models.Sale{}
	}

	monthlySales, err := s.monthlySales(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalItems:    summary.TotalItems,
		TotalStock:    summary.TotalStock,
		LowStockCount: summary.LowStockCount,
		CashBalance:   balance,
		RecentSales:   recentSales,
		MonthlySales:  monthlySales,
	}, nil
}

// monthlySales zero-fills the trailing window so the series always has one
// bucket per calendar month, oldest first, even when a month had no sales.
func (s *dashboardService) monthlySales(ctx context.Context) ([]models.MonthSale, error) {
	totals, err := s.saleRepo.MonthlyTotals(ctx, s.monthlyWindow)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]decimal.Decimal, len(totals))
	for _, total := range totals {
		byMonth[monthKey(total.Month)] = total.Total
	}

	now := time.Now().UTC()
	series := make([]models.MonthSale, 0, s.monthlyWindow)
	for i := s.monthlyWindow - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		total, ok := byMonth[monthKey(month)]
		if !ok {
			total = decimal.Zero
		}
		series = append(series, models.MonthSale{
			Month: month.Format("Jan"),
			Total: total,
		})
	}
	return series, nil
}

func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
