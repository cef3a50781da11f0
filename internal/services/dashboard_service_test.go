package services

import (
	"context"
	"testing"
	"time"

	"stockflow/internal/models"
	"stockflow/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	itemRepo     *MockItemRepository
	saleRepo     *MockSaleRepository
	cashFlowRepo *MockCashFlowRepository
	service      DashboardService
	ctx          context.Context
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.itemRepo = new(MockItemRepository)
	suite.saleRepo = new(MockSaleRepository)
	suite.cashFlowRepo = new(MockCashFlowRepository)
	suite.service = NewDashboardService(suite.itemRepo, suite.saleRepo, suite.cashFlowRepo, 5, 6)
	suite.ctx = context.Background()
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (suite *DashboardServiceTestSuite) TestGetDashboardStats() {
	recentSales := []*models.Sale{
		{ID: uuid.New(), ItemName: "T-Shirt", Quantity: 3, Total: decimal.NewFromFloat(59.97)},
	}

	suite.itemRepo.On("StockSummary", suite.ctx).Return(&models.StockSummary{
		TotalItems:    12,
		TotalStock:    340,
		LowStockCount: 2,
	}, nil)
	// Rent -1500, Revenue +2500 => balance 1000.
	suite.cashFlowRepo.On("Balance", suite.ctx).Return(decimal.NewFromInt(1000), nil)
	suite.saleRepo.On("ListRecent", suite.ctx, 5).Return(recentSales, nil)
	suite.saleRepo.On("MonthlyTotals", suite.ctx, 6).Return([]repositories.MonthlyTotal{}, nil)

	stats, err := suite.service.GetDashboardStats(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 12, stats.TotalItems)
	assert.Equal(suite.T(), 340, stats.TotalStock)
	assert.Equal(suite.T(), 2, stats.LowStockCount)
	assert.True(suite.T(), stats.CashBalance.Equal(decimal.NewFromInt(1000)))
	assert.Equal(suite.T(), recentSales, stats.RecentSales)
	assert.Len(suite.T(), stats.MonthlySales, 6)
}

func (suite *DashboardServiceTestSuite) TestMonthlySalesZeroFillsEmptyMonths() {
	now := time.Now().UTC()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	suite.itemRepo.On("StockSummary", suite.ctx).Return(&models.StockSummary{}, nil)
	suite.cashFlowRepo.On("Balance", suite.ctx).Return(decimal.Zero, nil)
	suite.saleRepo.On("ListRecent", suite.ctx, 5).Return([]*models.Sale{}, nil)
	suite.saleRepo.On("MonthlyTotals", suite.ctx, 6).Return([]repositories.MonthlyTotal{
		{Month: thisMonth, Total: decimal.NewFromFloat(8200)},
		{Month: thisMonth.AddDate(0, -2, 0), Total: decimal.NewFromFloat(5600)},
	}, nil)

	stats, err := suite.service.GetDashboardStats(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), stats.MonthlySales, 6)

	// Oldest first, current month last.
	last := stats.MonthlySales[5]
	assert.Equal(suite.T(), thisMonth.Format("Jan"), last.Month)
	assert.True(suite.T(), last.Total.Equal(decimal.NewFromFloat(8200)))

	assert.True(suite.T(), stats.MonthlySales[3].Total.Equal(decimal.NewFromFloat(5600)))
	for _, i := range []int{0, 1, 2, 4} {
		assert.True(suite.T(), stats.MonthlySales[i].Total.IsZero(), "month %d should be zero-filled", i)
	}
}

func (suite *DashboardServiceTestSuite) TestRecentSalesNeverNil() {
	suite.itemRepo.On("StockSummary", suite.ctx).Return(&models.StockSummary{}, nil)
	suite.cashFlowRepo.On("Balance", suite.ctx).Return(decimal.Zero, nil)
	suite.saleRepo.On("ListRecent", suite.ctx, 5).Return(nil, nil)
	suite.saleRepo.On("MonthlyTotals", suite.ctx, 6).Return(nil, nil)

	stats, err := suite.service.GetDashboardStats(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), stats.RecentSales)
	assert.Empty(suite.T(), stats.RecentSales)
}
