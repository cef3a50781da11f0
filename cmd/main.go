package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"

	"stockflow/internal/config"
	"stockflow/internal/handlers"
	"stockflow/internal/jobs"
	"stockflow/internal/jobs/background"
	"stockflow/internal/repositories"
	"stockflow/internal/services"
	"stockflow/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to create database schema: %v", err)
	}

	// Create repositories
	itemRepo := repositories.NewItemRepo(pool)
	saleRepo := repositories.NewSaleRepo(pool)
	cashFlowRepo := repositories.NewCashFlowRepo(pool)

	// Create services
	inventorySvc := services.NewInventoryService(itemRepo)
	salesSvc := services.NewSalesService(itemRepo, saleRepo, decimal.NewFromFloat(cfg.UnitPrice))
	cashFlowSvc := services.NewCashFlowService(cashFlowRepo)
	dashboardSvc := services.NewDashboardService(itemRepo, saleRepo, cashFlowRepo, cfg.RecentSalesLimit, cfg.MonthlySalesWindow)

	// Create handlers
	itemHandlers := handlers.NewItemHandlers(inventorySvc)
	saleHandlers := handlers.NewSaleHandlers(salesSvc)
	cashFlowHandlers := handlers.NewCashFlowHandlers(cashFlowSvc)
	dashboardHandlers := handlers.NewDashboardHandlers(dashboardSvc)
	reportHandlers := handlers.NewReportHandlers(inventorySvc)

	// Background low-stock scan
	stockAlertSvc := jobs.NewStockAlertService(itemRepo)
	scheduler, err := background.NewJobScheduler(stockAlertSvc, cfg.LowStockScanInterval)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("Failed to stop job scheduler: %v", err)
		}
	}()

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints
	e.GET("/health", handlers.HealthCheck)
	e.GET("/health/ready", func(c echo.Context) error {
		return handlers.ReadinessCheck(c, pool)
	})

	// API routes
	v1 := e.Group("/v1")

	v1.GET("/items", itemHandlers.ListItems)
	v1.POST("/items", itemHandlers.AddStock)
	v1.GET("/items/lowstock", itemHandlers.ListLowStockItems)

	v1.GET("/sales", saleHandlers.ListSales)
	v1.POST("/sales", saleHandlers.RecordSale)

	v1.GET("/cashflows", cashFlowHandlers.ListCashFlows)
	v1.POST("/cashflows", cashFlowHandlers.AddCashFlow)

	v1.GET("/reports/monthly", reportHandlers.MonthlyReport)
	v1.GET("/reports/monthly/csv", reportHandlers.MonthlyReportCSV)

	v1.GET("/dashboard", dashboardHandlers.GetDashboardStats)

	log.Printf("StockFlow server v%s starting on port %d", version, cfg.Port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
