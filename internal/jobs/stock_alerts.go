package jobs

import (
	"context"
	"log"

	"stockflow/internal/repositories"
	"stockflow/internal/services"

	"github.com/google/uuid"
)

// StockAlertService scans inventory for items below their threshold and
// logs restock alerts. It backs the notifications surface without the core
// services doing any logging of their own.
type StockAlertService struct {
	itemRepo repositories.ItemRepository
}

type StockAlert struct {
	ItemID          uuid.UUID
	Name            string
	Brand           string
	Type            string
	CurrentStock    int
	Threshold       int
	ReorderQuantity int
}

func NewStockAlertService(itemRepo repositories.ItemRepository) *StockAlertService {
	return &StockAlertService{itemRepo: itemRepo}
}

func (a *StockAlertService) CheckLowStock(ctx context.Context) ([]StockAlert, error) {
	items, err := a.itemRepo.ListLowStock(ctx)
	if err != nil {
		log.Printf("Failed to list low stock items: %v", err)
		return nil, err
	}

	alerts := make([]StockAlert, 0, len(items))
	for _, item := range items {
		alerts = append(alerts, StockAlert{
			ItemID:          item.ID,
			Name:            item.Name,
			Brand:           item.Brand,
			Type:            item.Type,
			CurrentStock:    item.Quantity,
			Threshold:       item.LowStockThreshold,
			ReorderQuantity: services.ReorderQuantity(item),
		})
	}
	return alerts, nil
}

func (a *StockAlertService) LogLowStockAlerts(alerts []StockAlert) {
	if len(alerts) == 0 {
		log.Println("No low stock alerts to log")
		return
	}

	log.Printf("%d item(s) below their stock threshold:", len(alerts))
	for _, alert := range alerts {
		log.Printf("- '%s' (%s, %s) has %d units, threshold %d, suggested reorder %d",
			alert.Name,
			alert.Brand,
			alert.Type,
			alert.CurrentStock,
			alert.Threshold,
			alert.ReorderQuantity)
	}
}

// ScheduledLowStockCheck is the entry point the scheduler runs periodically.
func (a *StockAlertService) ScheduledLowStockCheck(ctx context.Context) error {
	log.Println("Starting scheduled low stock check")

	alerts, err := a.CheckLowStock(ctx)
	if err != nil {
		log.Printf("Scheduled low stock check failed: %v", err)
		return err
	}
	a.LogLowStockAlerts(alerts)

	log.Println("Scheduled low stock check completed successfully")
	return nil
}
