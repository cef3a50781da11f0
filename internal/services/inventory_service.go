package services

import (
	"context"
	"strings"

	"stockflow/internal/models"
	"stockflow/internal/repositories"

	"github.com/google/uuid"
)

type InventoryService interface {
	AddStock(ctx context.Context, name, brand, itemType string, quantity, lowStockThreshold int) (*models.Item, error)
	List(ctx context.Context) ([]*models.Item, error)
	LowStockItems(ctx context.Context) ([]*models.Item, error)
	MonthlyReport(ctx context.Context) ([]*models.ReportItem, error)
}

type inventoryService struct {
	itemRepo repositories.ItemRepository
}

func NewInventoryService(itemRepo repositories.ItemRepository) InventoryService {
	return &inventoryService{itemRepo: itemRepo}
}

// AddStock merges into an existing item when the (name, brand, type) tuple
// is already stocked, otherwise creates a new one. On merge the stored
// threshold wins and the supplied one is ignored. Exactly one store write
// happens either way.
func (s *inventoryService) AddStock(ctx context.Context, name, brand, itemType string, quantity, lowStockThreshold int) (*models.Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationError("name", "name is required")
	}
	if strings.TrimSpace(brand) == "" {
		return nil, validationError("brand", "brand is required")
	}
	if strings.TrimSpace(itemType) == "" {
		return nil, validationError("type", "type is required")
	}
	if quantity <= 0 {
		return nil, validationError("quantity", "quantity must be positive")
	}
	if lowStockThreshold <= 0 {
		return nil, validationError("lowStockThreshold", "lowStockThreshold must be positive")
	}

	item := &models.Item{
		ID:                uuid.New(),
		Name:              name,
		Brand:             brand,
		Type:              itemType,
		Quantity:          quantity,
		LowStockThreshold: lowStockThreshold,
	}
	if err := s.itemRepo.AddStock(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) List(ctx context.Context) ([]*models.Item, error) {
	return s.itemRepo.List(ctx)
}

func (s *inventoryService) LowStockItems(ctx context.Context) ([]*models.Item, error) {
	return s.itemRepo.ListLowStock(ctx)
}

// MonthlyReport is the restock recommendation report: every low-stock item
// with a suggested reorder quantity that would bring stock to twice the
// threshold, floored at one unit.
func (s *inventoryService) MonthlyReport(ctx context.Context) ([]*models.ReportItem, error) {
	items, err := s.itemRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]*models.ReportItem, 0, len(items))
	for _, item := range items {
		report = append(report, &models.ReportItem{
			Item:            *item,
			ReorderQuantity: ReorderQuantity(item),
			Status:          StockStatus(item),
		})
	}
	return report, nil
}

// ReorderQuantity suggests how many units to order: max(2*threshold - quantity, 1).
func ReorderQuantity(item *models.Item) int {
	reorder := item.LowStockThreshold*2 - item.Quantity
	if reorder < 1 {
		reorder = 1
	}
	return reorder
}

// StockStatus grades an item against its threshold: below 30% is Critical,
// below 70% is Low, anything else OK.
func StockStatus(item *models.Item) string {
	percent := item.Quantity * 100 / item.LowStockThreshold
	switch {
	case percent < 30:
		return "Critical"
	case percent < 70:
		return "Low"
	default:
		return "OK"
	}
}
