package services

import (
	"context"
	"errors"

	"stockflow/internal/models"
	"stockflow/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type SalesService interface {
	RecordSale(ctx context.Context, itemID uuid.UUID, quantity int) (*models.Sale, error)
	List(ctx context.Context) ([]*models.Sale, error)
}

type salesService struct {
	itemRepo  repositories.ItemRepository
	saleRepo  repositories.SaleRepository
	unitPrice decimal.Decimal
}

// NewSalesService builds the sales engine. unitPrice is the single price
// applied to every item; per-item pricing is out of scope for now.
func NewSalesService(itemRepo repositories.ItemRepository, saleRepo repositories.SaleRepository, unitPrice decimal.Decimal) SalesService {
	return &salesService{
		itemRepo:  itemRepo,
		saleRepo:  saleRepo,
		unitPrice: unitPrice,
	}
}

// RecordSale checks stock and decrements it as one unit of work, then
// persists the sale snapshot. A failed sale has no side effects and can be
// retried any number of times. The decrement and the sale insert are NOT
// one transaction: a crash between them loses the sale record, never stock
// consistency.
func (s *salesService) RecordSale(ctx context.Context, itemID uuid.UUID, quantity int) (*models.Sale, error) {
	if quantity <= 0 {
		return nil, validationError("quantity", "quantity must be positive")
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if item.Quantity < quantity {
		return nil, ErrInsufficientStock
	}

	// The conditional decrement re-checks stock atomically; a concurrent
	// sale that drained the item in the meantime surfaces here as no rows.
	if _, err := s.itemRepo.DecrementStock(ctx, itemID, quantity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInsufficientStock
		}
		return nil, err
	}

	sale := &models.Sale{
		ID:       uuid.New(),
		ItemID:   item.ID,
		ItemName: item.Name,
		Quantity: quantity,
		Total:    s.unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *salesService) List(ctx context.Context) ([]*models.Sale, error) {
	return s.saleRepo.List(ctx)
}
