package services

import (
	"context"
	"strings"

	"stockflow/internal/models"
	"stockflow/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CashFlowService interface {
	AddCashFlow(ctx context.Context, description string, amount decimal.Decimal, isInflow bool) (*models.CashFlow, error)
	List(ctx context.Context) ([]*models.CashFlow, error)
}

type cashFlowService struct {
	cashFlowRepo repositories.CashFlowRepository
}

func NewCashFlowService(cashFlowRepo repositories.CashFlowRepository) CashFlowService {
	return &cashFlowService{cashFlowRepo: cashFlowRepo}
}

func (s *cashFlowService) AddCashFlow(ctx context.Context, description string, amount decimal.Decimal, isInflow bool) (*models.CashFlow, error) {
	if strings.TrimSpace(description) == "" {
		return nil, validationError("description", "description is required")
	}
	if !amount.IsPositive() {
		return nil, validationError("amount", "amount must be positive")
	}

	cashFlow := &models.CashFlow{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		IsInflow:    isInflow,
	}
	if err := s.cashFlowRepo.Create(ctx, cashFlow); err != nil {
		return nil, err
	}
	return cashFlow, nil
}

func (s *cashFlowService) List(ctx context.Context) ([]*models.CashFlow, error) {
	return s.cashFlowRepo.List(ctx)
}
